package config

import (
	"strings"

	"github.com/kreatorpajak/freelance-tax/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by NewSettings
const EnvPrefix = "TAXCALC"

// Settings are the process-level options of the CLI. They come from flags
// bound into v, TAXCALC_* environment variables, then defaults.
type Settings struct {
	ConfigFile string
	Format     string
	Logging    logging.Config
}

// NewViper returns a viper instance with the environment mapping and defaults applied
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config", "")
	v.SetDefault("format", "console")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
	v.SetDefault("log-file", "")
	return v
}

// LoadSettings reads the resolved settings out of v
func LoadSettings(v *viper.Viper) Settings {
	return Settings{
		ConfigFile: v.GetString("config"),
		Format:     v.GetString("format"),
		Logging: logging.Config{
			Level:      v.GetString("log-level"),
			Format:     v.GetString("log-format"),
			OutputFile: v.GetString("log-file"),
		},
	}
}
