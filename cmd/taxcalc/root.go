package main

import (
	"fmt"

	"github.com/kreatorpajak/freelance-tax/internal/calculation"
	"github.com/kreatorpajak/freelance-tax/internal/config"
	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/kreatorpajak/freelance-tax/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand
type app struct {
	v        *viper.Viper
	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "taxcalc",
		Short:         "Estimate annual income tax for freelancers and content creators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.settings = config.LoadSettings(a.v)
			logger, err := logging.New(a.settings.Logging)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to the YAML input file")
	pf.StringP("format", "f", "console", "output format (console, console-lite, csv, detailed-csv, json, all)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log encoding (console, json)")
	pf.String("log-file", "", "write logs to this file instead of stderr")
	for _, name := range []string{"config", "format", "log-level", "log-format", "log-file"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(
		newCalculateCmd(a),
		newSimulateCmd(a),
		newBracketsCmd(a),
		newScheduleCmd(a),
		newVersionCmd(),
	)
	return root
}

// loadConfiguration parses the input file named by --config
func (a *app) loadConfiguration() (*domain.Configuration, error) {
	if a.settings.ConfigFile == "" {
		return nil, fmt.Errorf("an input file is required (--config or TAXCALC_CONFIG)")
	}
	cfg, err := config.NewInputParser().LoadFromFile(a.settings.ConfigFile)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded configuration",
		zap.String("file", a.settings.ConfigFile),
		zap.Int("tax_year", cfg.TaxYear),
		zap.Int("income_entries", len(cfg.Income)),
		zap.Int("cost_entries", len(cfg.Costs)))
	return cfg, nil
}

// newEngine builds an engine for the configuration's rules with zap logging attached
func (a *app) newEngine(cfg *domain.Configuration) (*calculation.TaxEngine, error) {
	rules := domain.DefaultTaxRules()
	if cfg != nil {
		rules = cfg.EffectiveRules()
	}
	engine, err := calculation.NewTaxEngineWithRules(rules)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logging.NewEngineLogger(a.logger))
	return engine, nil
}
