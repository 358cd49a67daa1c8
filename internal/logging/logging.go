package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kreatorpajak/freelance-tax/internal/calculation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level, encoding and destination of process logs
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	OutputFile string // empty means stderr
}

// ParseLevel maps a level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New builds a zap logger from the configuration
func New(cfg Config) (*zap.Logger, error) {
	zapLevel, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch cfg.Format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "", "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zc.OutputPaths = []string{cfg.OutputFile}
		zc.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zc.Build()
}

// EngineLogger adapts a zap logger to the calculation.Logger interface
type EngineLogger struct {
	s *zap.SugaredLogger
}

var _ calculation.Logger = (*EngineLogger)(nil)

// NewEngineLogger wraps l; a nil logger yields a no-op adapter
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &EngineLogger{s: l.Named("engine").Sugar()}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.s.Debugf(format, args...) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.s.Infof(format, args...) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.s.Warnf(format, args...) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.s.Errorf(format, args...) }
