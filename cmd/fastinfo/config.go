package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix namespaces the environment defaults, e.g. FASTINFO_SAMPLES.
const envPrefix = "fastinfo"

// Config holds the report parameters. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	Samples   int     `envconfig:"SAMPLES" default:"4096"`
	Min       float64 `envconfig:"MIN" default:"0.001"`
	Max       float64 `envconfig:"MAX" default:"1e6"`
	Precision string  `envconfig:"PRECISION" default:"all"`
	Format    string  `envconfig:"FORMAT" default:"table"`
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"warn"`
}

var (
	errBadRange     = errors.New("sample range must satisfy 0 < min < max")
	errBadSamples   = errors.New("need at least 2 samples")
	errBadFormat    = errors.New("format must be table or yaml")
	errBadPrecision = errors.New("precision must be 32, 64 or all")
)

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("%w: got %d", errBadSamples, c.Samples)
	}
	if !(c.Min > 0 && c.Min < c.Max) {
		return fmt.Errorf("%w: got [%g, %g]", errBadRange, c.Min, c.Max)
	}
	switch c.Format {
	case "table", "yaml":
	default:
		return fmt.Errorf("%w: got %q", errBadFormat, c.Format)
	}
	if _, err := parsePrecision(c.Precision); err != nil {
		return err
	}
	return nil
}

// parsePrecision maps the -precision flag to the float widths to evaluate.
func parsePrecision(s string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "32":
		return []int{32}, nil
	case "64":
		return []int{64}, nil
	case "all", "":
		return []int{32, 64}, nil
	}
	return nil, fmt.Errorf("%w: got %q", errBadPrecision, s)
}

// newLogger builds a stderr logger. verbose switches to the development
// encoder at debug level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
