// Package config loads the YAML run configuration of the linefit command.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/logger"
	"github.com/arloliu/linefit/regression"
)

// Config is a linefit run configuration.
type Config struct {
	LogLevel      string                `yaml:"log_level"`
	LearningRate  float64               `yaml:"learning_rate"`
	MaxSteps      int                   `yaml:"max_steps"`
	ProgressEvery int                   `yaml:"progress_every"`
	Initial       regression.Parameters `yaml:"initial"`
	Compression   string                `yaml:"compression"`
	Points        dataset.Points        `yaml:"points"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		LearningRate: regression.DefaultLearningRate,
		MaxSteps:     regression.DefaultMaxSteps,
		Initial:      regression.DefaultParameters(),
		Compression:  "zstd",
	}
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses a Config from YAML bytes and validates it. Keys missing from
// data keep their Default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validate performs validation on the configuration
func validate(cfg *Config) error {
	if !logger.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if math.IsNaN(cfg.LearningRate) || math.IsInf(cfg.LearningRate, 0) || cfg.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be a finite positive number, got %v", cfg.LearningRate)
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("max_steps cannot be negative, got %d", cfg.MaxSteps)
	}
	if cfg.ProgressEvery < 0 {
		return fmt.Errorf("progress_every cannot be negative, got %d", cfg.ProgressEvery)
	}
	if !cfg.Initial.IsFinite() {
		return fmt.Errorf("initial parameters must be finite, got %s", cfg.Initial)
	}

	if _, err := format.ParseCompressionType(cfg.Compression); err != nil {
		return fmt.Errorf("compression: %w", err)
	}

	for i, p := range cfg.Points {
		if !p.IsFinite() {
			return fmt.Errorf("point %d: coordinates must be finite, got (%v, %v)", i, p.X, p.Y)
		}
	}

	return nil
}

// CompressionType returns the parsed compression setting.
func (c *Config) CompressionType() format.CompressionType {
	ct, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return format.CompressionZstd
	}

	return ct
}

// Dataset returns the configured seed points with duplicate x values folded,
// the last entry winning.
func (c *Config) Dataset() dataset.Points {
	col := dataset.NewCollector()
	col.SetPoints(c.Points)

	return col.Points()
}

// FitOptions translates the configuration into regression options. When
// ProgressEvery is set, progress is logged at info level through log.
func (c *Config) FitOptions(log *slog.Logger) []regression.FitOption {
	opts := []regression.FitOption{
		regression.WithLearningRate(c.LearningRate),
		regression.WithMaxSteps(c.MaxSteps),
	}
	if log == nil {
		return opts
	}

	opts = append(opts, regression.WithLogger(log))
	if c.ProgressEvery > 0 {
		opts = append(opts, regression.WithProgress(c.ProgressEvery, func(p regression.Progress) {
			log.Info("fit progress",
				"step", p.Step,
				"intercept", p.Params.Intercept,
				"slope", p.Params.Slope,
				"loss", p.Loss,
			)
		}))
	}

	return opts
}
