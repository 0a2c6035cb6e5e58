package regression

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/options"
)

const (
	// DefaultLearningRate is the step size applied to each gradient component.
	DefaultLearningRate = 0.001
	// DefaultMaxSteps is the number of descent steps Fit runs.
	DefaultMaxSteps = 100_000
)

// fitConfig holds the settings of one Fit call.
type fitConfig struct {
	learningRate  float64
	maxSteps      int
	progressEvery int
	progress      ProgressFunc
	logger        *slog.Logger
}

// defaultFitConfig returns the default settings: learning rate 0.001,
// 100000 steps, no progress hook, no logger.
func defaultFitConfig() fitConfig {
	return fitConfig{
		learningRate: DefaultLearningRate,
		maxSteps:     DefaultMaxSteps,
	}
}

// FitOption is a functional option for Fit.
type FitOption = options.Option[*fitConfig]

// WithLearningRate sets the step size. It must be finite and positive.
func WithLearningRate(rate float64) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return fmt.Errorf("%w: %v", errs.ErrInvalidLearningRate, rate)
		}
		cfg.learningRate = rate

		return nil
	})
}

// WithMaxSteps sets the number of descent steps. Zero is allowed and leaves
// the parameters untouched.
func WithMaxSteps(steps int) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if steps < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxSteps, steps)
		}
		cfg.maxSteps = steps

		return nil
	})
}

// WithProgress calls fn after every interval-th step and after the final
// step. A nil fn disables the hook.
func WithProgress(interval int, fn ProgressFunc) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if fn != nil && interval <= 0 {
			return fmt.Errorf("progress interval must be positive, got %d", interval)
		}
		cfg.progressEvery = interval
		cfg.progress = fn

		return nil
	})
}

// WithLogger makes Fit emit debug records when it starts and finishes.
func WithLogger(logger *slog.Logger) FitOption {
	return options.NoError(func(cfg *fitConfig) {
		cfg.logger = logger
	})
}
