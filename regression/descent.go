package regression

import (
	"time"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/options"
)

// Result reports what a Fit call did.
type Result struct {
	// Steps is the number of descent steps executed.
	Steps int
}

// Progress is a snapshot handed to a ProgressFunc.
type Progress struct {
	Step   int
	Params Parameters
	Loss   float64
}

// ProgressFunc observes a running fit. It must not retain or modify the
// points passed to Fit.
type ProgressFunc func(Progress)

// Fit runs batch gradient descent on params in place.
//
// Each step computes the full gradient at the current parameters and only
// then updates both of them:
//
//	Intercept -= DIntercept * learningRate
//	Slope     -= DSlope * learningRate
//
// Fit always runs exactly the configured number of steps; there is no
// convergence check. With no points the gradient is zero, params stay as
// they are, and Steps still equals the configured step count.
//
// Parameters:
//   - points: dataset to fit, read-only
//   - params: starting parameters, overwritten with the fitted line
//   - opts: WithLearningRate, WithMaxSteps, WithProgress, WithLogger
//
// Returns:
//   - Result: number of steps executed
//   - error: errs.ErrNilParameters or an invalid option; params are untouched
func Fit(points dataset.Points, params *Parameters, opts ...FitOption) (Result, error) {
	if params == nil {
		return Result{}, errs.ErrNilParameters
	}

	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	start := time.Now()
	if cfg.logger != nil {
		cfg.logger.Debug("fit started",
			"points", len(points),
			"learning_rate", cfg.learningRate,
			"max_steps", cfg.maxSteps,
			"intercept", params.Intercept,
			"slope", params.Slope,
		)
	}

	steps := 0
	for range cfg.maxSteps {
		g := ComputeGradient(points, params.Intercept, params.Slope)
		interceptNudge := g.DIntercept * cfg.learningRate
		slopeNudge := g.DSlope * cfg.learningRate
		params.Intercept -= interceptNudge
		params.Slope -= slopeNudge
		steps++

		if cfg.progress != nil && (steps%cfg.progressEvery == 0 || steps == cfg.maxSteps) {
			cfg.progress(Progress{Step: steps, Params: *params, Loss: Loss(points, *params)})
		}
	}

	if cfg.logger != nil {
		cfg.logger.Debug("fit finished",
			"steps", steps,
			"intercept", params.Intercept,
			"slope", params.Slope,
			"finite", params.IsFinite(),
			"elapsed", time.Since(start),
		)
	}

	return Result{Steps: steps}, nil
}
