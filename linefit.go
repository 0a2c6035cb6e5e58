// Package linefit fits a straight line y = intercept + slope*x to a set of
// points by fixed-step batch gradient descent on the sum of squared errors.
//
// # Core Features
//
//   - Loss and analytic gradient evaluation over an ordered point set
//   - Fixed step count descent with a constant learning rate
//   - Optional progress hook and structured debug logging
//   - Closed-form least-squares reference and R² for checking results
//   - Compact binary dataset blobs (None, Zstd, S2, LZ4) with xxHash64 checksums
//
// # Basic Usage
//
// Collecting points and fitting a line:
//
//	import "github.com/arloliu/linefit"
//
//	c := linefit.NewCollector()
//	c.Set(1, 2)
//	c.Set(2, 4)
//	c.Set(3, 6)
//
//	params, res, _ := linefit.Fit(c.Points())
//	fmt.Printf("steps=%d intercept=%.6f slope=%.6f\n", res.Steps, params.Intercept, params.Slope)
//
// Tuning the descent:
//
//	params, _, err := linefit.Fit(points,
//	    regression.WithLearningRate(0.0005),
//	    regression.WithMaxSteps(200_000),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression and
// dataset packages. For advanced usage, such as starting from custom parameters
// or reading the gradient directly, use the regression package.
package linefit

import (
	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/regression"
)

// NewCollector creates an empty point collector. Setting an x value that is
// already present replaces its y value.
func NewCollector() *dataset.Collector {
	return dataset.NewCollector()
}

// DefaultParameters returns the starting line of a fit: intercept 0, slope 1.
func DefaultParameters() regression.Parameters {
	return regression.DefaultParameters()
}

// Fit fits a line to points starting from DefaultParameters.
//
// Parameters:
//   - points: dataset to fit, not modified
//   - opts: regression options such as WithLearningRate and WithMaxSteps
//
// Returns:
//   - regression.Parameters: fitted line
//   - regression.Result: number of descent steps executed
//   - error: invalid option
func Fit(points dataset.Points, opts ...regression.FitOption) (regression.Parameters, regression.Result, error) {
	params := regression.DefaultParameters()
	res, err := regression.Fit(points, &params, opts...)
	if err != nil {
		return regression.Parameters{}, regression.Result{}, err
	}

	return params, res, nil
}
