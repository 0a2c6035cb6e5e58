package regression

import (
	"fmt"
	"math"
)

// Parameters is the line being fitted: y = Intercept + Slope*x.
type Parameters struct {
	Intercept float64 `yaml:"intercept"`
	Slope     float64 `yaml:"slope"`
}

// DefaultParameters returns the starting point of a fit: intercept 0, slope 1.
func DefaultParameters() Parameters {
	return Parameters{Intercept: 0.0, Slope: 1.0}
}

// Predict evaluates the line at x.
func (p Parameters) Predict(x float64) float64 {
	return Predict(p.Intercept, p.Slope, x)
}

// IsFinite reports whether neither parameter has overflowed to ±Inf or NaN.
func (p Parameters) IsFinite() bool {
	return !math.IsNaN(p.Intercept) && !math.IsInf(p.Intercept, 0) &&
		!math.IsNaN(p.Slope) && !math.IsInf(p.Slope, 0)
}

// Rounded returns p with both parameters rounded to the given number of
// decimal digits, for display.
func (p Parameters) Rounded(digits int) Parameters {
	scale := math.Pow(10, float64(digits))
	round := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		r := math.Round(v*scale) / scale
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return v
		}
		if r == 0 {
			return 0 // drop the sign of -0
		}

		return r
	}

	return Parameters{Intercept: round(p.Intercept), Slope: round(p.Slope)}
}

// String returns a compact representation of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("Parameters{Intercept: %g, Slope: %g}", p.Intercept, p.Slope)
}

// Gradient holds the partial derivatives of the loss at one parameter point.
// It is recomputed from scratch on every descent step.
type Gradient struct {
	DIntercept float64
	DSlope     float64
}
