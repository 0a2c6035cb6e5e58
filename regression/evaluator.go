package regression

import (
	"math"

	"github.com/arloliu/linefit/dataset"
)

// Target selects which parameter PartialDerivative differentiates by.
//
// The zero value is not a valid target; it stands for "no differentiation
// target" and makes PartialDerivative report no result.
type Target int

const (
	// WithRespectToIntercept differentiates the squared residual by the intercept.
	WithRespectToIntercept Target = iota + 1
	// WithRespectToSlope differentiates the squared residual by the slope.
	WithRespectToSlope
)

// targetNames maps Target to their string representations.
var targetNames = map[Target]string{
	WithRespectToIntercept: "intercept",
	WithRespectToSlope:     "slope",
}

// String returns the name of the parameter t differentiates by.
func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}

	return "none"
}

// Valid reports whether t is one of the two differentiation targets.
func (t Target) Valid() bool {
	_, ok := targetNames[t]
	return ok
}

// Predict returns intercept + slope*x.
func Predict(intercept, slope, x float64) float64 {
	return intercept + slope*x
}

// Loss returns the sum of squared residuals of p over points, 0 for no points.
func Loss(points dataset.Points, p Parameters) float64 {
	loss := 0.0
	for _, pt := range points {
		r := pt.Y - Predict(p.Intercept, p.Slope, pt.X)
		loss += r * r
	}

	return loss
}

// PartialDerivative returns the derivative of one point's squared residual
// with respect to the parameter chosen by target.
//
//	residual = y - intercept - slope*x
//	WithRespectToIntercept: -2 * residual
//	WithRespectToSlope:     -2 * x * residual
//
// For any other target it returns (NaN, false). Passing an invalid target is
// a programming error on the caller's side, not a user input error.
func PartialDerivative(target Target, intercept, slope, x, y float64) (float64, bool) {
	residual := y - intercept - slope*x

	switch target {
	case WithRespectToIntercept:
		return -2 * residual, true
	case WithRespectToSlope:
		return -2 * x * residual, true
	default:
		return math.NaN(), false
	}
}

// ComputeGradient sums the per-point partial derivatives of the loss at
// (intercept, slope). Both components are 0 for no points.
func ComputeGradient(points dataset.Points, intercept, slope float64) Gradient {
	var g Gradient
	for _, pt := range points {
		if d, ok := PartialDerivative(WithRespectToIntercept, intercept, slope, pt.X, pt.Y); ok {
			g.DIntercept += d
		}
		if d, ok := PartialDerivative(WithRespectToSlope, intercept, slope, pt.X, pt.Y); ok {
			g.DSlope += d
		}
	}

	return g
}
