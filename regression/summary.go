package regression

import (
	"fmt"

	"github.com/arloliu/linefit/dataset"
)

// Summary describes how well a line fits a point set.
type Summary struct {
	// Params is the line being described.
	Params Parameters
	// Loss is the sum of squared residuals.
	Loss float64
	// RSquared is the coefficient of determination (1 is a perfect fit).
	RSquared float64
	// RMSE is the root mean squared error.
	RMSE float64
	// Formula is a human-readable form of the line.
	Formula string
}

// Summarize evaluates p over points.
func Summarize(points dataset.Points, p Parameters) Summary {
	return Summary{
		Params:   p,
		Loss:     Loss(points, p),
		RSquared: RSquared(points, p),
		RMSE:     RMSE(points, p),
		Formula:  fmt.Sprintf("y = %.6f + %.6f*x", p.Intercept, p.Slope),
	}
}

// String returns a one-line representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Formula: %s, Loss: %g, R²: %.4f, RMSE: %.4f}",
		s.Formula, s.Loss, s.RSquared, s.RMSE)
}
