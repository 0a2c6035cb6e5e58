package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
)

// LeastSquares returns the closed-form least-squares line through points.
//
// It is the exact minimizer that Fit approaches, and is meant for checking a
// descent result. It needs at least two distinct x values and returns
// errs.ErrUnderdetermined otherwise.
func LeastSquares(points dataset.Points) (Parameters, error) {
	if distinctX(points) < 2 {
		return Parameters{}, fmt.Errorf("%w: got %d point(s)", errs.ErrUnderdetermined, len(points))
	}

	alpha, beta := stat.LinearRegression(points.Xs(), points.Ys(), nil, false)

	return Parameters{Intercept: alpha, Slope: beta}, nil
}

// RSquared returns the coefficient of determination of p over points.
//
// It returns 0 when there are no points or every y is the same, where the
// total sum of squares is zero.
func RSquared(points dataset.Points, p Parameters) float64 {
	if len(points) == 0 {
		return 0
	}

	ys := points.Ys()
	if floats.Min(ys) == floats.Max(ys) {
		return 0
	}

	return stat.RSquared(points.Xs(), ys, nil, p.Intercept, p.Slope)
}

// RMSE returns the root mean squared error of p over points, 0 for no points.
func RMSE(points dataset.Points, p Parameters) float64 {
	if len(points) == 0 {
		return 0
	}

	return math.Sqrt(Loss(points, p) / float64(len(points)))
}

func distinctX(points dataset.Points) int {
	seen := make(map[float64]struct{}, len(points))
	for _, pt := range points {
		seen[pt.X] = struct{}{}
	}

	return len(seen)
}
