package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
)

func TestLeastSquares(t *testing.T) {
	tests := []struct {
		name   string
		points dataset.Points
		want   Parameters
	}{
		{
			name:   "exact line",
			points: dataset.Points{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}},
			want:   Parameters{Intercept: 0, Slope: 2},
		},
		{
			name:   "two points",
			points: dataset.Points{{X: 0, Y: 1}, {X: 2, Y: -3}},
			want:   Parameters{Intercept: 1, Slope: -2},
		},
		{
			// x̄ = 1.75, ȳ = 4.25, Sxy = 17.25, Sxx = 8.75
			name:   "noisy",
			points: dataset.Points{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 4}, {X: 4, Y: 9}},
			want:   Parameters{Intercept: 4.25 - 1.75*17.25/8.75, Slope: 17.25 / 8.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeastSquares(tt.points)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Intercept, got.Intercept, 1e-9)
			assert.InDelta(t, tt.want.Slope, got.Slope, 1e-9)
		})
	}
}

func TestLeastSquares_Underdetermined(t *testing.T) {
	tests := []struct {
		name   string
		points dataset.Points
	}{
		{name: "empty", points: nil},
		{name: "single point", points: dataset.Points{{X: 0, Y: 1}}},
		{name: "vertical", points: dataset.Points{{X: 2, Y: 1}, {X: 2, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LeastSquares(tt.points)
			require.ErrorIs(t, err, errs.ErrUnderdetermined)
		})
	}
}

func TestRSquared(t *testing.T) {
	points := dataset.Points{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}

	assert.InDelta(t, 1.0, RSquared(points, Parameters{Intercept: 0, Slope: 2}), 1e-12)
	// Predicting the mean everywhere explains nothing.
	assert.InDelta(t, 0.0, RSquared(points, Parameters{Intercept: 4, Slope: 0}), 1e-12)
	assert.Less(t, RSquared(points, DefaultParameters()), 0.0)
}

func TestRSquared_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, RSquared(nil, DefaultParameters()))
	assert.Equal(t, 0.0, RSquared(dataset.Points{{X: 1, Y: 3}, {X: 2, Y: 3}}, Parameters{Intercept: 3}))
}

func TestRMSE(t *testing.T) {
	points := dataset.Points{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}

	assert.Equal(t, 0.0, RMSE(nil, DefaultParameters()))
	assert.InDelta(t, 0.0, RMSE(points, Parameters{Slope: 2}), 1e-12)
	// residuals are all -1
	assert.InDelta(t, 1.0, RMSE(points, Parameters{Intercept: 1, Slope: 2}), 1e-12)
}

func TestSummarize(t *testing.T) {
	points := dataset.Points{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}
	s := Summarize(points, Parameters{Intercept: 1, Slope: 2})

	assert.InDelta(t, 3.0, s.Loss, 1e-12)
	assert.InDelta(t, 1.0, s.RMSE, 1e-12)
	assert.Equal(t, "y = 1.000000 + 2.000000*x", s.Formula)
	assert.Contains(t, s.String(), s.Formula)
}
