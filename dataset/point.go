package dataset

import (
	"math"

	"github.com/arloliu/linefit/internal/hash"
)

// Point is a single observation.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Points is an ordered dataset. Functions that take Points treat it as read-only.
type Points []Point

// Xs returns the x column.
func (ps Points) Xs() []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the y column.
func (ps Points) Ys() []float64 {
	ys := make([]float64, len(ps))
	for i, p := range ps {
		ys[i] = p.Y
	}

	return ys
}

// Clone returns a copy that shares no memory with ps.
func (ps Points) Clone() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, len(ps))
	copy(out, ps)

	return out
}

// Fingerprint returns an order-sensitive xxHash64 of the points' IEEE 754 bits.
// Equal fingerprints identify the same dataset regardless of blob encoding.
func Fingerprint(ps Points) uint64 {
	return hash.Float64Pairs(len(ps), func(i int) (float64, float64) {
		return ps[i].X, ps[i].Y
	})
}
