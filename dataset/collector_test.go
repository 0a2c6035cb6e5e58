package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Set(t *testing.T) {
	c := NewCollector()
	c.Set(1, 2)
	c.Set(2, 4)
	c.Set(3, 6)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, Points{{1, 2}, {2, 4}, {3, 6}}, c.Points())
}

func TestCollector_LastWriteWins(t *testing.T) {
	c := NewCollector()
	c.Set(1, 2)
	c.Set(2, 4)
	c.Set(1, 10)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, Points{{1, 10}, {2, 4}}, c.Points(), "replaced point keeps its first position")

	y, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 10.0, y)
}

func TestCollector_NegativeZeroIsSameKey(t *testing.T) {
	c := NewCollector()
	c.Set(0, 1)
	c.Set(math.Copysign(0, -1), 5)

	require.Equal(t, 1, c.Len())
	y, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, 5.0, y)
}

func TestCollector_PointsIsACopy(t *testing.T) {
	c := NewCollector()
	c.Set(1, 1)

	ps := c.Points()
	ps[0].Y = 99

	y, _ := c.Get(1)
	assert.Equal(t, 1.0, y)
}

func TestCollector_GetMissing(t *testing.T) {
	c := NewCollector()
	_, ok := c.Get(42)
	assert.False(t, ok)
}

func TestCollector_SetPointsAndReset(t *testing.T) {
	c := NewCollector()
	c.SetPoints(Points{{0, 1}, {1, 3}, {0, 2}})

	assert.Equal(t, Points{{0, 2}, {1, 3}}, c.Points())

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Points())

	c.Set(5, 5)
	assert.Equal(t, Points{{5, 5}}, c.Points())
}

func TestPointsColumns(t *testing.T) {
	ps := Points{{1, 2}, {3, 4}}

	assert.Equal(t, []float64{1, 3}, ps.Xs())
	assert.Equal(t, []float64{2, 4}, ps.Ys())

	clone := ps.Clone()
	clone[0].X = 100
	assert.Equal(t, 1.0, ps[0].X)
	assert.Nil(t, Points(nil).Clone())
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{1, 2}.IsFinite())
	assert.False(t, Point{math.NaN(), 2}.IsFinite())
	assert.False(t, Point{1, math.Inf(-1)}.IsFinite())
}

func TestFingerprint(t *testing.T) {
	a := Points{{1, 2}, {2, 4}}
	b := Points{{1, 2}, {2, 4}}
	reordered := Points{{2, 4}, {1, 2}}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(reordered))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(nil))
}
