package dataset

// Collector accumulates points keyed by x.
//
// Setting an x that is already present replaces its y and keeps the point at
// its first position (last write wins). 0 and -0 are the same key.
// A Collector is not safe for concurrent use.
type Collector struct {
	index  map[float64]int
	points Points
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{index: make(map[float64]int)}
}

// Set records y for x.
func (c *Collector) Set(x, y float64) {
	if i, ok := c.index[x]; ok {
		c.points[i].Y = y
		return
	}

	c.index[x] = len(c.points)
	c.points = append(c.points, Point{X: x, Y: y})
}

// SetPoints records each point in order.
func (c *Collector) SetPoints(ps Points) {
	for _, p := range ps {
		c.Set(p.X, p.Y)
	}
}

// Get returns the y recorded for x.
func (c *Collector) Get(x float64) (float64, bool) {
	i, ok := c.index[x]
	if !ok {
		return 0, false
	}

	return c.points[i].Y, true
}

// Len returns the number of distinct x values.
func (c *Collector) Len() int {
	return len(c.points)
}

// Points returns a copy of the collected points in first-insertion order.
func (c *Collector) Points() Points {
	out := make(Points, len(c.points))
	copy(out, c.points)

	return out
}

// Reset removes all points.
func (c *Collector) Reset() {
	clear(c.index)
	c.points = c.points[:0]
}
