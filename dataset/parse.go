package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/linefit/errs"
)

// ParseCoordinate parses a single user-entered coordinate.
//
// Surrounding whitespace is ignored. Empty, unparsable and non-finite input
// (NaN, ±Inf) return an error wrapping errs.ErrInvalidCoordinate.
func ParseCoordinate(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", errs.ErrInvalidCoordinate)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidCoordinate, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", errs.ErrInvalidCoordinate, s)
	}

	return v, nil
}

// ParsePoint parses an x and a y coordinate. Both must be valid.
func ParsePoint(xText, yText string) (Point, error) {
	x, err := ParseCoordinate(xText)
	if err != nil {
		return Point{}, fmt.Errorf("x: %w", err)
	}

	y, err := ParseCoordinate(yText)
	if err != nil {
		return Point{}, fmt.Errorf("y: %w", err)
	}

	return Point{X: x, Y: y}, nil
}
