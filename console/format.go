package console

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the session prints numbers: the shortest
// representation that reads back as v, always with a fractional part or an
// exponent (2 prints as "2.0", 0.00001 as "1e-05"). Magnitudes below 1e-4
// or from 1e16 up use exponent notation.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	var s string
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}
