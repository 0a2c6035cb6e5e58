// Package dataset holds the (x, y) point sets consumed by the regression
// package, and the helpers that build and move them.
//
// # Collecting points
//
// A Collector keys points by x: setting an x that already exists replaces its
// y in place, so the resulting Points are unique by x and keep the order in
// which each x was first seen.
//
//	c := dataset.NewCollector()
//	p, err := dataset.ParsePoint("1", "2")
//	if err != nil {
//	    // user typo, report and continue
//	}
//	c.Set(p.X, p.Y)
//	points := c.Points()
//
// # Dataset blobs
//
// Encode and Decode convert Points to and from a compact binary blob:
//
//	+--------+---------+-------------+-------+---------+-------------+----------+
//	| magic  | version | compression | flags | reserved| point count | checksum |
//	| 2 B    | 1 B     | 1 B         | 1 B   | 3 B     | 4 B         | 8 B      |
//	+--------+---------+-------------+-------+---------+-------------+----------+
//	| payload: x0 y0 x1 y1 ... as float64 bits, compressed                     |
//	+--------------------------------------------------------------------------+
//
// The flags byte selects the byte order of every multi-byte field. The
// checksum is the xxHash64 of the uncompressed payload.
package dataset
