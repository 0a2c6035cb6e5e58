package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float64Pairs computes the xxHash64 over the little-endian IEEE 754 bits of
// each (x, y) pair in order. The result does not depend on host byte order.
func Float64Pairs(n int, at func(i int) (x, y float64)) uint64 {
	d := xxhash.New()

	var buf [16]byte
	for i := range n {
		x, y := at(i)
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(x))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(y))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
