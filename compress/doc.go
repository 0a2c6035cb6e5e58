// Package compress provides the codecs applied to dataset blob payloads.
//
// A payload is the interleaved float64 bits of every (x, y) point. Point sets
// collected by hand are small, but generated or exported sets can run into the
// millions of points, and regularly spaced x values compress well.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: payload stored as-is
//   - Zstd: best ratio (klauspost/compress/zstd, or valyala/gozstd when built
//     with the "gozstd" tag and cgo enabled)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decode (pierrec/lz4/v4 block format)
//
// Usage:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs are stateless values and safe for concurrent use.
package compress
