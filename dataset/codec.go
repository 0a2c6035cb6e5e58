package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/linefit/compress"
	"github.com/arloliu/linefit/endian"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/hash"
	"github.com/arloliu/linefit/internal/options"
	"github.com/arloliu/linefit/internal/pool"
)

// encodeConfig holds Encode settings.
type encodeConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload compression. The default is CompressionNone.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *encodeConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("invalid compression type: %v", ct)
		}
		cfg.compression = ct

		return nil
	})
}

// WithLittleEndian lays out the blob little-endian (the default).
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian lays out the blob big-endian.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// Encode serializes ps into a dataset blob.
//
// Returns:
//   - []byte: header followed by the (possibly compressed) payload
//   - error: invalid option, a non-finite coordinate (errs.ErrInvalidCoordinate),
//     more than math.MaxUint32 points, or compression failure
func Encode(ps Points, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if uint64(len(ps)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyPoints, len(ps))
	}
	for i, p := range ps {
		if !p.IsFinite() {
			return nil, fmt.Errorf("point %d: %w: (%v, %v) is not finite", i, errs.ErrInvalidCoordinate, p.X, p.Y)
		}
	}

	header := Header{
		Version:     Version,
		Compression: cfg.compression,
		PointCount:  uint32(len(ps)), //nolint:gosec // bounded above
	}
	if endian.IsBigEndian(cfg.engine) {
		header.Flags |= flagBigEndian
	}
	engine := header.Engine()

	buf := pool.GetPointBuffer()
	defer pool.PutPointBuffer(buf)

	buf.Grow(len(ps) * pointSize)
	for _, p := range ps {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(p.X))
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(p.Y))
	}
	header.Checksum = hash.Sum64(buf.Bytes())

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	// payload may alias the pooled buffer, so it is copied out here.
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// Decode parses a dataset blob produced by Encode.
//
// The decoded points get the same checks as ParseYAML: duplicate x values are
// folded, the last one winning, and a non-finite coordinate is rejected with
// errs.ErrInvalidCoordinate.
func Decode(data []byte) (Points, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if uint64(len(payload)) != uint64(header.PointCount)*pointSize {
		return nil, fmt.Errorf("%w: %d bytes for %d points", errs.ErrInvalidPayloadSize, len(payload), header.PointCount)
	}
	if hash.Sum64(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return normalize(decodePayload(payload, header.PointCount, header.Engine()))
}

func decodePayload(payload []byte, count uint32, engine endian.EndianEngine) Points {
	ps := make(Points, count)
	for i := range ps {
		off := i * pointSize
		ps[i].X = math.Float64frombits(engine.Uint64(payload[off : off+8]))
		ps[i].Y = math.Float64frombits(engine.Uint64(payload[off+8 : off+16]))
	}

	return ps
}
