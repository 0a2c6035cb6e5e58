package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/format"
)

// pointPayload builds the interleaved float64 layout of points on y = 2x + 1.
func pointPayload(n int) []byte {
	buf := make([]byte, 0, n*16)
	for i := range n {
		x := float64(i)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(2*x+1))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, ct := range types {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
	}{
		{"none", NewNoOpCompressor()},
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	}

	sizes := []int{1, 3, 100, 10000}

	for _, tt := range tests {
		for _, n := range sizes {
			payload := pointPayload(n)
			t.Run(tt.name, func(t *testing.T) {
				compressed, err := tt.codec.Compress(payload)
				require.NoError(t, err)
				require.NotEmpty(t, compressed)

				decompressed, err := tt.codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestCodecCompressesRegularPoints(t *testing.T) {
	payload := pointPayload(4096)

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Compressor().Decompress(garbage)
	require.Error(t, err)
}
