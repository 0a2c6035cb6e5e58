package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("point"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("point"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "Reset should keep capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Grow(16)
		assert.Equal(t, 32, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(16)
		_, _ = bb.Write([]byte("0123456789abcdef"))
		bb.Grow(1)
		assert.GreaterOrEqual(t, cap(bb.B), 16+PointBufferDefaultSize)
		assert.Equal(t, []byte("0123456789abcdef"), bb.Bytes(), "Grow should keep contents")
	})

	t.Run("grows at least by the requested amount", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PointBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(bb.B), PointBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := PointBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(128, 256)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffer must come back empty")

	// Oversized and nil buffers are dropped without panicking.
	p.Put(NewByteBuffer(1024))
	p.Put(nil)
}

func TestPointBuffer(t *testing.T) {
	bb := GetPointBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutPointBuffer(bb)
}
