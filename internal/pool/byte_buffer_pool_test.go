package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.True(t, bb.Cap() >= 16)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("chunk payload"))

	var dst bytes.Buffer
	n, err := bb.WriteTo(&dst)
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
	assert.Equal(t, "chunk payload", dst.String())
}

func TestByteBuffer_SliceAndSetLength(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.SetLength(4)
	assert.Equal(t, 4, bb.Len())

	s := bb.Slice(0, 4)
	assert.Len(t, s, 4)

	assert.Panics(t, func() { bb.Slice(0, 100) })
	assert.Panics(t, func() { bb.SetLength(-1) })
}

func TestByteBuffer_ExtendAndExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	ok := bb.Extend(4)
	assert.True(t, ok)
	assert.Equal(t, 4, bb.Len())

	ok = bb.Extend(100)
	assert.False(t, ok)

	bb.ExtendOrGrow(100)
	assert.Equal(t, 104, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(4)
	assert.GreaterOrEqual(t, bb.Cap(), 12)
	assert.Equal(t, []byte("12345678"), bb.Bytes())

	bb.Grow(0)
	assert.Equal(t, []byte("12345678"), bb.Bytes())
}

func TestByteBuffer_GrowLargeBufferUsesQuarterGrowth(t *testing.T) {
	bb := NewByteBuffer(8 * ChunkBufferDefaultSize)
	bb.SetLength(8 * ChunkBufferDefaultSize)
	beforeCap := bb.Cap()

	bb.Grow(1)
	assert.Greater(t, bb.Cap(), beforeCap)
}

func TestChunkBufferPool_GetPutRoundTrip(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))

	PutChunkBuffer(bb)

	bb2 := GetChunkBuffer()
	assert.Equal(t, 0, bb2.Len())
}

func TestChunkBufferPool_PutNilIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() { PutChunkBuffer(nil) })
}

func TestContainerBufferPool_Independence(t *testing.T) {
	chunkBuf := GetChunkBuffer()
	containerBuf := GetContainerBuffer()

	assert.Equal(t, ChunkBufferDefaultSize, chunkBuf.Cap())
	assert.Equal(t, ContainerBufferDefaultSize, containerBuf.Cap())

	PutChunkBuffer(chunkBuf)
	PutContainerBuffer(containerBuf)
}

func TestByteBufferPool_MaxThresholdDiscardsOversizedBuffers(t *testing.T) {
	pool := NewByteBufferPool(16, 32)

	bb := pool.Get()
	bb.Grow(1000)
	pool.Put(bb)

	bb2 := pool.Get()
	assert.Equal(t, 16, bb2.Cap())
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	pool := NewByteBufferPool(16, 1024)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := pool.Get()
			bb.MustWrite([]byte("x"))
			pool.Put(bb)
		}()
	}
	wg.Wait()
}
