package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZlibRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")

	for level := 0; level <= 9; level++ {
		codec, err := NewZlibCompressor(level)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)

		got, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestZlibInvalidLevel(t *testing.T) {
	_, err := NewZlibCompressor(10)
	require.Error(t, err)
}

func TestZlibDecompressInvalidStream(t *testing.T) {
	codec, err := NewZlibCompressor(6)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
}

func TestNoOpCompressor(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	out, err = c.Decompress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}
