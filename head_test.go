package xzib

import (
	"bytes"
	"testing"

	"github.com/panzi/xzib/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHead_RoundTrip(t *testing.T) {
	h, err := NewHead(format.Int, false, format.Rgb, 8, 4, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf))

	got, err := ReadHead(&buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestNewHead_RejectsLa(t *testing.T) {
	_, err := NewHead(format.Int, false, format.La, 8, 1, 1)
	assert.Error(t, err)
}

func TestNewHead_RejectsInvalidPlanes(t *testing.T) {
	_, err := NewHead(format.Int, false, format.Rgb, 3, 1, 1)
	assert.Error(t, err)
}

func TestNewHead_RejectsZeroDimensions(t *testing.T) {
	_, err := NewHead(format.Int, false, format.Rgb, 8, 0, 1)
	assert.Error(t, err)
}

func TestNewHead_WithIndexPlanes(t *testing.T) {
	h, err := NewHead(format.Int, false, format.L, 8, 1, 1, WithIndexPlanes(4))
	require.NoError(t, err)
	assert.Equal(t, uint8(4), h.IndexPlanes)
}

func TestNewHead_WithIndexPlanesRejectsInvalid(t *testing.T) {
	_, err := NewHead(format.Int, false, format.L, 8, 1, 1, WithIndexPlanes(3))
	assert.Error(t, err)
}

func TestReadHead_RejectsBadMagic(t *testing.T) {
	_, err := ReadHead(bytes.NewReader([]byte("NOPE\x00\x01\x08\x00\x01\x00\x00\x00\x01\x00\x00\x00")))
	assert.Error(t, err)
}

func TestHeadFlags(t *testing.T) {
	h, err := NewHead(format.Float, true, format.L, 32, 1, 1)
	require.NoError(t, err)
	assert.True(t, h.Interleaved())
	assert.Equal(t, format.Float, h.NumberType())
}
