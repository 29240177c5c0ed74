package pixel

import (
	"testing"

	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPalette_Basic(t *testing.T) {
	indices := color.NewListU8(format.L, 3)
	indices.Data = []uint8{0, 1, 2}

	palette := color.NewListU8(format.Rgb, 3)
	palette.Data = []uint8{
		255, 0, 0,
		0, 255, 0,
		0, 0, 255,
	}

	out, err := ApplyPalette(indices, palette)
	require.NoError(t, err)
	l, ok := out.(*color.ListU8)
	assert.True(t, ok)
	assert.Equal(t, []uint8{255, 0, 0}, l.Pixel(0))
	assert.Equal(t, []uint8{0, 255, 0}, l.Pixel(1))
	assert.Equal(t, []uint8{0, 0, 255}, l.Pixel(2))
}

func TestApplyPalette_OutOfRangeIndexYieldsZero(t *testing.T) {
	indices := color.NewListU8(format.L, 2)
	indices.Data = []uint8{0, 200}

	palette := color.NewListU8(format.Rgba, 3)
	palette.Data = []uint8{
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
	}

	out, err := ApplyPalette(indices, palette)
	require.NoError(t, err)
	l := out.(*color.ListU8)
	assert.Equal(t, []uint8{10, 20, 30, 40}, l.Pixel(0))
	assert.Equal(t, []uint8{0, 0, 0, 0}, l.Pixel(1))
}

func TestApplyPalette_OutputLengthMatchesIndexLength(t *testing.T) {
	indices := color.NewListU16(format.L, 5)
	palette := color.NewListU16(format.Rgba, 2)

	out, err := ApplyPalette(indices, palette)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Len())
	assert.Equal(t, format.Rgba, out.Arrangement())
}

func TestApplyPalette_RejectsNonLIndices(t *testing.T) {
	indices := color.NewListU8(format.Rgb, 2)
	palette := color.NewListU8(format.Rgb, 2)

	_, err := ApplyPalette(indices, palette)
	assert.Error(t, err)
}
