// Package color holds the channel-value and pixel-buffer types XZIB
// reads and writes: Uint128's sibling numeric types, per-channel bit-depth
// extension, the four pixel shapes (L, La, Rgb, Rgba), and the List
// interface, a two-level sum type (outer: carrier, inner: arrangement)
// over the resulting pixel buffers.
package color

import (
	"github.com/panzi/xzib/bio"
	"github.com/panzi/xzib/format"
)

// List is a row-major sequence of pixels sharing one channel carrier and
// one color arrangement. It is the type-erased handle callers use to
// pass a pixel buffer around without committing to its concrete carrier;
// a type assertion to *ListU8 or one of its six siblings recovers the
// concrete type when a caller needs carrier-specific access.
type List interface {
	// Channel returns the concrete carrier backing this buffer.
	Channel() format.ChannelValueType

	// Arrangement returns the color shape (L/La/Rgb/Rgba) of each pixel.
	Arrangement() format.ColorType

	// Len returns the pixel count (not the channel count).
	Len() int
}

// Channels returns the channel count per pixel for l's arrangement.
func Channels(l List) int {
	return int(l.Arrangement().Channels())
}

// ListU8 is a List backed by uint8 channel values.
type ListU8 struct {
	Color format.ColorType
	Data  []uint8
}

// NewListU8 allocates a ListU8 with room for pixelCount pixels.
func NewListU8(color format.ColorType, pixelCount int) *ListU8 {
	return &ListU8{Color: color, Data: make([]uint8, pixelCount*int(color.Channels()))}
}

func (l *ListU8) Channel() format.ChannelValueType { return format.U8 }
func (l *ListU8) Arrangement() format.ColorType    { return l.Color }
func (l *ListU8) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

// Pixel returns the channel slice for pixel i.
func (l *ListU8) Pixel(i int) []uint8 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListU16 is a List backed by uint16 channel values.
type ListU16 struct {
	Color format.ColorType
	Data  []uint16
}

func NewListU16(color format.ColorType, pixelCount int) *ListU16 {
	return &ListU16{Color: color, Data: make([]uint16, pixelCount*int(color.Channels()))}
}

func (l *ListU16) Channel() format.ChannelValueType { return format.U16 }
func (l *ListU16) Arrangement() format.ColorType    { return l.Color }
func (l *ListU16) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListU16) Pixel(i int) []uint16 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListU32 is a List backed by uint32 channel values.
type ListU32 struct {
	Color format.ColorType
	Data  []uint32
}

func NewListU32(color format.ColorType, pixelCount int) *ListU32 {
	return &ListU32{Color: color, Data: make([]uint32, pixelCount*int(color.Channels()))}
}

func (l *ListU32) Channel() format.ChannelValueType { return format.U32 }
func (l *ListU32) Arrangement() format.ColorType    { return l.Color }
func (l *ListU32) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListU32) Pixel(i int) []uint32 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListU64 is a List backed by uint64 channel values.
type ListU64 struct {
	Color format.ColorType
	Data  []uint64
}

func NewListU64(color format.ColorType, pixelCount int) *ListU64 {
	return &ListU64{Color: color, Data: make([]uint64, pixelCount*int(color.Channels()))}
}

func (l *ListU64) Channel() format.ChannelValueType { return format.U64 }
func (l *ListU64) Arrangement() format.ColorType    { return l.Color }
func (l *ListU64) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListU64) Pixel(i int) []uint64 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListU128 is a List backed by 128-bit unsigned channel values.
type ListU128 struct {
	Color format.ColorType
	Data  []bio.Uint128
}

func NewListU128(color format.ColorType, pixelCount int) *ListU128 {
	return &ListU128{Color: color, Data: make([]bio.Uint128, pixelCount*int(color.Channels()))}
}

func (l *ListU128) Channel() format.ChannelValueType { return format.U128 }
func (l *ListU128) Arrangement() format.ColorType    { return l.Color }
func (l *ListU128) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListU128) Pixel(i int) []bio.Uint128 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListF32 is a List backed by IEEE binary32 channel values.
type ListF32 struct {
	Color format.ColorType
	Data  []float32
}

func NewListF32(color format.ColorType, pixelCount int) *ListF32 {
	return &ListF32{Color: color, Data: make([]float32, pixelCount*int(color.Channels()))}
}

func (l *ListF32) Channel() format.ChannelValueType { return format.F32 }
func (l *ListF32) Arrangement() format.ColorType    { return l.Color }
func (l *ListF32) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListF32) Pixel(i int) []float32 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// ListF64 is a List backed by IEEE binary64 channel values.
type ListF64 struct {
	Color format.ColorType
	Data  []float64
}

func NewListF64(color format.ColorType, pixelCount int) *ListF64 {
	return &ListF64{Color: color, Data: make([]float64, pixelCount*int(color.Channels()))}
}

func (l *ListF64) Channel() format.ChannelValueType { return format.F64 }
func (l *ListF64) Arrangement() format.ColorType    { return l.Color }
func (l *ListF64) Len() int                         { return len(l.Data) / int(l.Color.Channels()) }

func (l *ListF64) Pixel(i int) []float64 {
	ch := int(l.Color.Channels())
	return l.Data[i*ch : (i+1)*ch]
}

// New allocates a zero-valued List for the given carrier, arrangement
// and pixel count.
func New(channel format.ChannelValueType, color format.ColorType, pixelCount int) List {
	switch channel {
	case format.U8:
		return NewListU8(color, pixelCount)
	case format.U16:
		return NewListU16(color, pixelCount)
	case format.U32:
		return NewListU32(color, pixelCount)
	case format.U64:
		return NewListU64(color, pixelCount)
	case format.U128:
		return NewListU128(color, pixelCount)
	case format.F32:
		return NewListF32(color, pixelCount)
	case format.F64:
		return NewListF64(color, pixelCount)
	default:
		return nil
	}
}
