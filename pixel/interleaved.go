package pixel

import (
	"math"

	"github.com/panzi/xzib/bio"
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
)

// planeLayout holds the row/channel/plane byte strides shared by every
// interleaved gather and scatter below: plane p of channel c of row y
// lives at row*rowLen + c*channelLen + p*planeLen, a ceil(width/8)-byte
// bitmap indexed by pixel column.
type planeLayout struct {
	planeLen   int
	channelLen int
	rowLen     int
}

func newPlaneLayout(planes uint8, channels uint8, width uint32) planeLayout {
	planeLen := int((width + 7) / 8)
	channelLen := planeLen * int(planes)
	return planeLayout{
		planeLen:   planeLen,
		channelLen: channelLen,
		rowLen:     channelLen * int(channels),
	}
}

// gatherBits reads the planes bits stored for one pixel of one channel,
// bit p at position p of the result (LSB-first across the ceil(width/8)
// bytes reserved for that plane).
func gatherBits(channelBytes []byte, layout planeLayout, x int, planes uint8) bio.Uint128 {
	byteOffset := x / 8
	bitOffset := uint(x % 8)

	var value bio.Uint128
	for p := uint8(0); p < planes; p++ {
		planeIndex := layout.planeLen * int(p)
		bit := (channelBytes[planeIndex+byteOffset] >> bitOffset) & 1
		if bit != 0 {
			value = value.Or(bio.Uint128FromUint8(1).Shl(uint(p)))
		}
	}
	return value
}

// scatterBits is the inverse of gatherBits: it sets the appropriate bit
// in each of the planes bitmaps for raw's low planes bits.
func scatterBits(channelBytes []byte, layout planeLayout, x int, planes uint8, raw bio.Uint128) {
	byteOffset := x / 8
	bitOffset := uint(x % 8)

	for p := uint8(0); p < planes; p++ {
		if raw.Shr(uint(p)).LowByte()&1 == 0 {
			continue
		}
		planeIndex := layout.planeLen * int(p)
		channelBytes[planeIndex+byteOffset] |= 1 << bitOffset
	}
}

// DecodeInterleaved parses a bitplane-interleaved BODY payload into a
// pixel buffer. Integer samples are gathered bit-by-bit into their raw
// N-bit value and then extended to the carrier's full range (planes==1
// is the black/white special case: a single gathered bit times 255).
// Float samples are gathered the same way but their 32 or 64 bits are
// reinterpreted directly as the IEEE bit pattern, with no extension.
func DecodeInterleaved(data []byte, isFloat bool, planes uint8, channels uint8, width uint32, height uint32) (color.List, error) {
	arrangement, err := format.FromChannels(channels)
	if err != nil {
		return nil, err
	}
	if planes == 0 || planes > 128 {
		return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "illegal plane count")
	}

	numberType := format.Int
	if isFloat {
		numberType = format.Float
	}
	carrier, err := format.FromPlanes(numberType, planes)
	if err != nil {
		return nil, err
	}

	layout := newPlaneLayout(planes, channels, width)
	if len(data) < layout.rowLen*int(height) {
		return nil, errs.ErrTruncatedChunk
	}

	pixelCount := int(width) * int(height)
	list := color.New(carrier, arrangement, pixelCount)
	nch := int(arrangement.Channels())

	for y := 0; y < int(height); y++ {
		row := data[y*layout.rowLen : (y+1)*layout.rowLen]
		for c := 0; c < nch; c++ {
			channelBytes := row[c*layout.channelLen : (c+1)*layout.channelLen]
			for x := 0; x < int(width); x++ {
				raw := gatherBits(channelBytes, layout, x, planes)
				pixelIndex := y*int(width) + x
				storeSample(list, pixelIndex*nch+c, raw, planes)
			}
		}
	}
	return list, nil
}

// storeSample writes a gathered raw value into list at index. Float
// carriers reinterpret the raw bits directly; every integer carrier
// extends the raw N-bit pattern to its full range, except planes==1
// which is the black/white special case (a single bit times 255).
func storeSample(list color.List, index int, raw bio.Uint128, planes uint8) {
	switch l := list.(type) {
	case *color.ListU8:
		if planes == 1 {
			l.Data[index] = raw.LowByte() * 255
		} else {
			l.Data[index] = color.ExtendU8(raw.LowByte(), planes)
		}
	case *color.ListU16:
		l.Data[index] = color.ExtendU16(uint16(raw.Lo), planes)
	case *color.ListU32:
		l.Data[index] = color.ExtendU32(uint32(raw.Lo), planes)
	case *color.ListU64:
		l.Data[index] = color.ExtendU64(raw.Lo, planes)
	case *color.ListU128:
		l.Data[index] = color.ExtendU128(raw, planes)
	case *color.ListF32:
		l.Data[index] = math.Float32frombits(uint32(raw.Lo))
	case *color.ListF64:
		l.Data[index] = math.Float64frombits(raw.Lo)
	}
}

// EncodeInterleaved is the inverse of DecodeInterleaved: each pixel's
// stored channel value is reduced to its raw N-bit pattern (the inverse
// of extend, or the IEEE bit pattern itself for floats) and scattered
// LSB-first across the planes bitmaps.
func EncodeInterleaved(list color.List, planes uint8, width uint32, height uint32) ([]byte, error) {
	if planes == 0 || planes > 128 {
		return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams, "illegal plane count")
	}

	arrangement := list.Arrangement()
	nch := int(arrangement.Channels())
	layout := newPlaneLayout(planes, uint8(nch), width)
	out := make([]byte, layout.rowLen*int(height))

	for y := 0; y < int(height); y++ {
		row := out[y*layout.rowLen : (y+1)*layout.rowLen]
		for c := 0; c < nch; c++ {
			channelBytes := row[c*layout.channelLen : (c+1)*layout.channelLen]
			for x := 0; x < int(width); x++ {
				pixelIndex := y*int(width) + x
				raw, err := rawSample(list, pixelIndex*nch+c, planes)
				if err != nil {
					return nil, err
				}
				scatterBits(channelBytes, layout, x, planes, raw)
			}
		}
	}
	return out, nil
}

func rawSample(list color.List, index int, planes uint8) (bio.Uint128, error) {
	switch l := list.(type) {
	case *color.ListU8:
		v := l.Data[index]
		if planes == 1 {
			return bio.Uint128FromUint8(v >> 7), nil
		}
		return bio.Uint128FromUint8(v >> (8 - planes)), nil
	case *color.ListU16:
		v := l.Data[index] >> (16 - planes)
		return bio.Uint128{Lo: uint64(v)}, nil
	case *color.ListU32:
		v := l.Data[index] >> (32 - planes)
		return bio.Uint128{Lo: uint64(v)}, nil
	case *color.ListU64:
		if planes == 64 {
			return bio.Uint128{Lo: l.Data[index]}, nil
		}
		return bio.Uint128{Lo: l.Data[index] >> (64 - planes)}, nil
	case *color.ListU128:
		v := l.Data[index]
		if planes == 128 {
			return v, nil
		}
		return v.Shr(uint(128 - planes)), nil
	case *color.ListF32:
		return bio.Uint128{Lo: uint64(math.Float32bits(l.Data[index]))}, nil
	case *color.ListF64:
		return bio.Uint128{Lo: math.Float64bits(l.Data[index])}, nil
	default:
		return bio.Uint128{}, errs.NewWriteErrorMessage(errs.WriteInvalidParams, "unsupported channel carrier")
	}
}
