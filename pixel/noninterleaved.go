// Package pixel implements the two BODY payload layouts XZIB supports:
// byte-packed (with sub-byte 1-bit and 4-bit special cases) and
// bitplane-interleaved. Both directions, reading raw chunk bytes into
// a color.List and writing a color.List back to raw bytes, live here,
// grounded on the per-pixel bit-depth extension already implemented by
// the color package.
package pixel

import (
	"bytes"

	"github.com/panzi/xzib/bio"
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
)

// DecodeNonInterleaved parses a byte-packed BODY payload into a pixel
// buffer. planes is the header's bit depth; for integer carriers narrower
// than the header's own bit depth packing (1 and 4), samples are bit- or
// nibble-packed across the byte stream before being extended to the full
// carrier range. 8/16/32/64/128 samples are stored byte-aligned with no
// extension needed, and so are the two float depths (32/64).
func DecodeNonInterleaved(data []byte, isFloat bool, planes uint8, channels uint8) (color.List, error) {
	arrangement, err := format.FromChannels(channels)
	if err != nil {
		return nil, err
	}

	if !isFloat && planes == 1 {
		return decode1Bit(data, arrangement), nil
	}
	if !isFloat && planes == 4 {
		return decode4Bit(data, arrangement), nil
	}

	numberType := format.Int
	if isFloat {
		numberType = format.Float
	}
	channel, err := format.FromPlanes(numberType, planes)
	if err != nil {
		return nil, err
	}

	channels_ := int(arrangement.Channels())
	switch channel {
	case format.U8:
		list := color.NewListU8(arrangement, len(data)/channels_)
		for i := range list.Data {
			list.Data[i] = color.ExtendU8(data[i], planes)
		}
		return list, nil
	case format.U16:
		sampleCount := (len(data) / 2)
		list := color.NewListU16(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v, err := bio.ReadU16(bytes.NewReader(data[i*2 : i*2+2]))
			if err != nil {
				return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated sample", err)
			}
			list.Data[i] = color.ExtendU16(v, planes)
		}
		return list, nil
	case format.U32:
		sampleCount := (len(data) / 4)
		list := color.NewListU32(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v, err := bio.ReadU32(bytes.NewReader(data[i*4 : i*4+4]))
			if err != nil {
				return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated sample", err)
			}
			list.Data[i] = color.ExtendU32(v, planes)
		}
		return list, nil
	case format.U64:
		sampleCount := (len(data) / 8)
		list := color.NewListU64(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v, err := bio.ReadU64(bytes.NewReader(data[i*8 : i*8+8]))
			if err != nil {
				return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated sample", err)
			}
			list.Data[i] = color.ExtendU64(v, planes)
		}
		return list, nil
	case format.U128:
		sampleCount := (len(data) / 16)
		list := color.NewListU128(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v := bio.Uint128FromLEBytes(data[i*16 : i*16+16])
			list.Data[i] = color.ExtendU128(v, planes)
		}
		return list, nil
	case format.F32:
		sampleCount := (len(data) / 4)
		list := color.NewListF32(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v, err := bio.ReadF32(bytes.NewReader(data[i*4 : i*4+4]))
			if err != nil {
				return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated sample", err)
			}
			list.Data[i] = v
		}
		return list, nil
	case format.F64:
		sampleCount := (len(data) / 8)
		list := color.NewListF64(arrangement, sampleCount/channels_)
		for i := range list.Data {
			v, err := bio.ReadF64(bytes.NewReader(data[i*8 : i*8+8]))
			if err != nil {
				return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated sample", err)
			}
			list.Data[i] = v
		}
		return list, nil
	default:
		return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "unsupported channel carrier")
	}
}

func decode1Bit(data []byte, arrangement format.ColorType) color.List {
	channels := int(arrangement.Channels())
	bitCount := len(data) * 8
	pixelCount := bitCount / channels
	list := color.NewListU8(arrangement, pixelCount)

	for i := range list.Data {
		list.Data[i] = bio.GetBit(data, i) * 255
	}
	return list
}

func decode4Bit(data []byte, arrangement format.ColorType) color.List {
	channels := int(arrangement.Channels())
	nibbleCount := len(data) * 2
	pixelCount := nibbleCount / channels
	list := color.NewListU8(arrangement, pixelCount)

	for i := range list.Data {
		v := bio.GetNibble(data, i)
		list.Data[i] = v<<4 | v
	}
	return list
}

// EncodeNonInterleaved serializes a pixel buffer to its byte-packed wire
// form for the given bit depth, the reverse of DecodeNonInterleaved. For
// planes 1 it packs each u8 sample's low bit, and for planes 4 each u8
// sample's high nibble;
// for 8/16/32/64/128 and the two float depths it writes the carrier's raw
// bytes with no repacking.
func EncodeNonInterleaved(list color.List, planes uint8) ([]byte, error) {
	if planes == 1 {
		l, ok := list.(*color.ListU8)
		if !ok {
			return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams, "1-bit depth requires a U8 carrier")
		}
		return encode1Bit(l.Data), nil
	}
	if planes == 4 {
		l, ok := list.(*color.ListU8)
		if !ok {
			return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams, "4-bit depth requires a U8 carrier")
		}
		return encode4Bit(l.Data), nil
	}

	var buf bytes.Buffer
	switch l := list.(type) {
	case *color.ListU8:
		buf.Write(l.Data)
	case *color.ListU16:
		for _, v := range l.Data {
			if err := bio.WriteU16(&buf, v); err != nil {
				return nil, err
			}
		}
	case *color.ListU32:
		for _, v := range l.Data {
			if err := bio.WriteU32(&buf, v); err != nil {
				return nil, err
			}
		}
	case *color.ListU64:
		for _, v := range l.Data {
			if err := bio.WriteU64(&buf, v); err != nil {
				return nil, err
			}
		}
	case *color.ListU128:
		for _, v := range l.Data {
			if err := bio.WriteU128(&buf, v); err != nil {
				return nil, err
			}
		}
	case *color.ListF32:
		for _, v := range l.Data {
			if err := bio.WriteF32(&buf, v); err != nil {
				return nil, err
			}
		}
	case *color.ListF64:
		for _, v := range l.Data {
			if err := bio.WriteF64(&buf, v); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams, "unsupported channel carrier")
	}
	return buf.Bytes(), nil
}

func encode1Bit(samples []uint8) []byte {
	out := make([]byte, (len(samples)+7)/8)
	for i, v := range samples {
		if v&1 != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func encode4Bit(samples []uint8) []byte {
	out := make([]byte, (len(samples)+1)/2)
	for i, v := range samples {
		nibble := v >> 4
		if i%2 == 0 {
			out[i/2] |= nibble
		} else {
			out[i/2] |= nibble << 4
		}
	}
	return out
}
