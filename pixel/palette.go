package pixel

import (
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
)

// ApplyPalette resolves an L-arrangement index buffer against a palette
// ColorList, producing a new List of the palette's arrangement and
// carrier with one entry per index. An index outside the palette's
// range yields the palette's default-valued color at that position: the
// zero value for every channel (fully transparent black for Rgba).
func ApplyPalette(indices color.List, palette color.List) (color.List, error) {
	if indices.Arrangement() != format.L {
		return nil, errs.NewInvalidParams("palette indices must be arrangement L")
	}

	count := indices.Len()
	out := color.New(palette.Channel(), palette.Arrangement(), count)
	nch := color.Channels(palette)

	for i := 0; i < count; i++ {
		idx, ok := indexAt(indices, i)
		if !ok || idx < 0 || idx >= palette.Len() {
			continue // zero-valued already
		}
		copyPixel(out, i*nch, palette, idx*nch, nch)
	}
	return out, nil
}

// indexAt reads index buffer entry i as a plain int. Entries that don't
// fit in an int, and float carriers, report ok == false, which
// ApplyPalette treats like an out-of-range index.
func indexAt(indices color.List, i int) (int, bool) {
	switch l := indices.(type) {
	case *color.ListU8:
		return int(l.Data[i]), true
	case *color.ListU16:
		return int(l.Data[i]), true
	case *color.ListU32:
		return int(l.Data[i]), true
	case *color.ListU64:
		if l.Data[i] > uint64(int(^uint(0)>>1)) {
			return 0, false
		}
		return int(l.Data[i]), true
	case *color.ListU128:
		v := l.Data[i]
		if v.Hi != 0 || v.Lo > uint64(int(^uint(0)>>1)) {
			return 0, false
		}
		return int(v.Lo), true
	default:
		return 0, false
	}
}

func copyPixel(dst color.List, dstOff int, src color.List, srcOff int, n int) {
	switch d := dst.(type) {
	case *color.ListU8:
		s := src.(*color.ListU8)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListU16:
		s := src.(*color.ListU16)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListU32:
		s := src.(*color.ListU32)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListU64:
		s := src.(*color.ListU64)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListU128:
		s := src.(*color.ListU128)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListF32:
		s := src.(*color.ListF32)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	case *color.ListF64:
		s := src.(*color.ListF64)
		copy(d.Data[dstOff:dstOff+n], s.Data[srcOff:srcOff+n])
	}
}
