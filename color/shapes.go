package color

import "github.com/panzi/xzib/format"

// Numeric is the set of carrier types that share ordinary Go arithmetic;
// Uint128 is handled separately since it isn't a Go numeric kind.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ToRGBA expands a single pixel's channel slice to an Rgba tuple. L
// replicates luminance to R=G=B and defaults alpha to opaqueMax; La
// replicates luminance and keeps its own alpha; Rgb defaults alpha to
// opaqueMax; Rgba passes its channels through unchanged.
func ToRGBA[T Numeric](pixel []T, arrangement format.ColorType, opaqueMax T) (r, g, b, a T) {
	switch arrangement {
	case format.L:
		return pixel[0], pixel[0], pixel[0], opaqueMax
	case format.La:
		return pixel[0], pixel[0], pixel[0], pixel[1]
	case format.Rgb:
		return pixel[0], pixel[1], pixel[2], opaqueMax
	case format.Rgba:
		return pixel[0], pixel[1], pixel[2], pixel[3]
	default:
		return
	}
}

// ToRGB expands a single pixel's channel slice to an Rgb triple,
// dropping any alpha channel.
func ToRGB[T Numeric](pixel []T, arrangement format.ColorType) (r, g, b T) {
	switch arrangement {
	case format.L, format.La:
		return pixel[0], pixel[0], pixel[0]
	case format.Rgb, format.Rgba:
		return pixel[0], pixel[1], pixel[2]
	default:
		return
	}
}
