package chunk

import (
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
	"github.com/panzi/xzib/pixel"
)

// Indx is the optional palette chunk: a ColorList of up to 2^index_planes
// entries that BODY indexes into when Head declares an L-arrangement body
// alongside a non-zero IndexPlanes.
type Indx struct {
	Colors color.List
}

// ReadIndx decodes an INDX payload. index_planes == 0 is a broken file:
// the chunk only exists to carry a palette, so a zero depth can't encode
// one.
func ReadIndx(data []byte, params ImageParams) (*Indx, error) {
	if params.IndexPlanes == 0 {
		return nil, errs.ErrIndexPlanesZero
	}

	colors, err := pixel.DecodeNonInterleaved(data, params.NumberType == format.Float, params.IndexPlanes, params.Channels)
	if err != nil {
		return nil, err
	}
	return &Indx{Colors: colors}, nil
}

// Encode serializes the palette back to its non-interleaved wire form.
// The palette's carrier must match the carrier the header's
// (number_type, index_planes) pair implies; a mismatch is InvalidParams.
func (x *Indx) Encode(params ImageParams) ([]byte, error) {
	wantChannel, err := format.FromPlanes(params.NumberType, params.IndexPlanes)
	if err != nil {
		return nil, err
	}
	if x.Colors.Channel() != wantChannel {
		return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams,
			"index channel value type doesn't match header")
	}

	return pixel.EncodeNonInterleaved(x.Colors, params.IndexPlanes)
}
