package chunk

import (
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
	"github.com/panzi/xzib/pixel"
)

// Body is the pixel payload chunk: a ColorList laid out per Head's
// interleaved flag, carrier and color arrangement.
type Body struct {
	Data color.List
}

// ReadBody decodes a BODY payload, picking the interleaved or
// byte-packed decoder per params.Interleaved.
func ReadBody(data []byte, params ImageParams) (*Body, error) {
	isFloat := params.NumberType == format.Float

	if params.Interleaved {
		list, err := pixel.DecodeInterleaved(data, isFloat, params.Planes, params.Channels, params.Width, params.Height)
		if err != nil {
			return nil, err
		}
		return &Body{Data: list}, nil
	}

	list, err := pixel.DecodeNonInterleaved(data, isFloat, params.Planes, params.Channels)
	if err != nil {
		return nil, err
	}
	return &Body{Data: list}, nil
}

// Encode serializes the pixel buffer back to its wire form. The
// buffer's carrier must equal what params implies; a mismatch is
// InvalidParams.
func (b *Body) Encode(params ImageParams) ([]byte, error) {
	wantChannel, err := format.FromPlanes(params.NumberType, params.Planes)
	if err != nil {
		return nil, err
	}
	if b.Data.Channel() != wantChannel {
		return nil, errs.NewWriteErrorMessage(errs.WriteInvalidParams,
			"body channel value type doesn't match header")
	}

	if params.Interleaved {
		return pixel.EncodeInterleaved(b.Data, params.Planes, params.Width, params.Height)
	}
	return pixel.EncodeNonInterleaved(b.Data, params.Planes)
}
