package xzib

import (
	"io"

	"github.com/panzi/xzib/bio"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
	"github.com/panzi/xzib/internal/options"
)

var magic = [4]byte{'X', 'Z', 'I', 'B'}

const (
	flagInterleaved uint8 = 1 << 0
	flagFloat       uint8 = 1 << 1
)

// Head is the mandatory 12-byte file header (plus the preceding 4-byte
// magic). Once written, every field is immutable for the life of the
// image; changing the pixel layout means building a new Head.
type Head struct {
	Flags       uint8
	Channels    uint8
	Planes      uint8
	IndexPlanes uint8
	Width       uint32
	Height      uint32
}

// HeadOption configures a Head at construction time.
type HeadOption = options.Option[*Head]

// WithIndexPlanes declares a palette depth for an L-arrangement body,
// requiring index_planes be a valid non-interleaved integer depth.
func WithIndexPlanes(planes uint8) HeadOption {
	return options.New(func(h *Head) error {
		if !format.ValidPlanes(format.Int, false, planes) {
			return errs.NewInvalidParams("index_planes is not a valid non-interleaved bit depth")
		}
		h.IndexPlanes = planes
		return nil
	})
}

// Interleaved reports whether flags bit 0 (bitplane-interleaved body
// layout) is set.
func (h *Head) Interleaved() bool {
	return h.Flags&flagInterleaved != 0
}

// NumberType derives Int or Float from flags bit 1.
func (h *Head) NumberType() format.NumberType {
	if h.Flags&flagFloat != 0 {
		return format.Float
	}
	return format.Int
}

// ColorType resolves the arrangement implied by Channels.
func (h *Head) ColorType() (format.ColorType, error) {
	return format.FromChannels(h.Channels)
}

// Channel resolves the carrier implied by (NumberType, Planes).
func (h *Head) Channel() (format.ChannelValueType, error) {
	return format.FromPlanes(h.NumberType(), h.Planes)
}

// NewHead validates and builds a Head. interleaved and planes together
// must satisfy format.ValidPlanes for numberType; colorType's channel
// count becomes the stored Channels byte (La is rejected: it has no
// stored header encoding).
func NewHead(numberType format.NumberType, interleaved bool, colorType format.ColorType, planes uint8, width uint32, height uint32, opts ...HeadOption) (*Head, error) {
	if colorType == format.La {
		return nil, errs.NewInvalidParams("La has no stored header encoding")
	}
	channels := colorType.Channels()
	if channels == 0 {
		return nil, errs.NewInvalidParams("unknown color type")
	}
	if !format.ValidPlanes(numberType, interleaved, planes) {
		return nil, errs.NewInvalidParams("planes is not valid for this number type and layout")
	}
	if width == 0 || height == 0 {
		return nil, errs.NewInvalidParams("width and height must be non-zero")
	}

	var flags uint8
	if interleaved {
		flags |= flagInterleaved
	}
	if numberType == format.Float {
		flags |= flagFloat
	}

	h := &Head{
		Flags:    flags,
		Channels: channels,
		Planes:   planes,
		Width:    width,
		Height:   height,
	}

	if err := options.Apply(h, opts...); err != nil {
		return nil, err
	}

	return h, nil
}

// ReadHead reads the magic and fixed header body from r.
func ReadHead(r io.Reader) (*Head, error) {
	gotMagic, err := bio.ReadFourCC(r)
	if err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadIO, "reading magic", err)
	}
	if gotMagic != magic {
		return nil, errs.ErrInvalidMagic
	}

	var h Head
	if h.Flags, err = bio.ReadU8(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading flags", err)
	}
	if h.Channels, err = bio.ReadU8(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading channels", err)
	}
	if h.Planes, err = bio.ReadU8(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading planes", err)
	}
	if h.IndexPlanes, err = bio.ReadU8(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading index_planes", err)
	}
	if h.Width, err = bio.ReadU32(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading width", err)
	}
	if h.Height, err = bio.ReadU32(r); err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading height", err)
	}

	if _, err := h.ColorType(); err != nil {
		return nil, err
	}
	if _, err := h.Channel(); err != nil {
		return nil, err
	}
	if !format.ValidPlanes(h.NumberType(), h.Interleaved(), h.Planes) {
		return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "planes is not valid for this number type and layout")
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "width and height must be non-zero")
	}

	return &h, nil
}

// Read re-reads h's fields from r, overwriting any prior value.
func (h *Head) Read(r io.Reader) error {
	parsed, err := ReadHead(r)
	if err != nil {
		return err
	}
	*h = *parsed
	return nil
}

// Write serializes the magic and fixed header body to w.
func (h *Head) Write(w io.Writer) error {
	if err := bio.WriteFourCC(w, magic); err != nil {
		return err
	}
	if err := bio.WriteU8(w, h.Flags); err != nil {
		return err
	}
	if err := bio.WriteU8(w, h.Channels); err != nil {
		return err
	}
	if err := bio.WriteU8(w, h.Planes); err != nil {
		return err
	}
	if err := bio.WriteU8(w, h.IndexPlanes); err != nil {
		return err
	}
	if err := bio.WriteU32(w, h.Width); err != nil {
		return err
	}
	return bio.WriteU32(w, h.Height)
}
