// Package xzib reads and writes XZIB containers: a chunked binary
// format for raster images with arbitrary per-channel bit depths,
// optional palette indirection, typed and free-form metadata, and a
// trailing content checksum.
package xzib

import (
	"bytes"
	"io"

	"github.com/panzi/xzib/chunk"
	"github.com/panzi/xzib/color"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
	"github.com/panzi/xzib/internal/options"
	"github.com/panzi/xzib/pixel"
)

// XZIB is the top-level image object: the mandatory Head plus whichever
// of the five chunks are present. A freshly-built XZIB has only a Head;
// Body must be set before Write can emit a displayable image.
type XZIB struct {
	Head *Head
	Indx *chunk.Indx
	Meta *chunk.Meta
	Xmet *chunk.Xmet
	Body *chunk.Body
	Foot *chunk.Foot
}

// New creates an XZIB with no chunks but the given header.
func New(head *Head) *XZIB {
	return &XZIB{Head: head}
}

// ReadOptions configures Read. Diagnostics, if set, is called for every
// recovered (non-fatal) condition: an unknown chunk tag, an unrecognized
// META key.
type ReadOptions struct {
	Diagnostics func(format string, args ...any)
}

// ReadOption configures a Read call.
type ReadOption = options.Option[*ReadOptions]

// WithDiagnostics installs a diagnostics callback for Read.
func WithDiagnostics(fn func(format string, args ...any)) ReadOption {
	return options.NoError(func(o *ReadOptions) {
		o.Diagnostics = fn
	})
}

func (x *XZIB) imageParams() chunk.ImageParams {
	return chunk.ImageParams{
		NumberType:  x.Head.NumberType(),
		Interleaved: x.Head.Interleaved(),
		Channels:    x.Head.Channels,
		Planes:      x.Head.Planes,
		IndexPlanes: x.Head.IndexPlanes,
		Width:       x.Head.Width,
		Height:      x.Head.Height,
	}
}

// Read replaces x's Head and chunks with a container parsed from r. The
// bytes consumed are teed into a buffer as they're read so a trailing
// FOOT's checksum can be verified against exactly what was on the wire,
// rather than against a re-serialization that might not byte-match (a
// different zlib level, for instance).
func (x *XZIB) Read(r io.Reader, opts ...ReadOption) error {
	var ro ReadOptions
	if err := options.Apply(&ro, opts...); err != nil {
		return err
	}

	var covered bytes.Buffer
	tee := io.TeeReader(r, &covered)

	head, err := ReadHead(tee)
	if err != nil {
		return err
	}
	x.Head = head

	params := x.imageParams()
	var chunks chunk.Chunks

	for {
		beforeEnvelope := covered.Len()
		env, err := chunk.ReadEnvelope(tee)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch env.Canonical {
		case chunk.TagINDX:
			indx, err := chunk.ReadIndx(env.Payload, params)
			if err != nil {
				return err
			}
			chunks.Indx = indx
		case chunk.TagMETA:
			meta, err := chunk.ReadMeta(env.Payload, chunk.ReadOptions{Diagnostics: ro.Diagnostics})
			if err != nil {
				return err
			}
			chunks.Meta = meta
		case chunk.TagXMET:
			xmet, err := chunk.ReadXmet(env.Payload)
			if err != nil {
				return err
			}
			chunks.Xmet = xmet
		case chunk.TagBODY:
			body, err := chunk.ReadBody(env.Payload, params)
			if err != nil {
				return err
			}
			chunks.Body = body
		case chunk.TagFOOT:
			foot, err := chunk.ReadFoot(env.Payload)
			if err != nil {
				return err
			}
			chunks.Foot = foot
			covered.Truncate(beforeEnvelope) // FOOT's own bytes aren't covered by its checksum
		default:
			if ro.Diagnostics != nil {
				ro.Diagnostics("skipping unknown chunk tag %q", string(env.Canonical[:]))
			}
		}
	}

	x.Indx = chunks.Indx
	x.Meta = chunks.Meta
	x.Xmet = chunks.Xmet
	x.Body = chunks.Body
	x.Foot = chunks.Foot

	if x.Foot != nil && !x.Foot.Checksum.Equal(covered.Bytes()) {
		return errs.NewReadErrorMessage(errs.ReadBrokenFile, "checksum mismatch")
	}

	return nil
}

// WriteOptions configures Write.
type WriteOptions struct {
	// Compression is the zlib level (0..9) applied to every chunk; 0
	// disables compression.
	Compression int

	// Checksum selects the digest Write computes for FOOT. A zero value
	// (ChecksumType(0)) means "no FOOT chunk".
	Checksum chunk.ChecksumType
}

// WriteOption configures a Write call.
type WriteOption = options.Option[*WriteOptions]

// WithCompression sets the zlib level applied to every chunk.
func WithCompression(level int) WriteOption {
	return options.New(func(o *WriteOptions) error {
		if level < 0 || level > 9 {
			return errs.NewInvalidParams("compression level must be 0..9")
		}
		o.Compression = level
		return nil
	})
}

// WithChecksum selects the digest written to FOOT.
func WithChecksum(t chunk.ChecksumType) WriteOption {
	return options.NoError(func(o *WriteOptions) {
		o.Checksum = t
	})
}

// Write serializes x to w: the header, then INDX/META/XMET/BODY in that
// order (each iff present), then FOOT iff WithChecksum was given.
//
// Cross-chunk invariant: if Indx is present, Body must be arrangement L
// (the palette index shape); violating this is InvalidParams.
func (x *XZIB) Write(w io.Writer, opts ...WriteOption) error {
	var wo WriteOptions
	if err := options.Apply(&wo, opts...); err != nil {
		return err
	}

	if x.Indx != nil && x.Body != nil && x.Body.Data.Arrangement() != format.L {
		return errs.NewInvalidParams("body must be arrangement L when an indx palette is present")
	}

	if wo.Checksum == 0 {
		return x.writeUpToFoot(w, wo.Compression)
	}

	var buf bytes.Buffer
	if err := x.writeUpToFoot(&buf, wo.Compression); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errs.NewWriteErrorCause(errs.WriteIO, "writing container body", err)
	}

	foot := &chunk.Foot{Checksum: chunk.Sum(wo.Checksum, buf.Bytes())}
	return chunk.WriteEnvelope(w, chunk.TagFOOT, foot.Encode(), wo.Compression)
}

// writeUpToFoot writes the header and every chunk except FOOT: exactly
// the span FOOT's checksum is defined to cover.
func (x *XZIB) writeUpToFoot(w io.Writer, compression int) error {
	if err := x.Head.Write(w); err != nil {
		return err
	}

	chunks := chunk.Chunks{Indx: x.Indx, Meta: x.Meta, Xmet: x.Xmet, Body: x.Body}
	return chunk.WriteAll(w, chunks, x.imageParams(), compression)
}

// ImageBuffer resolves x's displayable pixels: if Indx is present and
// Body is an integer arrangement-L buffer, every index is looked up
// against the palette; otherwise Body's data is returned unchanged.
// Float bodies are never palette-resolved, matching Indx's restriction
// to non-interleaved integer carriers.
func (x *XZIB) ImageBuffer() (color.List, error) {
	if x.Body == nil {
		return nil, errs.NewInvalidParams("no body chunk present")
	}
	if x.Indx == nil || x.Body.Data.Arrangement() != format.L || x.Head.NumberType() == format.Float {
		return x.Body.Data, nil
	}
	return pixel.ApplyPalette(x.Body.Data, x.Indx.Colors)
}
