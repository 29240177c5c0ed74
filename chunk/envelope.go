// Package chunk implements the XZIB container envelope, the
// tag/size/payload framing that wraps every INDX, META, XMET, BODY and
// FOOT payload, plus the five payload codecs themselves. The ambient
// container loop (the header and the sequence of envelopes) lives in
// the root xzib package, which owns the Head fields these payloads are
// parsed against; chunk only depends on the small ImageParams view of
// those fields so it has no import back onto xzib.
package chunk

import (
	"io"

	"github.com/panzi/xzib/bio"
	"github.com/panzi/xzib/compress"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/format"
	"github.com/panzi/xzib/internal/pool"
)

// ImageParams is the subset of Head fields INDX and BODY parsing needs.
// Defined here (rather than taking a *xzib.Head) so this package has no
// dependency on the root package that imports it.
type ImageParams struct {
	NumberType   format.NumberType
	Interleaved  bool
	Channels     uint8
	Planes       uint8
	IndexPlanes  uint8
	Width        uint32
	Height       uint32
}

// Tag is a raw 4-byte chunk tag as it appears on the wire, before its
// case bits are interpreted.
type Tag [4]byte

// Canonical well-known tags, always upper case.
var (
	TagINDX = Tag{'I', 'N', 'D', 'X'}
	TagMETA = Tag{'M', 'E', 'T', 'A'}
	TagXMET = Tag{'X', 'M', 'E', 'T'}
	TagBODY = Tag{'B', 'O', 'D', 'Y'}
	TagFOOT = Tag{'F', 'O', 'O', 'T'}
)

// Canonical uppercases bytes 0 and 1 (the flag bytes) and leaves bytes
// 2 and 3 untouched, recovering the tag's identity independent of its
// envelope flags.
func (t Tag) Canonical() Tag {
	return Tag{upper(t[0]), upper(t[1]), t[2], t[3]}
}

// LargeSize reports whether byte 0's case marks a u64 (rather than u32)
// size field.
func (t Tag) LargeSize() bool {
	return isUpper(t[0])
}

// Compressed reports whether byte 1's case marks a zlib-deflated payload.
func (t Tag) Compressed() bool {
	return isLower(t[1])
}

// MakeTag derives the wire tag for canonical (an all-uppercase tag)
// given the framing choices made at write time.
func MakeTag(canonical Tag, large bool, compressed bool) Tag {
	t := canonical
	if !large {
		t[0] = lower(t[0])
	}
	if compressed {
		t[1] = lower(t[1])
	}
	return t
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// ReadOptions configures container reading. Diagnostics receives a
// message whenever a condition is recovered rather than treated as
// fatal (an unknown chunk tag, an unrecognized META key); it defaults
// to a no-op so silent recovery is the default behavior.
type ReadOptions struct {
	Diagnostics func(format string, args ...any)
}

func (o ReadOptions) diag(format string, args ...any) {
	if o.Diagnostics != nil {
		o.Diagnostics(format, args...)
	}
}

// Envelope is one decoded chunk: its canonical tag and its payload with
// framing and compression already stripped away.
type Envelope struct {
	Canonical Tag
	Payload   []byte
}

// ReadEnvelope reads one chunk envelope from r. A clean io.EOF on the
// initial tag read is returned unchanged so callers can treat it as the
// end of the container; an EOF in the middle of an envelope, or any
// error after the tag has been read, is a broken file, and any other
// error reading the tag is an I/O error.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	rawTag, err := bio.ReadFourCC(r)
	if err != nil {
		if err == io.EOF {
			return Envelope{}, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return Envelope{}, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading chunk tag", err)
		}
		return Envelope{}, errs.NewReadErrorCause(errs.ReadIO, "reading chunk tag", err)
	}
	tag := Tag(rawTag)

	var size uint64
	if tag.LargeSize() {
		size, err = bio.ReadU64(r)
	} else {
		var size32 uint32
		size32, err = bio.ReadU32(r)
		size = uint64(size32)
	}
	if err != nil {
		return Envelope{}, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading chunk size", err)
	}

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	bb.ExtendOrGrow(int(size))
	if _, err := io.ReadFull(r, bb.Bytes()); err != nil {
		return Envelope{}, errs.NewReadErrorCause(errs.ReadBrokenFile, "reading chunk payload", err)
	}

	if tag.Compressed() {
		codec, _ := compress.NewZlibCompressor(0) // level is write-only; decode ignores it
		inflated, err := codec.Decompress(bb.Bytes())
		if err != nil {
			return Envelope{}, errs.NewReadErrorCause(errs.ReadBrokenFile, "inflating chunk payload", err)
		}
		return Envelope{Canonical: tag.Canonical(), Payload: inflated}, nil
	}

	// bb is returned to the pool on defer, so the raw (uncompressed) path
	// must hand the caller an owned copy rather than bb's backing array.
	payload := make([]byte, bb.Len())
	copy(payload, bb.Bytes())

	return Envelope{Canonical: tag.Canonical(), Payload: payload}, nil
}

// WriteEnvelope frames payload under canonical, choosing the large size
// form iff payload doesn't fit in a u32 and the compressed form iff
// compression > 0, and writes the result to w.
func WriteEnvelope(w io.Writer, canonical Tag, payload []byte, compression int) error {
	compressed := compression > 0

	var codec compress.Codec
	if compressed {
		zlib, err := compress.NewZlibCompressor(compression)
		if err != nil {
			return errs.NewWriteErrorCause(errs.WriteInvalidParams, "invalid compression level", err)
		}
		codec = zlib
	} else {
		codec = compress.NewNoOpCompressor()
	}

	body, err := codec.Compress(payload)
	if err != nil {
		return errs.NewWriteErrorCause(errs.WriteIO, "compressing chunk payload", err)
	}

	large := uint64(len(body)) > 0xFFFFFFFF
	tag := MakeTag(canonical, large, compressed)

	bb := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(bb)

	if err := bio.WriteFourCC(bb, [4]byte(tag)); err != nil {
		return err
	}
	if large {
		if err := bio.WriteU64(bb, uint64(len(body))); err != nil {
			return err
		}
	} else {
		if err := bio.WriteU32(bb, uint32(len(body))); err != nil {
			return err
		}
	}
	bb.MustWrite(body)

	_, err = bb.WriteTo(w)
	return err
}
