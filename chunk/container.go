package chunk

import (
	"fmt"
	"io"
)

// Chunks holds every optional chunk a container may carry, decoded
// from or destined for one XZIB file body (the part between the
// header and the final FOOT).
type Chunks struct {
	Indx *Indx
	Meta *Meta
	Xmet *Xmet
	Body *Body
	Foot *Foot
}

// ReadAll reads envelopes from r until a clean EOF, dispatching each
// to its payload decoder by canonical tag. An unrecognized canonical
// tag is recovered: its payload is discarded and opts.Diagnostics is
// called, matching the container's "skip unknown tags" rule.
func ReadAll(r io.Reader, params ImageParams, opts ReadOptions) (Chunks, error) {
	var chunks Chunks

	for {
		env, err := ReadEnvelope(r)
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return Chunks{}, err
		}

		switch env.Canonical {
		case TagINDX:
			indx, err := ReadIndx(env.Payload, params)
			if err != nil {
				return Chunks{}, err
			}
			chunks.Indx = indx
		case TagMETA:
			meta, err := ReadMeta(env.Payload, opts)
			if err != nil {
				return Chunks{}, err
			}
			chunks.Meta = meta
		case TagXMET:
			xmet, err := ReadXmet(env.Payload)
			if err != nil {
				return Chunks{}, err
			}
			chunks.Xmet = xmet
		case TagBODY:
			body, err := ReadBody(env.Payload, params)
			if err != nil {
				return Chunks{}, err
			}
			chunks.Body = body
		case TagFOOT:
			foot, err := ReadFoot(env.Payload)
			if err != nil {
				return Chunks{}, err
			}
			chunks.Foot = foot
		default:
			opts.diag("skipping unknown chunk tag %q", fmt.Sprintf("%c%c%c%c",
				env.Canonical[0], env.Canonical[1], env.Canonical[2], env.Canonical[3]))
		}
	}
}

// WriteAll writes every present chunk in INDX, META, XMET, BODY order.
// FOOT is deliberately excluded: its checksum covers everything up to
// but not including itself, so the caller must finish hashing what
// WriteAll wrote before computing and writing FOOT separately.
func WriteAll(w io.Writer, chunks Chunks, params ImageParams, compression int) error {
	if chunks.Indx != nil {
		payload, err := chunks.Indx.Encode(params)
		if err != nil {
			return err
		}
		if err := WriteEnvelope(w, TagINDX, payload, compression); err != nil {
			return err
		}
	}
	if chunks.Meta != nil {
		if err := WriteEnvelope(w, TagMETA, chunks.Meta.Encode(), compression); err != nil {
			return err
		}
	}
	if chunks.Xmet != nil {
		if err := WriteEnvelope(w, TagXMET, chunks.Xmet.Encode(), compression); err != nil {
			return err
		}
	}
	if chunks.Body != nil {
		payload, err := chunks.Body.Encode(params)
		if err != nil {
			return err
		}
		if err := WriteEnvelope(w, TagBODY, payload, compression); err != nil {
			return err
		}
	}
	return nil
}
