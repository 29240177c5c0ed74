package chunk

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash/crc32"

	"github.com/panzi/xzib/errs"
)

// ChecksumType identifies which digest a Foot carries.
type ChecksumType uint8

const (
	ChecksumCrc32  ChecksumType = 1
	ChecksumSha1   ChecksumType = 2
	ChecksumSha224 ChecksumType = 3
	ChecksumSha256 ChecksumType = 4
	ChecksumSha384 ChecksumType = 5
	ChecksumSha512 ChecksumType = 6
)

func (t ChecksumType) String() string {
	switch t {
	case ChecksumCrc32:
		return "Crc32"
	case ChecksumSha1:
		return "Sha1"
	case ChecksumSha224:
		return "Sha224"
	case ChecksumSha256:
		return "Sha256"
	case ChecksumSha384:
		return "Sha384"
	case ChecksumSha512:
		return "Sha512"
	default:
		return "Unknown"
	}
}

// ByteSize returns the on-wire length of a digest of this type, not
// counting the leading type byte.
func (t ChecksumType) ByteSize() int {
	switch t {
	case ChecksumCrc32:
		return 4
	case ChecksumSha1:
		return 20
	case ChecksumSha224:
		return 28
	case ChecksumSha256:
		return 32
	case ChecksumSha384:
		return 48
	case ChecksumSha512:
		return 64
	default:
		return 0
	}
}

// ParseChecksumType validates a raw type byte read off the wire.
func ParseChecksumType(b byte) (ChecksumType, error) {
	t := ChecksumType(b)
	if t.ByteSize() == 0 {
		return 0, errs.ErrInvalidChecksumType
	}
	return t, nil
}

// Checksum is a digest of a particular type along with its raw bytes.
// Crc32 stores its 4 bytes little-endian, matching every other integer
// field in the container; the SHA variants store their digest bytes as
// produced by the hash, unordered.
type Checksum struct {
	Type  ChecksumType
	Bytes []byte
}

// Sum computes the checksum of data under t.
func Sum(t ChecksumType, data []byte) Checksum {
	switch t {
	case ChecksumCrc32:
		sum := crc32.ChecksumIEEE(data)
		buf := make([]byte, 4)
		buf[0] = byte(sum)
		buf[1] = byte(sum >> 8)
		buf[2] = byte(sum >> 16)
		buf[3] = byte(sum >> 24)
		return Checksum{Type: t, Bytes: buf}
	case ChecksumSha1:
		sum := sha1.Sum(data)
		return Checksum{Type: t, Bytes: sum[:]}
	case ChecksumSha224:
		sum := sha256.Sum224(data)
		return Checksum{Type: t, Bytes: sum[:]}
	case ChecksumSha256:
		sum := sha256.Sum256(data)
		return Checksum{Type: t, Bytes: sum[:]}
	case ChecksumSha384:
		sum := sha512.Sum384(data)
		return Checksum{Type: t, Bytes: sum[:]}
	case ChecksumSha512:
		sum := sha512.Sum512(data)
		return Checksum{Type: t, Bytes: sum[:]}
	default:
		return Checksum{}
	}
}

// Equal reports whether c matches the checksum of data.
func (c Checksum) Equal(data []byte) bool {
	other := Sum(c.Type, data)
	if len(other.Bytes) != len(c.Bytes) {
		return false
	}
	for i := range c.Bytes {
		if c.Bytes[i] != other.Bytes[i] {
			return false
		}
	}
	return true
}

// Foot is the trailing checksum chunk covering every byte of the
// container from the magic through the end of the last chunk preceding
// FOOT itself.
type Foot struct {
	Checksum Checksum
}

// ReadFoot decodes a FOOT payload: a type byte followed by that type's
// digest bytes.
func ReadFoot(data []byte) (*Foot, error) {
	if len(data) < 1 {
		return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "truncated foot chunk")
	}
	t, err := ParseChecksumType(data[0])
	if err != nil {
		return nil, err
	}
	rest := data[1:]
	if len(rest) != t.ByteSize() {
		return nil, errs.ErrTruncatedChunk
	}
	bytes := make([]byte, len(rest))
	copy(bytes, rest)
	return &Foot{Checksum: Checksum{Type: t, Bytes: bytes}}, nil
}

// Encode serializes the checksum back to its wire form.
func (f *Foot) Encode() []byte {
	out := make([]byte, 1+len(f.Checksum.Bytes))
	out[0] = byte(f.Checksum.Type)
	copy(out[1:], f.Checksum.Bytes)
	return out
}
