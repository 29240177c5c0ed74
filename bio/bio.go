// Package bio provides the fixed-width little-endian I/O primitives the
// rest of xzib builds on: readers/writers for u8/u16/u32/u64/u128/f32/f64
// and 4-byte tags, plus bit- and nibble-indexed accessors over a byte
// buffer.
//
// Every multi-byte field in the XZIB wire format is little-endian with no
// alignment requirements, so bio always asks endian for the little-endian
// engine rather than exposing a byte-order choice of its own.
package bio

import (
	"io"
	"math"

	"github.com/panzi/xzib/endian"
)

var le = endian.GetLittleEndianEngine()

func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return le.Uint16(buf[:]), nil
}

func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return le.Uint32(buf[:]), nil
}

func ReadU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return le.Uint64(buf[:]), nil
}

func ReadU128(r io.Reader) (Uint128, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Uint128{}, err
	}
	return Uint128FromLEBytes(buf[:]), nil
}

func ReadF32(r io.Reader) (float32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func ReadF64(r io.Reader) (float64, error) {
	v, err := ReadU64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadFourCC reads a raw 4-byte tag without interpreting it as a number.
func ReadFourCC(r io.Reader) ([4]byte, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return buf, err
	}
	return buf, nil
}

func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func WriteU16(w io.Writer, v uint16) error {
	var buf [2]byte
	le.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func WriteU32(w io.Writer, v uint32) error {
	var buf [4]byte
	le.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func WriteU64(w io.Writer, v uint64) error {
	var buf [8]byte
	le.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func WriteU128(w io.Writer, v Uint128) error {
	buf := v.LEBytes()
	_, err := w.Write(buf[:])
	return err
}

func WriteF32(w io.Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}

func WriteF64(w io.Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

func WriteFourCC(w io.Writer, tag [4]byte) error {
	_, err := w.Write(tag[:])
	return err
}

// GetBit returns bit i of buf, LSB-first within each byte.
func GetBit(buf []byte, i int) uint8 {
	return (buf[i>>3] >> uint(i&7)) & 1
}

// GetNibble returns nibble i of buf; nibble 0 is the low nibble of byte 0.
func GetNibble(buf []byte, i int) uint8 {
	b := buf[i>>1]
	if i&1 == 0 {
		return b & 0xF
	}
	return (b >> 4) & 0xF
}
