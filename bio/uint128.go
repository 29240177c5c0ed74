package bio

// Uint128 is a 128-bit unsigned integer made of two uint64 halves.
//
// No third-party uint128 or bignum package appears anywhere in the
// retrieved corpus this codec was grounded on, so this type is built on
// nothing but the standard library: the handful of operations the pixel
// codec needs (shift, or, and, little-endian byte codec) are simple
// enough that pulling in a dependency for them isn't grounded in any
// example.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Uint128FromLEBytes decodes 16 little-endian bytes into a Uint128.
func Uint128FromLEBytes(b []byte) Uint128 {
	_ = b[15]
	return Uint128{
		Lo: le.Uint64(b[0:8]),
		Hi: le.Uint64(b[8:16]),
	}
}

// LEBytes encodes v as 16 little-endian bytes.
func (v Uint128) LEBytes() [16]byte {
	var buf [16]byte
	le.PutUint64(buf[0:8], v.Lo)
	le.PutUint64(buf[8:16], v.Hi)
	return buf
}

// Shl returns v << n for 0 <= n <= 128.
func (v Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: 0, Hi: v.Lo << (n - 64)}
	default:
		return Uint128{
			Lo: v.Lo << n,
			Hi: (v.Hi << n) | (v.Lo >> (64 - n)),
		}
	}
}

// Shr returns v >> n for 0 <= n <= 128 (logical, unsigned shift).
func (v Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: v.Hi >> (n - 64), Hi: 0}
	default:
		return Uint128{
			Lo: (v.Lo >> n) | (v.Hi << (64 - n)),
			Hi: v.Hi >> n,
		}
	}
}

// Or returns the bitwise OR of v and o.
func (v Uint128) Or(o Uint128) Uint128 {
	return Uint128{Lo: v.Lo | o.Lo, Hi: v.Hi | o.Hi}
}

// And returns the bitwise AND of v and o.
func (v Uint128) And(o Uint128) Uint128 {
	return Uint128{Lo: v.Lo & o.Lo, Hi: v.Hi & o.Hi}
}

// Uint128FromUint8 widens a byte into the low bits of a Uint128.
func Uint128FromUint8(b uint8) Uint128 {
	return Uint128{Lo: uint64(b)}
}

// LowByte returns the least significant byte of v.
func (v Uint128) LowByte() uint8 {
	return uint8(v.Lo)
}

// IsZero reports whether v is the zero value.
func (v Uint128) IsZero() bool {
	return v.Lo == 0 && v.Hi == 0
}

// Equal reports whether v equals o.
func (v Uint128) Equal(o Uint128) bool {
	return v.Lo == o.Lo && v.Hi == o.Hi
}

// MaxUint128 is the all-ones 128-bit value.
var MaxUint128 = Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}
