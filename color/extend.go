package color

import "github.com/panzi/xzib/bio"

// extend replicates an N-bit value v across a W-bit carrier so that
// 0 maps to 0 and 2^N-1 maps to the carrier's maximum value: the low N
// bits of v are copied into the high bits of the result, then the next
// N bits (now fully available from v's replication) fill the following
// slot, and so on until the carrier is full. For N > W/2 this reduces
// to exactly two copies, the "double-shift" case; for small N (as on
// the u8 carrier with N in 1..4) it degenerates to the closed-form
// linear maps (N=1: v*255, N=4: v<<4|v, ...).
func extend64(v uint64, n uint8, w uint8) uint64 {
	if n >= w {
		return v
	}
	var result uint64
	var filled uint8
	for filled < w {
		shift := int(w) - int(filled) - int(n)
		if shift >= 0 {
			result |= v << uint(shift)
		} else {
			result |= v >> uint(-shift)
		}
		filled += n
	}
	return result
}

// ExtendU8 extends an n-bit sample (n in 1..8) to the full u8 range.
func ExtendU8(v uint8, n uint8) uint8 {
	if n == 0 || n >= 8 {
		return v
	}
	return uint8(extend64(uint64(v), n, 8))
}

// ExtendU16 extends an n-bit sample (n in 1..16) to the full u16 range.
func ExtendU16(v uint16, n uint8) uint16 {
	if n == 0 || n >= 16 {
		return v
	}
	return uint16(extend64(uint64(v), n, 16))
}

// ExtendU32 extends an n-bit sample (n in 1..32) to the full u32 range.
func ExtendU32(v uint32, n uint8) uint32 {
	if n == 0 || n >= 32 {
		return v
	}
	return uint32(extend64(uint64(v), n, 32))
}

// ExtendU64 extends an n-bit sample (n in 1..64) to the full u64 range.
func ExtendU64(v uint64, n uint8) uint64 {
	if n == 0 || n >= 64 {
		return v
	}
	return extend64(v, n, 64)
}

// ExtendU128 extends an n-bit sample (n in 1..128) to the full u128
// range. Carriers chosen via format.FromPlanes always have n > bits/2,
// so this only ever needs the two-copy (double-shift) case in practice,
// but the loop is written generally like its narrower siblings.
func ExtendU128(v bio.Uint128, n uint8) bio.Uint128 {
	if n == 0 || n >= 128 {
		return v
	}
	var result bio.Uint128
	var filled uint8
	for filled < 128 {
		shift := int(128) - int(filled) - int(n)
		if shift >= 0 {
			result = result.Or(v.Shl(uint(shift)))
		} else {
			result = result.Or(v.Shr(uint(-shift)))
		}
		filled += n
	}
	return result
}
