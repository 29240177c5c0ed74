package color

import (
	"testing"

	"github.com/panzi/xzib/bio"
	"github.com/stretchr/testify/require"
)

func TestExtendU8(t *testing.T) {
	cases := []struct {
		name   string
		v      uint8
		planes uint8
		want   uint8
	}{
		{"1-bit zero", 0, 1, 0x00},
		{"1-bit one", 1, 1, 0xFF},
		{"4-bit max", 0xF, 4, 0xFF},
		{"4-bit zero", 0, 4, 0x00},
		{"3-bit formula", 0b101, 3, 0b101<<5 | 0b101<<2 | 0b101>>1},
		{"8-bit identity", 0x7F, 8, 0x7F},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, ExtendU8(c.v, c.planes))
		})
	}
}

func TestExtendMonotonic(t *testing.T) {
	for n := uint8(1); n < 8; n++ {
		max := uint8(1)<<n - 1
		var prev uint8
		for v := uint8(0); v <= max; v++ {
			got := ExtendU8(v, n)
			if v > 0 {
				require.GreaterOrEqual(t, got, prev)
			}
			prev = got
		}
		require.Equal(t, uint8(0), ExtendU8(0, n))
		require.Equal(t, uint8(0xFF), ExtendU8(max, n))
	}
}

func TestExtendU128(t *testing.T) {
	// 0b11 repeated across 128 bits is all ones, mirroring the u8
	// planes=2 case (0b11 repeated across 8 bits is 0xFF).
	v := bio.Uint128FromUint8(3)
	got := ExtendU128(v, 2)
	want := bio.MaxUint128
	require.True(t, got.Equal(want))
}

func TestExtendU16_U32_U64Identity(t *testing.T) {
	require.Equal(t, uint16(0x1234), ExtendU16(0x1234, 16))
	require.Equal(t, uint32(0x12345678), ExtendU32(0x12345678, 32))
	require.Equal(t, uint64(0x1122334455667788), ExtendU64(0x1122334455667788, 64))
}
