package bio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU8(&buf, 0x12))
	require.NoError(t, WriteU16(&buf, 0x1234))
	require.NoError(t, WriteU32(&buf, 0x12345678))
	require.NoError(t, WriteU64(&buf, 0x1122334455667788))
	require.NoError(t, WriteU128(&buf, Uint128{Lo: 1, Hi: 2}))
	require.NoError(t, WriteF32(&buf, 3.5))
	require.NoError(t, WriteF64(&buf, 7.25))
	require.NoError(t, WriteFourCC(&buf, [4]byte{'B', 'O', 'D', 'Y'}))

	u8, err := ReadU8(&buf)
	require.NoError(t, err)
	require.Equal(t, uint8(0x12), u8)

	u16, err := ReadU16(&buf)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := ReadU32(&buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), u32)

	u64, err := ReadU64(&buf)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1122334455667788), u64)

	u128, err := ReadU128(&buf)
	require.NoError(t, err)
	require.Equal(t, Uint128{Lo: 1, Hi: 2}, u128)

	f32, err := ReadF32(&buf)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := ReadF64(&buf)
	require.NoError(t, err)
	require.Equal(t, 7.25, f64)

	tag, err := ReadFourCC(&buf)
	require.NoError(t, err)
	require.Equal(t, [4]byte{'B', 'O', 'D', 'Y'}, tag)
}

func TestGetBit(t *testing.T) {
	buf := []byte{0b00000101}
	require.Equal(t, uint8(1), GetBit(buf, 0))
	require.Equal(t, uint8(0), GetBit(buf, 1))
	require.Equal(t, uint8(1), GetBit(buf, 2))
}

func TestGetNibble(t *testing.T) {
	buf := []byte{0xAB}
	require.Equal(t, uint8(0xB), GetNibble(buf, 0))
	require.Equal(t, uint8(0xA), GetNibble(buf, 1))
}

func TestUint128Shifts(t *testing.T) {
	v := Uint128{Lo: 1}
	got := v.Shl(64)
	require.Equal(t, Uint128{Lo: 0, Hi: 1}, got)

	back := got.Shr(64)
	require.Equal(t, v, back)

	require.True(t, MaxUint128.Shr(1).Shl(1).Lo&1 == 0)
}
