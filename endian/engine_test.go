package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetLittleEndianEngineAppend(t *testing.T) {
	engine := GetLittleEndianEngine()

	var buf []byte
	buf = engine.AppendUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	buf = engine.AppendUint64(buf, 0x1122334455667788)
	require.Equal(t, uint64(0x1122334455667788), engine.Uint64(buf[4:]))
}
