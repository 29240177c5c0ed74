package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFoot_Crc32(t *testing.T) {
	// spec scenario: checksum value 0xDEADBEEF, LE bytes EF BE AD DE.
	payload := []byte{1, 0xEF, 0xBE, 0xAD, 0xDE}
	foot, err := ReadFoot(payload)
	require.NoError(t, err)
	assert.Equal(t, ChecksumCrc32, foot.Checksum.Type)
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, foot.Checksum.Bytes)
}

func TestFootEncodeDecodeRoundTrip(t *testing.T) {
	for _, ct := range []ChecksumType{ChecksumCrc32, ChecksumSha1, ChecksumSha224, ChecksumSha256, ChecksumSha384, ChecksumSha512} {
		data := []byte("round trip payload")
		sum := Sum(ct, data)
		foot := &Foot{Checksum: sum}

		decoded, err := ReadFoot(foot.Encode())
		require.NoError(t, err)
		assert.Equal(t, sum.Type, decoded.Checksum.Type)
		assert.Equal(t, sum.Bytes, decoded.Checksum.Bytes)
		assert.True(t, decoded.Checksum.Equal(data))
		assert.False(t, decoded.Checksum.Equal([]byte("tampered")))
	}
}

func TestReadFoot_InvalidType(t *testing.T) {
	_, err := ReadFoot([]byte{9, 0, 0, 0, 0})
	assert.Error(t, err)
}

func TestReadFoot_Truncated(t *testing.T) {
	_, err := ReadFoot([]byte{1, 0xEF, 0xBE})
	assert.Error(t, err)
}
