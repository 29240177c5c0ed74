package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXmetRoundTrip(t *testing.T) {
	x := &Xmet{}
	x.Add("software", "xzibgen")
	x.Add("software", "xzibgen-2")
	x.Add("camera", "EOS")

	encoded := x.Encode()
	decoded, err := ReadXmet(encoded)
	require.NoError(t, err)

	assert.Equal(t, []string{"xzibgen", "xzibgen-2"}, decoded.Get("software"))
	assert.Equal(t, []string{"EOS"}, decoded.Get("camera"))
}

func TestXmetMultiplicity(t *testing.T) {
	// for a key repeated n times on encode, decode yields a value
	// sequence of length n containing the same strings as a multiset.
	x := &Xmet{}
	for i := 0; i < 5; i++ {
		x.Add("tag", "v")
	}
	decoded, err := ReadXmet(x.Encode())
	require.NoError(t, err)
	assert.Len(t, decoded.Get("tag"), 5)
}

func TestXmetEmptyKeyTerminates(t *testing.T) {
	payload := []byte{
		'k', 0x00, 'v', 0x00,
		0x00, // empty key terminates
		'u', 'n', 'r', 'e', 'a', 'c', 'h', 'e', 'd', 0x00, 'x', 0x00,
	}
	x, err := ReadXmet(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"v"}, x.Get("k"))
	assert.Nil(t, x.Get("unreached"))
}

func TestXmet_InvalidUTF8IsFatal(t *testing.T) {
	payload := []byte{0xFF, 0xFE, 0x00, 'v', 0x00}
	_, err := ReadXmet(payload)
	assert.Error(t, err)
}
