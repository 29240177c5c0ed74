package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 5, Day: 1}, d)
	assert.Equal(t, "2024-05-01", d.String())
}

func TestParse_Malformed(t *testing.T) {
	for _, v := range []string{"2024-05", "2024/05/01", "abcd-05-01", ""} {
		_, err := Parse(v)
		assert.Error(t, err, v)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 1}.IsZero())
}
