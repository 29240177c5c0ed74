package chunk

import (
	"testing"

	"github.com/panzi/xzib/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaRoundTrip(t *testing.T) {
	// spec scenario 4: title "Hi", author ["A","B"], created_at
	// 2024-05-01, comment "x\ny".
	want := []byte{
		0x01, 0x48, 0x69, 0x00,
		0x02, 0x32, 0x30, 0x32, 0x34, 0x2D, 0x30, 0x35, 0x2D, 0x30, 0x31, 0x00,
		0x03, 0x41, 0x00,
		0x03, 0x42, 0x00,
		0x06, 0x78, 0x0A, 0x79, 0x00,
	}

	m := &Meta{
		Title:     "Hi",
		CreatedAt: date.Date{Year: 2024, Month: 5, Day: 1},
		Author:    []string{"A", "B"},
		Comment:   "x\ny",
	}
	assert.Equal(t, want, m.Encode())

	decoded, err := ReadMeta(want, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, m.Title, decoded.Title)
	assert.Equal(t, m.CreatedAt, decoded.CreatedAt)
	assert.Equal(t, m.Author, decoded.Author)
	assert.Equal(t, m.Comment, decoded.Comment)
}

func TestMeta_UnknownKeyIsRecovered(t *testing.T) {
	payload := []byte{0x09, 'x', 0x00, 0x01, 'H', 'i', 0x00}
	var diagnostics []string
	opts := ReadOptions{Diagnostics: func(format string, args ...any) {
		diagnostics = append(diagnostics, format)
	}}

	m, err := ReadMeta(payload, opts)
	require.NoError(t, err)
	assert.Equal(t, "Hi", m.Title)
	assert.Len(t, diagnostics, 1)
}

func TestMeta_CommentAppendsWithNewline(t *testing.T) {
	payload := []byte{
		0x06, 'a', 0x00,
		0x06, 'b', 0x00,
	}
	m, err := ReadMeta(payload, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a\nb", m.Comment)
}

func TestMeta_TitleReplacesOnRepeat(t *testing.T) {
	payload := []byte{
		0x01, 'a', 0x00,
		0x01, 'b', 0x00,
	}
	m, err := ReadMeta(payload, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "b", m.Title)
}

func TestMeta_InvalidUTF8IsFatal(t *testing.T) {
	payload := []byte{0x01, 0xFF, 0xFE, 0x00}
	_, err := ReadMeta(payload, ReadOptions{})
	assert.Error(t, err)
}
