package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	id, err := Parse("DEFAULT", Windows1252)
	require.NoError(t, err)
	assert.Equal(t, Windows1252, id)

	id, err = Parse("65001", Windows1252)
	require.NoError(t, err)
	assert.Equal(t, UTF8, id)

	_, err = Parse("99999", Windows1252)
	assert.Error(t, err)

	_, err = Parse("not-a-number", Windows1252)
	assert.Error(t, err)
}

func TestWindows1252RoundTrip(t *testing.T) {
	for b := 0; b < 0x100; b++ {
		r := Decode([]byte{byte(b)}, Windows1252)[0]
		out := EncodeNarrow([]rune{r}, Windows1252)
		assert.Equal(t, byte(b), out[0], "byte 0x%02x should round-trip", b)
	}
}

func TestEncodeNarrowUnrepresentableBecomesQuestionMark(t *testing.T) {
	out := EncodeNarrow([]rune{0x4E2D}, Windows1252) // a CJK ideograph
	assert.Equal(t, []byte{'?'}, out)
}

func TestEncodeWideSurrogateRangeBecomesReplacementChar(t *testing.T) {
	out := EncodeWide([]rune{0xD800})
	assert.Equal(t, []uint16{0xFFFD}, out)
}

func TestEncodeWideSupplementaryPlane(t *testing.T) {
	out := EncodeWide([]rune{0x1F600}) // outside the BMP, needs a surrogate pair
	assert.Len(t, out, 2)
}

func TestDecodeUTF8InvalidByteBecomesReplacementChar(t *testing.T) {
	out := Decode([]byte{0xFF}, UTF8)
	assert.Equal(t, []rune{0xFFFD}, out)
}
