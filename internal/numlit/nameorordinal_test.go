package numlit

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLiteralOrdinals(t *testing.T) {
	for _, c := range []struct {
		text    string
		ordinal uint16
	}{
		{"1", 1},
		{"65535", 65535},
		{"65536", 0}, // wraps mod 2^16, and 0 demotes to a Name -- see next test
		{"0x2A", 0x2A},
	} {
		t.Run(c.text, func(t *testing.T) {
			v := ClassifyLiteral(c.text)
			if c.ordinal == 0 {
				assert.False(t, v.IsOrdinal)
				return
			}
			assert.True(t, v.IsOrdinal)
			assert.Equal(t, c.ordinal, v.Ordinal)
		})
	}
}

func TestClassifyLiteralZeroIsAlwaysAName(t *testing.T) {
	v := ClassifyLiteral("0")
	assert.False(t, v.IsOrdinal)
	assert.Equal(t, utf16.Encode([]rune("0")), v.Name)
}

func TestClassifyLiteralNames(t *testing.T) {
	v := ClassifyLiteral("MyResource")
	assert.False(t, v.IsOrdinal)
	assert.Equal(t, utf16.Encode([]rune("MYRESOURCE")), v.Name)
}

func TestClassifyLiteralDigitPrefixedName(t *testing.T) {
	// starts with a digit but isn't a valid number -> falls back to a Name
	v := ClassifyLiteral("123abc")
	assert.False(t, v.IsOrdinal)
	assert.Equal(t, utf16.Encode([]rune("123ABC")), v.Name)
}

func TestClassifyLiteralPreservesNonASCIICase(t *testing.T) {
	// Only ASCII letters are uppercased; non-ASCII codepoints pass through
	// unchanged rather than receiving full Unicode case folding.
	v := ClassifyLiteral("café")
	assert.False(t, v.IsOrdinal)
	assert.Equal(t, utf16.Encode([]rune("CAFé")), v.Name)
}

func TestNameOrdinalFromRunesTruncates(t *testing.T) {
	runes := make([]rune, MaxNameCodeUnits+10)
	for i := range runes {
		runes[i] = 'A'
	}
	v := NameOrdinalFromRunes(runes)
	assert.Len(t, v.Name, MaxNameCodeUnits)
}
