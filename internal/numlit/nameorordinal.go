package numlit

import (
	"unicode/utf16"
	"unicode/utf8"
)

// MaxNameCodeUnits is the maximum number of UTF-16 code units a Name may
// occupy on disk, per spec §3.
const MaxNameCodeUnits = 256

// NameOrOrdinal is the tagged union described in spec §3: either a 16-bit
// Ordinal or a Name of at most 256 UTF-16 code units.
type NameOrOrdinal struct {
	IsOrdinal bool
	Ordinal   uint16
	// Name holds the UTF-16 code units of a Name value, already uppercased
	// (ASCII only) and truncated to MaxNameCodeUnits; truncation may leave
	// an unpaired high surrogate, which is intentional (spec §3).
	Name []uint16
}

// Ordinal builds an Ordinal NameOrOrdinal.
func Ordinal(v uint16) NameOrOrdinal {
	return NameOrOrdinal{IsOrdinal: true, Ordinal: v}
}

// NameOrdinalFromRunes builds a Name NameOrOrdinal from already-decoded codepoints,
// applying uppercasing of ASCII letters, U+FFFD replacement of invalid
// codepoints, and 256-code-unit truncation per spec §3.
func NameOrdinalFromRunes(runes []rune) NameOrOrdinal {
	units := make([]uint16, 0, len(runes))
	for _, r := range runes {
		if r < 0 || r > utf8.MaxRune {
			r = 0xFFFD
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		units = append(units, utf16.Encode([]rune{r})...)
	}
	if len(units) > MaxNameCodeUnits {
		units = units[:MaxNameCodeUnits] // may leave an unpaired high surrogate; intentional
	}
	return NameOrOrdinal{Name: units}
}

// ClassifyLiteral derives a NameOrOrdinal from a source literal's text,
// following the decision tree in spec §3:
//
//  1. If the literal begins with a digit, attempt an integer parse (base 16
//     if 0x/0X-prefixed, else base 10).
//  2. If that parse fails (a non-digit codepoint was hit in base 10), or the
//     literal didn't begin with a digit at all, the literal is a Name (the
//     exact ASCII source text, uppercased).
//  3. If the integer result is exactly zero, it is *also* treated as a Name
//     (the literal "0" is always a Name, never Ordinal(0)).
//  4. Otherwise, it's Ordinal(result mod 2^16).
func ClassifyLiteral(text string) NameOrOrdinal {
	if text == "" || !startsWithDigit(text) {
		return nameFromASCII(text)
	}

	var value uint32
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		value = parseHexWrapping(text[2:])
	} else {
		v, err := parseDecimalWrapping(text)
		if err != nil {
			return nameFromASCII(text)
		}
		value = v
	}

	ordinal := uint16(value & 0xFFFF)
	if ordinal == 0 {
		return nameFromASCII(text)
	}
	return Ordinal(ordinal)
}

func startsWithDigit(s string) bool {
	c := s[0]
	return c >= '0' && c <= '9'
}

// nameFromASCII encodes the exact source text as UTF-16, applying
// NameOrdinalFromRunes's ASCII-only uppercasing (non-ASCII codepoints pass
// through unchanged, per spec §3) plus its replacement/truncation rules.
func nameFromASCII(text string) NameOrOrdinal {
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		runes = append(runes, r)
	}
	return NameOrdinalFromRunes(runes)
}
