/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package codepage maps the numeric code-page identifiers accepted by
// "#pragma code_page" and the command line to decode/encode strategies, and
// tracks which code pages are active for each source line.
//
// No library in the retrieval pack implements Windows code-page transcoding
// (none import golang.org/x/text/encoding or similar), so this is built
// directly on unicode/utf8 and unicode/utf16 with hand-written tables; see
// DESIGN.md for the full justification.
package codepage

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ID identifies a supported code page.
type ID int

const (
	Windows1252 ID = 1252
	UTF8        ID = 65001
)

// Default is the code page used when neither the command line nor a pragma
// has set one.
const Default = Windows1252

// Parse resolves a pragma/command-line code-page spelling ("DEFAULT", a
// decimal number, or one of the two supported literals) to an ID.
func Parse(text string, defaultID ID) (ID, error) {
	if text == "DEFAULT" {
		return defaultID, nil
	}
	var n int
	if _, err := fmt.Sscanf(text, "%d", &n); err != nil {
		return 0, fmt.Errorf("code page %q is not a recognized identifier", text)
	}
	switch ID(n) {
	case Windows1252, UTF8:
		return ID(n), nil
	default:
		return 0, fmt.Errorf("code page %d is not supported", n)
	}
}

// Decode turns a narrow-string byte slice into Unicode codepoints under the
// given input code page. Invalid sequences decode to U+FFFD.
func Decode(b []byte, cp ID) []rune {
	switch cp {
	case UTF8:
		return decodeUTF8(b)
	default: // Windows1252 and anything else we were handed defensively
		return decodeWindows1252(b)
	}
}

// EncodeNarrow re-encodes codepoints into bytes under the given output code
// page. Characters that cannot be represented become '?' under Windows-1252
// (matching the reference compiler) or U+FFFD-as-UTF8 under UTF-8.
func EncodeNarrow(runes []rune, cp ID) []byte {
	switch cp {
	case UTF8:
		var out []byte
		for _, r := range runes {
			if r < 0 {
				r = 0xFFFD
			}
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			out = append(out, buf[:n]...)
		}
		return out
	default:
		out := make([]byte, 0, len(runes))
		for _, r := range runes {
			out = append(out, encodeWindows1252Rune(r))
		}
		return out
	}
}

// EncodeWide turns codepoints into UTF-16LE code units for L"" strings.
// Code pages have no bearing on wide strings; they are always UTF-16.
func EncodeWide(runes []rune) []uint16 {
	var out []uint16
	for _, r := range runes {
		if r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
			out = append(out, 0xFFFD)
			continue
		}
		out = append(out, utf16.Encode([]rune{r})...)
	}
	return out
}

func decodeUTF8(b []byte) []rune {
	var out []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			out = append(out, 0xFFFD)
			b = b[1:]
			continue
		}
		out = append(out, r)
		b = b[size:]
	}
	return out
}

func decodeWindows1252(b []byte) []rune {
	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = windows1252ToRune[c]
	}
	return out
}

func encodeWindows1252Rune(r rune) byte {
	if r >= 0 && r < 0x80 {
		return byte(r)
	}
	if b, ok := runeToWindows1252[r]; ok {
		return b
	}
	return '?'
}

// windows1252ToRune maps the 256 Windows-1252 byte values to Unicode
// codepoints. Bytes 0x00-0x7F are identical to ASCII; 0x80-0x9F hold the
// code page's distinguishing punctuation/currency glyphs (undefined slots
// map to the byte value itself, matching the reference tool's behavior of
// treating unassigned 1252 codepoints as Latin-1).
var windows1252ToRune = buildWindows1252Table()

var runeToWindows1252 = buildReverseWindows1252Table()

// windows1252HighRunes lists the Unicode codepoints for bytes 0x80-0x9F,
// the only range where Windows-1252 diverges from Latin-1 (ISO-8859-1).
var windows1252HighRunes = [32]rune{
	0x20AC, 0x81, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x8D, 0x017D, 0x8F,
	0x90, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x9D, 0x017E, 0x0178,
}

func buildWindows1252Table() [256]rune {
	var table [256]rune
	for i := 0; i < 0x80; i++ {
		table[i] = rune(i)
	}
	for i := 0xA0; i < 0x100; i++ {
		table[i] = rune(i)
	}
	for i, r := range windows1252HighRunes {
		table[0x80+i] = r
	}
	return table
}

func buildReverseWindows1252Table() map[rune]byte {
	table := buildWindows1252Table()
	rev := make(map[rune]byte, len(table))
	for b, r := range table {
		rev[r] = byte(b)
	}
	return rev
}
