package numlit

import (
	"fmt"

	"github.com/holocm/rcc/internal/codepage"
)

// EvalNarrowString decodes the body of a quoted narrow string literal
// (without surrounding quotes) into its final transcoded byte form,
// applying escapes and the active input/output code pages per spec §4.2.
// Raw (non-escape) source bytes are decoded to codepoints via the input
// code page, exactly like any other narrow-string byte run; only the
// escape syntax itself (\n, \", "", ...) is recognized independent of
// code page, since it is always plain ASCII.
func EvalNarrowString(body string, input, output codepage.ID) ([]byte, error) {
	runes, err := unescapeNarrow([]byte(body), input)
	if err != nil {
		return nil, err
	}
	return codepage.EncodeNarrow(runes, output), nil
}

// EvalWideString decodes the body of a quoted wide string literal (the
// L"..." form, without the L prefix or surrounding quotes) into UTF-16LE
// code units.
func EvalWideString(body string) ([]uint16, error) {
	runes, err := unescapeWide(body)
	if err != nil {
		return nil, err
	}
	return codepage.EncodeWide(runes), nil
}

// unescapeNarrow interprets backslash escapes (\n \r \t \a \b \\ \" \xHH
// \NNN) and doubled-quote ("") within a narrow string literal body given
// as raw source bytes. Runs of raw, non-escape bytes are decoded to
// codepoints through the input code page as they are flushed, so a literal
// byte 0x80-0xFF under Windows-1252 (e.g. an accented letter or a smart
// quote) decodes correctly instead of being treated as UTF-8. \xHH and
// \NNN escapes produce an explicit byte value, which is likewise decoded
// through the input code page (it is a raw byte inserted into the string,
// not already a codepoint).
func unescapeNarrow(body []byte, input codepage.ID) ([]rune, error) {
	var out []rune
	var raw []byte
	flush := func() {
		if len(raw) == 0 {
			return
		}
		out = append(out, codepage.Decode(raw, input)...)
		raw = raw[:0]
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			if c == '"' && i+1 < len(body) && body[i+1] == '"' {
				raw = append(raw, '"')
				i++
				continue
			}
			raw = append(raw, c)
			continue
		}
		if i+1 >= len(body) {
			raw = append(raw, '\\')
			break
		}
		i++
		switch body[i] {
		case 'n':
			flush()
			out = append(out, '\n')
		case 'r':
			flush()
			out = append(out, '\r')
		case 't':
			flush()
			out = append(out, '\t')
		case 'a':
			flush()
			out = append(out, '\a')
		case 'b':
			flush()
			out = append(out, '\b')
		case '\\':
			raw = append(raw, '\\')
		case '"':
			return nil, fmt.Errorf(`\" is not accepted; use "" to embed a quote`)
		case 'x', 'X':
			val := 0
			digits := 0
			for digits < 2 && i+1 < len(body) {
				d, ok := hexDigit(rune(body[i+1]))
				if !ok {
					break
				}
				val = val<<4 | d
				i++
				digits++
			}
			flush()
			out = append(out, codepage.Decode([]byte{byte(val)}, input)...)
		default:
			if body[i] >= '0' && body[i] <= '7' {
				val := 0
				digits := 0
				for digits < 3 && i < len(body) && body[i] >= '0' && body[i] <= '7' {
					val = val<<3 + int(body[i]-'0')
					i++
					digits++
				}
				i-- // compensate for the loop's i++
				flush()
				out = append(out, codepage.Decode([]byte{byte(val)}, input)...)
			} else {
				raw = append(raw, body[i])
			}
		}
	}
	flush()
	return out, nil
}

// unescapeWide interprets the same escape syntax as unescapeNarrow, but
// over the literal's Unicode codepoints: wide strings have no code-page
// dependency, so \NNN is a 16-bit code unit value rather than a raw byte.
func unescapeWide(body string) ([]rune, error) {
	var out []rune
	r := []rune(body)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c != '\\' {
			if c == '"' && i+1 < len(r) && r[i+1] == '"' {
				out = append(out, '"')
				i++
				continue
			}
			out = append(out, c)
			continue
		}
		if i+1 >= len(r) {
			out = append(out, '\\')
			break
		}
		i++
		switch r[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case '\\':
			out = append(out, '\\')
		case '"':
			return nil, fmt.Errorf(`\" is not accepted; use "" to embed a quote`)
		case 'x', 'X':
			val := 0
			digits := 0
			for digits < 2 && i+1 < len(r) {
				d, ok := hexDigit(r[i+1])
				if !ok {
					break
				}
				val = val<<4 | d
				i++
				digits++
			}
			out = append(out, rune(val))
		default:
			if r[i] >= '0' && r[i] <= '7' {
				val := 0
				digits := 0
				for digits < 3 && i < len(r) && r[i] >= '0' && r[i] <= '7' {
					val = val<<3 + int(r[i]-'0')
					i++
					digits++
				}
				i-- // compensate for the loop's i++
				out = append(out, rune(val))
			} else {
				out = append(out, r[i])
			}
		}
	}
	return out, nil
}
