package numlit

import (
	"testing"

	"github.com/holocm/rcc/internal/codepage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalNarrowStringEscapes(t *testing.T) {
	out, err := EvalNarrowString(`hello\nworld`, codepage.Windows1252, codepage.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(out))
}

func TestEvalNarrowStringDoubledQuote(t *testing.T) {
	out, err := EvalNarrowString(`say ""hi""`, codepage.Windows1252, codepage.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, string(out))
}

func TestEvalNarrowStringHexEscape(t *testing.T) {
	out, err := EvalNarrowString(`\x41\x42`, codepage.Windows1252, codepage.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "AB", string(out))
}

func TestEvalNarrowStringOctalEscapeIsByteValued(t *testing.T) {
	out, err := EvalNarrowString(`\101`, codepage.Windows1252, codepage.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "A", string(out))
}

func TestEvalNarrowStringRejectsBackslashQuote(t *testing.T) {
	_, err := EvalNarrowString(`\"`, codepage.Windows1252, codepage.Windows1252)
	assert.Error(t, err)
}

func TestEvalNarrowStringDecodesInputCodePage(t *testing.T) {
	// 0xE9 is "é" under Windows-1252 but not valid standalone UTF-8; the
	// input code page must decode it before it is re-encoded as UTF-8.
	body := "caf" + string([]byte{0xE9})
	out, err := EvalNarrowString(body, codepage.Windows1252, codepage.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "café", string(out))
}

func TestEvalNarrowStringOctalEscapeHonorsInputCodePage(t *testing.T) {
	// \351 is octal for 0xE9, "é" under Windows-1252; the escape-produced
	// byte must go through the same input-code-page decode as raw bytes.
	out, err := EvalNarrowString(`\351`, codepage.Windows1252, codepage.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "é", string(out))
}

func TestEvalWideStringEscapes(t *testing.T) {
	units, err := EvalWideString(`A\tB`)
	require.NoError(t, err)
	assert.Equal(t, []uint16{'A', '\t', 'B'}, units)
}
