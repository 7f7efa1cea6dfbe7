package lexer

import (
	"testing"

	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexer(src string) *Lexer {
	cp := codepage.NewTable(codepage.Default)
	diags := &diagnostics.Collector{}
	return New([]byte(src), cp, diags, false, false)
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	lx := newTestLexer("1 MYDIALOG DIALOG BEGIN END")

	tok := lx.Next(Normal)
	assert.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, "1", tok.Text)

	tok = lx.Next(WhitespaceDelimiterOnly)
	assert.Equal(t, token.Literal, tok.Kind)
	assert.Equal(t, "MYDIALOG", tok.Text)

	tok = lx.Next(WhitespaceDelimiterOnly)
	assert.True(t, tok.Is("DIALOG"))

	tok = lx.Next(Normal)
	assert.Equal(t, token.OpenBrace, tok.Kind)

	tok = lx.Next(Normal)
	assert.Equal(t, token.CloseBrace, tok.Kind)

	tok = lx.Next(Normal)
	assert.Equal(t, token.EOF, tok.Kind)
}

func TestLexerSnapshotRestore(t *testing.T) {
	lx := newTestLexer("1, 2")

	snap := lx.Snapshot()
	first := lx.Next(Normal)
	assert.Equal(t, "1", first.Text)

	lx.Restore(snap)
	again := lx.Next(Normal)
	assert.Equal(t, "1", again.Text) // the snapshot correctly rewound
}

func TestLexerOperatorVsLeadingSign(t *testing.T) {
	lx := newTestLexer("-1")
	tok := lx.Next(Normal)
	assert.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, "-1", tok.Text)

	lx2 := newTestLexer("-1")
	tok2 := lx2.Next(NormalExpectOperator)
	assert.Equal(t, token.Operator, tok2.Kind)
	assert.Equal(t, "-", tok2.Text)
}

func TestLexerLeadingPlusIsInvalid(t *testing.T) {
	lx := newTestLexer("+1")
	tok := lx.Next(Normal)
	assert.Equal(t, token.Invalid, tok.Kind)
}

func TestLexerQuotedStrings(t *testing.T) {
	lx := newTestLexer(`"a""b" L"wide"`)

	tok := lx.Next(Normal)
	require.Equal(t, token.QuotedASCIIString, tok.Kind)
	assert.Equal(t, `a""b`, tok.Text)

	tok = lx.Next(Normal)
	require.Equal(t, token.QuotedWideString, tok.Kind)
	assert.Equal(t, "wide", tok.Text)
}

func TestLexerUnterminatedString(t *testing.T) {
	cp := codepage.NewTable(codepage.Default)
	diags := &diagnostics.Collector{}
	lx := New([]byte(`"unterminated`), cp, diags, false, false)
	lx.Next(Normal)
	assert.True(t, diags.HasErrors())
}

func TestLexerLineCommentAndNewlineTracking(t *testing.T) {
	lx := newTestLexer("; comment\n1")
	tok := lx.Next(Normal)
	assert.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, 2, tok.Line)
}

func TestLexerHaltsAtSub(t *testing.T) {
	lx := newTestLexer("1\x1a2")
	tok := lx.Next(Normal)
	assert.Equal(t, token.Number, tok.Kind)
	tok = lx.Next(Normal)
	assert.Equal(t, token.EOF, tok.Kind)
}

func TestLexerCodePagePragma(t *testing.T) {
	cp := codepage.NewTable(codepage.Default)
	diags := &diagnostics.Collector{}
	lx := New([]byte("#pragma code_page(65001)\n1"), cp, diags, false, false)
	tok := lx.Next(Normal)
	assert.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, codepage.UTF8, cp.AtLine(2).Input)
}
