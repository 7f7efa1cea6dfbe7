/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package lexer implements the code-page-aware tokenizer described in spec
// §4.1. The lexer is a value type (source slice plus a position integer),
// so the parser can snapshot and rewind it cheaply for one-token lookahead
// (spec §9, "Lookahead in the parser").
package lexer

import (
	"strings"

	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/token"
)

// Mode selects how Next() delimits and classifies the next token.
type Mode int

const (
	// WhitespaceDelimiterOnly treats every run of non-whitespace as a
	// single literal token; used to read a resource id or a type keyword.
	WhitespaceDelimiterOnly Mode = iota
	// Normal recognizes numbers, strings, operators, punctuation and
	// identifiers; a leading '+' is rejected (unary plus is not
	// supported, per spec §4.2 and §9 Open Questions).
	Normal
	// NormalExpectOperator is like Normal but a leading '+' or '-' is
	// always treated as a binary operator rather than part of a number
	// literal, because the parser has already consumed a primary
	// expression and expects an operator next.
	NormalExpectOperator
)

// Lexer is the tokenizer state. It is a value type: callers needing
// lookahead simply copy it (Snapshot) and can resume from either copy.
type Lexer struct {
	src          []byte
	pos          int
	line         int
	includedFile bool
	tolerant     bool
	cp           *codepage.Table
	diags        *diagnostics.Collector
	halted       bool // set once 0x1A has been seen; all further Next() calls return EOF
}

// New creates a Lexer over src. cp is the shared code-page table threaded
// through the whole compilation; diags receives pragma-related diagnostics.
func New(src []byte, cp *codepage.Table, diags *diagnostics.Collector, includedFile, tolerant bool) *Lexer {
	return &Lexer{src: src, line: 1, cp: cp, diags: diags, includedFile: includedFile, tolerant: tolerant}
}

// Snapshot returns a copy of the lexer's current state, usable as
// rewindable lookahead: discard it to "unread", or replace the live lexer
// with it to commit.
func (l *Lexer) Snapshot() Lexer {
	return *l
}

// Restore resets the lexer to a previously captured Snapshot.
func (l *Lexer) Restore(s Lexer) {
	*l = s
}

// Line returns the current 1-based source line.
func (l *Lexer) Line() int { return l.line }

func (l *Lexer) span(low int) diagnostics.Span {
	return diagnostics.Span{Line: l.line, ByteLow: low, ByteHigh: l.pos}
}

// Next produces the next token under the given lex mode.
func (l *Lexer) Next(mode Mode) token.Token {
	if l.halted {
		return l.eof()
	}
	l.skipTrivia()
	if l.halted || l.pos >= len(l.src) {
		return l.eof()
	}

	l.cp.MarkLine(l.line)

	if mode == WhitespaceDelimiterOnly {
		return l.lexWhitespaceDelimited()
	}
	return l.lexNormal(mode == NormalExpectOperator)
}

func (l *Lexer) eof() token.Token {
	return token.Token{Kind: token.EOF, Line: l.line, ByteLow: l.pos, ByteHigh: l.pos}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// skipTrivia consumes whitespace, comments, and "#pragma code_page(...)"
// directives until it reaches the start of a real token, EOF, or the
// 0x1A terminator.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == 0x1A:
			// Emulates the reference compiler: 0x1A anywhere in the file
			// terminates input outright.
			l.halted = true
			return
		case c == '\n':
			l.pos++
			l.line++
		case isWhitespaceControl(c):
			l.pos++
		case c == ';':
			l.skipLineComment()
		case c == '#' && l.atLineStart() && l.matchesPragma():
			l.consumePragma()
		default:
			return
		}
	}
}

func (l *Lexer) atLineStart() bool {
	i := l.pos - 1
	for i >= 0 {
		c := l.src[i]
		if c == '\n' {
			return true
		}
		if !isWhitespaceControl(c) {
			return false
		}
		i--
	}
	return true
}

func (l *Lexer) matchesPragma() bool {
	rest := l.src[l.pos:]
	return strings.HasPrefix(strings.ToLower(string(rest)), "#pragma")
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		if l.src[l.pos] == 0x1A {
			l.halted = true
			return
		}
		l.pos++
	}
}

// consumePragma parses "#pragma code_page(N)" (case-insensitive,
// whitespace-tolerant) and updates the shared code-page table. Directives
// that are not code_page pragmas are skipped without a diagnostic; an
// unrecognized code_page argument produces an error (a warning when
// tolerant); an included file's pragma is honored only as a
// warning-and-ignore, per spec §4.1.
func (l *Lexer) consumePragma() {
	start := l.pos
	lineStart := l.line
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	directive := string(l.src[start:l.pos])

	arg, ok := extractCodePageArg(directive)
	if !ok {
		return // not a code_page pragma; nothing else is recognized here
	}

	if l.includedFile {
		l.diags.Warnf(diagnostics.ReasonCodePageInIncludedFile,
			diagnostics.Span{Line: lineStart},
			"#pragma code_page in included file is ignored")
		return
	}

	id, err := codepage.Parse(arg, codepage.Default)
	if err != nil {
		kind := diagnostics.KindError
		if l.tolerant {
			kind = diagnostics.KindWarning
		}
		l.diags.Add(kind, diagnostics.ReasonInvalidCodePage, diagnostics.Span{Line: lineStart}, "%s", err.Error())
		return
	}
	l.cp.Pragma(id)
}

// extractCodePageArg pulls the "N" out of "#pragma code_page(N)",
// tolerating surrounding whitespace; it returns ok=false for any other
// pragma spelling, which is then silently skipped as out of scope.
func extractCodePageArg(directive string) (string, bool) {
	lower := strings.ToLower(directive)
	idx := strings.Index(lower, "code_page")
	if idx < 0 {
		return "", false
	}
	rest := directive[idx+len("code_page"):]
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "(") {
		return "", false
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func isWhitespaceControl(c byte) bool {
	if c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f' {
		return true
	}
	// Any other illegal control character outside string literals counts
	// as whitespace (spec §4.1), except 0x1A (handled by the caller) and
	// '\n' (handled by the caller to track line numbers).
	return c < 0x20 && c != '\n'
}

func (l *Lexer) lexWhitespaceDelimited() token.Token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\n' || isWhitespaceControl(c) || c == ';' || c == 0x1A {
			break
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])
	return token.Token{Kind: token.Literal, Text: text, Line: l.line, ByteLow: start, ByteHigh: l.pos}
}

func (l *Lexer) lexNormal(expectOperator bool) token.Token {
	start := l.pos
	c := l.peek()

	switch c {
	case ',':
		l.pos++
		return token.Token{Kind: token.Comma, Text: ",", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '(':
		l.pos++
		return token.Token{Kind: token.OpenParen, Text: "(", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case ')':
		l.pos++
		return token.Token{Kind: token.CloseParen, Text: ")", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '{':
		l.pos++
		return token.Token{Kind: token.OpenBrace, Text: "{", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '}':
		l.pos++
		return token.Token{Kind: token.CloseBrace, Text: "}", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '|', '&':
		l.pos++
		return token.Token{Kind: token.Operator, Text: string(c), Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '~':
		// '~' before a number is part of the number literal (spec §4.2);
		// it is only ever seen here as a prefix, so we fold it into the
		// number token.
		return l.lexNumber()
	case '-':
		if expectOperator {
			l.pos++
			return token.Token{Kind: token.Operator, Text: "-", Line: l.line, ByteLow: start, ByteHigh: l.pos}
		}
		return l.lexNumber()
	case '+':
		if expectOperator {
			l.pos++
			return token.Token{Kind: token.Operator, Text: "+", Line: l.line, ByteLow: start, ByteHigh: l.pos}
		}
		// Leading unary '+' is rejected uniformly (spec §9 Open
		// Questions): it is still tokenized as an Invalid token so the
		// parser can report it with a compatibility note.
		l.pos++
		return token.Token{Kind: token.Invalid, Text: "+", Line: l.line, ByteLow: start, ByteHigh: l.pos}
	case '"':
		return l.lexQuotedString(false)
	}

	if c >= '0' && c <= '9' {
		return l.lexNumber()
	}

	if (c == 'L' || c == 'l') && l.peekAt(1) == '"' {
		l.pos++ // consume L
		return l.lexQuotedString(true)
	}

	return l.lexIdentifier()
}

func (l *Lexer) lexNumber() token.Token {
	start := l.pos
	if c := l.peek(); c == '-' || c == '~' {
		l.pos++
	}
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.pos += 2
		for isHexDigit(l.peek()) {
			l.pos++
		}
	} else {
		for isDecimalDigitByte(l.peek()) {
			l.pos++
		}
	}
	if c := l.peek(); c == 'L' || c == 'l' {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	return token.Token{Kind: token.Number, Text: text, Line: l.line, ByteLow: start, ByteHigh: l.pos}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDecimalDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) lexIdentifier() token.Token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isWhitespaceControl(c) || c == '\n' || c == ';' || c == 0x1A ||
			c == ',' || c == '(' || c == ')' || c == '{' || c == '}' ||
			c == '"' || c == '+' || c == '|' || c == '&' || c == '~' {
			break
		}
		if c == '-' && l.pos > start {
			break
		}
		l.pos++
	}
	if l.pos == start {
		// Shouldn't happen in well-formed input; consume one byte to
		// guarantee forward progress and report it as Invalid.
		l.pos++
		return token.Token{Kind: token.Invalid, Text: string(l.src[start:l.pos]), Line: l.line, ByteLow: start, ByteHigh: l.pos}
	}
	text := string(l.src[start:l.pos])
	kind := token.Literal
	if token.EqualFold(text, "BEGIN") {
		return token.Token{Kind: token.OpenBrace, Text: text, Line: l.line, ByteLow: start, ByteHigh: l.pos}
	}
	if token.EqualFold(text, "END") {
		return token.Token{Kind: token.CloseBrace, Text: text, Line: l.line, ByteLow: start, ByteHigh: l.pos}
	}
	return token.Token{Kind: kind, Text: text, Line: l.line, ByteLow: start, ByteHigh: l.pos}
}

// lexQuotedString scans a quoted string literal body, honoring "" as an
// escaped quote and \" as an explicit error (spec §4.2). The literal's Text
// is the raw, still-escaped source content between the quotes; evaluating
// escapes and code-page transcoding is internal/numlit's job, not the
// lexer's.
//
// Multi-line continuation semantics are one of spec's documented Open
// Questions (§9); this implementation takes the conservative reading that
// an unescaped newline before the closing quote is an unterminated-string
// error, which is always safe for well-formed input.
func (l *Lexer) lexQuotedString(wide bool) token.Token {
	start := l.pos
	l.pos++ // opening quote
	bodyStart := l.pos
	for {
		if l.pos >= len(l.src) {
			l.diags.Errorf(diagnostics.ReasonUnterminatedString, l.span(start), "unterminated string literal")
			break
		}
		c := l.src[l.pos]
		if c == 0x1A {
			l.diags.Errorf(diagnostics.ReasonUnterminatedString, l.span(start), "illegal character 0x1A in string literal")
			l.halted = true
			break
		}
		if c == '\n' {
			l.diags.Errorf(diagnostics.ReasonUnterminatedString, l.span(start), "unterminated string literal")
			break
		}
		if c == '"' {
			if l.peekAt(1) == '"' {
				l.pos += 2
				continue
			}
			break
		}
		if c == '\\' {
			l.pos += 2
			continue
		}
		l.pos++
	}
	body := string(l.src[bodyStart:l.pos])
	if l.pos < len(l.src) && l.src[l.pos] == '"' {
		l.pos++ // closing quote
	}
	kind := token.QuotedASCIIString
	if wide {
		kind = token.QuotedWideString
	}
	return token.Token{Kind: kind, Text: body, Line: l.line, ByteLow: start, ByteHigh: l.pos}
}
