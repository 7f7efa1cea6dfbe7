/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package parser implements the recursive-descent grammar described in
// spec §4.3: top-level dispatch on an identifier-led statement, per-
// resource-kind body grammars, and the handful of quirks the reference
// compiler is known to tolerate (a dangling identifier at EOF, the
// DIALOGEX CLASS/MENU ordinal-scan case).
package parser

import (
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// Limits from spec §6: nesting ceilings enforced while parsing, not while
// emitting, so a deeply nested source produces a diagnostic instead of a
// stack overflow.
const (
	maxMenuDepth        = 512
	maxVersionInfoDepth = 512
	maxParenDepth       = 200
)

// Parser is a value-type lexer plus the diagnostics sink it was built
// with. Because lexer.Lexer is itself a value type, Parser can snapshot
// and restore its embedded lexer directly for one-token lookahead (spec
// §9).
type Parser struct {
	lex      lexer.Lexer
	diags    *diagnostics.Collector
	tolerant bool
}

// New builds a Parser over an already-constructed Lexer value.
func New(lex lexer.Lexer, diags *diagnostics.Collector, tolerant bool) *Parser {
	return &Parser{lex: lex, diags: diags, tolerant: tolerant}
}

func (p *Parser) peek(mode lexer.Mode) token.Token {
	snap := p.lex.Snapshot()
	t := p.lex.Next(mode)
	p.lex.Restore(snap)
	return t
}

func (p *Parser) next(mode lexer.Mode) token.Token {
	return p.lex.Next(mode)
}

func (p *Parser) errorf(t token.Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	p.diags.Errorf(diagnostics.ReasonExpectedToken, diagnostics.Span{Line: t.Line, ByteLow: t.ByteLow, ByteHigh: t.ByteHigh}, "%s", msg)
	return fmt.Errorf("%s (line %d)", msg, t.Line)
}

// expectKeyword consumes a whitespace-delimited literal token matching s
// case-insensitively, or reports an error.
func (p *Parser) expectKeyword(s string) (token.Token, error) {
	t := p.next(lexer.WhitespaceDelimiterOnly)
	if !t.Is(s) {
		return t, p.errorf(t, "expected %q, got %q", s, t.Text)
	}
	return t, nil
}

func (p *Parser) peekKeyword(s string) bool {
	return p.peek(lexer.WhitespaceDelimiterOnly).Is(s)
}

// ParseRoot parses an entire compilation unit: a sequence of top-level
// statements (spec §4.3).
func (p *Parser) ParseRoot() (*ast.Root, error) {
	root := &ast.Root{}
	for {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		if t.Kind == token.EOF {
			root.Last = t
			break
		}
		node, err := p.parseTopLevelStatement()
		if err != nil {
			return root, err
		}
		if node != nil {
			root.Body = append(root.Body, node)
		}
	}
	return root, nil
}

// parseTopLevelStatement dispatches on the leading identifier: LANGUAGE,
// VERSION, and CHARACTERISTICS at top level set the defaults threaded
// through Emit; anything else is "<id> <type> ..." resource statement
// (spec §4.3).
func (p *Parser) parseTopLevelStatement() (ast.Node, error) {
	lead := p.peek(lexer.WhitespaceDelimiterOnly)

	switch {
	case lead.Is("LANGUAGE"):
		return p.parseLanguageStmt()
	case lead.Is("VERSION"):
		p.next(lexer.WhitespaceDelimiterOnly)
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.VersionStmt{Value: v}, nil
	case lead.Is("CHARACTERISTICS"):
		p.next(lexer.WhitespaceDelimiterOnly)
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.CharacteristicsStmt{Value: v}, nil
	case lead.Is("STRINGTABLE"):
		return p.parseStringTable()
	}

	return p.parseResourceStatement()
}

func (p *Parser) parseLanguageStmt() (*ast.LanguageStmt, error) {
	p.next(lexer.WhitespaceDelimiterOnly)
	primary, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectComma(); err != nil {
		return nil, err
	}
	sub, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LanguageStmt{Primary: primary, Sublanguage: sub}, nil
}

func (p *Parser) expectComma() (token.Token, error) {
	t := p.next(lexer.Normal)
	if t.Kind != token.Comma {
		return t, p.errorf(t, "expected ','")
	}
	return t, nil
}

// parseResourceStatement parses the common "<id> <type> [attrs] <body>"
// shape and dispatches the body grammar by resolved keyword (spec §4.3,
// §4.5).
func (p *Parser) parseResourceStatement() (ast.Node, error) {
	idTok := p.next(lexer.WhitespaceDelimiterOnly)
	if idTok.Kind == token.EOF {
		return nil, nil
	}
	if idTok.Kind == token.Invalid {
		// Tolerated dangling content at EOF (spec §4.3): collect what's
		// left and surface it as an Invalid node instead of erroring.
		return &ast.Invalid{ContextTokens: []token.Token{idTok}}, nil
	}

	typeTok := p.next(lexer.WhitespaceDelimiterOnly)
	if typeTok.Kind == token.EOF {
		// A lone dangling identifier with nothing following it (spec
		// §4.3's documented EOF-tolerance case).
		return &ast.Invalid{ContextTokens: []token.Token{idTok}}, nil
	}

	id := ast.ResourceID{Token: idTok}
	header := ast.CommonHeader{ID: id, Type: typeTok}

	upper := token.EqualFold
	switch {
	case upper(typeTok.Text, "ACCELERATORS"):
		return p.parseAccelerators(header)
	case upper(typeTok.Text, "DIALOG"):
		return p.parseDialog(header, false)
	case upper(typeTok.Text, "DIALOGEX"):
		return p.parseDialog(header, true)
	case upper(typeTok.Text, "MENU"):
		return p.parseMenu(header, false)
	case upper(typeTok.Text, "MENUEX"):
		return p.parseMenu(header, true)
	case upper(typeTok.Text, "VERSIONINFO"):
		return p.parseVersionInfo(header)
	case upper(typeTok.Text, "DLGINCLUDE"):
		return p.parseDlgInclude(header)
	case upper(typeTok.Text, "TOOLBAR"):
		return p.parseToolbar(header)
	case upper(typeTok.Text, "DLGINIT"):
		return p.parseDlgInit(header)
	}

	return p.parseAttributesThenBody(header)
}

// parseAttributesThenBody consumes common-attribute keywords, then an
// optional LANGUAGE/resource-local override, then dispatches to either the
// raw-data { ... } form or the "just a filename" external-file form (spec
// §4.5, §4.6).
func (p *Parser) parseAttributesThenBody(header ast.CommonHeader) (ast.Node, error) {
	header.Attrs = p.parseAttributes()

	if p.peekKeyword("LANGUAGE") {
		lang, err := p.parseLanguageStmt()
		if err != nil {
			return nil, err
		}
		header.Language = lang
	}

	next := p.peek(lexer.Normal)
	if next.Kind == token.OpenBrace {
		p.next(lexer.Normal)
		items, err := p.parseRawDataItems()
		if err != nil {
			return nil, err
		}
		return &ast.ResourceRawData{Header: header, Items: items}, nil
	}

	filename, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ResourceExternal{Header: header, Filename: filename}, nil
}

// parseAttributes consumes zero or more memory-flag keywords appearing
// between the type keyword and the body (spec §3).
func (p *Parser) parseAttributes() ast.Attributes {
	var a ast.Attributes
	for {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		switch {
		case t.Is("PRELOAD"):
			a.Preload = true
		case t.Is("LOADONCALL"):
			a.LoadOnCall = true
		case t.Is("MOVEABLE"), t.Is("MOVABLE"):
			a.Moveable = true
		case t.Is("FIXED"):
			a.Fixed = true
		case t.Is("SHARED"):
			a.Shared = true
		case t.Is("NONSHARED"):
			a.NonShared = true
		case t.Is("PURE"):
			a.Pure = true
		case t.Is("IMPURE"):
			a.Impure = true
		case t.Is("DISCARDABLE"):
			a.Discardable = true
		default:
			return a
		}
		p.next(lexer.WhitespaceDelimiterOnly)
	}
}

func (p *Parser) parseRawDataItems() ([]ast.RawDataItem, error) {
	var items []ast.RawDataItem
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return items, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated raw data block")
		}
		switch t.Kind {
		case token.QuotedASCIIString:
			tok := p.next(lexer.Normal)
			items = append(items, ast.RawDataItem{Narrow: &tok})
		case token.QuotedWideString:
			tok := p.next(lexer.Normal)
			items = append(items, ast.RawDataItem{Wide: &tok})
		default:
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, ast.RawDataItem{Number: &e})
		}
		if p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
		}
	}
}

// parseExpr parses a left-associative "+ - | &" expression chain with
// NOT-prefix and parenthesized grouping (spec §4.2, §4.4). Primaries are
// numbers, identifier-like literals or quoted strings, each reduced to a
// Literal.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek(lexer.NormalExpectOperator)
		if t.Kind != token.Operator {
			return left, nil
		}
		p.next(lexer.NormalExpectOperator)
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Op: t.Text[0], Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	t := p.peek(lexer.Normal)
	if t.Is("NOT") {
		p.next(lexer.Normal)
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.NotExpression{Operand: operand}, nil
	}
	if t.Kind == token.OpenParen {
		p.next(lexer.Normal)
		inner, err := p.parseExprWithDepth(1)
		if err != nil {
			return nil, err
		}
		closeTok := p.next(lexer.Normal)
		if closeTok.Kind != token.CloseParen {
			return nil, p.errorf(closeTok, "expected ')'")
		}
		return &ast.GroupedExpression{Inner: inner}, nil
	}
	return p.parsePrimary()
}

// parseExprWithDepth tracks parenthesis nesting against the spec's
// 200-level limit.
func (p *Parser) parseExprWithDepth(depth int) (ast.Expr, error) {
	if depth > maxParenDepth {
		t := p.peek(lexer.Normal)
		return nil, p.errorf(t, "expression nesting exceeds the limit of %d parentheses", maxParenDepth)
	}
	left, err := p.parseUnaryWithDepth(depth)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek(lexer.NormalExpectOperator)
		if t.Kind != token.Operator {
			return left, nil
		}
		p.next(lexer.NormalExpectOperator)
		right, err := p.parseUnaryWithDepth(depth)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Op: t.Text[0], Right: right}
	}
}

func (p *Parser) parseUnaryWithDepth(depth int) (ast.Expr, error) {
	t := p.peek(lexer.Normal)
	if t.Is("NOT") {
		p.next(lexer.Normal)
		operand, err := p.parseUnaryWithDepth(depth)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpression{Operand: operand}, nil
	}
	if t.Kind == token.OpenParen {
		p.next(lexer.Normal)
		inner, err := p.parseExprWithDepth(depth + 1)
		if err != nil {
			return nil, err
		}
		closeTok := p.next(lexer.Normal)
		if closeTok.Kind != token.CloseParen {
			return nil, p.errorf(closeTok, "expected ')'")
		}
		return &ast.GroupedExpression{Inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.next(lexer.Normal)
	switch t.Kind {
	case token.Number, token.Literal, token.QuotedASCIIString, token.QuotedWideString:
		return &ast.Literal{Tok: t}, nil
	default:
		return nil, p.errorf(t, "expected a number or string literal")
	}
}

// parseCommaSeparatedExprs reads a comma-separated expression list until a
// token that cannot start another expression is seen; used for dialog
// control coordinate lists and similar fixed-arity-but-tail-optional forms.
func (p *Parser) parseCommaSeparatedExprs(min, max int) ([]ast.Expr, error) {
	var out []ast.Expr
	for len(out) < max {
		if len(out) > 0 {
			if p.peek(lexer.Normal).Kind != token.Comma {
				break
			}
			p.next(lexer.Normal)
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if len(out) < min {
		t := p.peek(lexer.Normal)
		return nil, p.errorf(t, "expected at least %d values, got %d", min, len(out))
	}
	return out, nil
}
