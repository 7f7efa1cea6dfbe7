package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// parseStringTable parses "STRINGTABLE [attrs] [LANGUAGE p,s] BEGIN id,
// "text" ... END" (spec §4.5). Unlike every other resource statement, it
// has no leading id.
func (p *Parser) parseStringTable() (*ast.StringTable, error) {
	p.next(lexer.WhitespaceDelimiterOnly) // consume "STRINGTABLE"
	st := &ast.StringTable{Attrs: p.parseAttributes()}

	if p.peekKeyword("LANGUAGE") {
		lang, err := p.parseLanguageStmt()
		if err != nil {
			return nil, err
		}
		st.Language = lang
	}

	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}

	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return st, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated STRINGTABLE block")
		}
		id, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectComma(); err != nil {
			return nil, err
		}
		text := p.next(lexer.Normal)
		if text.Kind != token.QuotedASCIIString && text.Kind != token.QuotedWideString {
			return nil, p.errorf(text, "expected a quoted string")
		}
		st.Entries = append(st.Entries, ast.StringTableEntry{ID: id, Text: text})
	}
}
