package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// parseToolbar parses the supplemented "TOOLBAR width, height BEGIN
// BUTTON id | SEPARATOR ... END" grammar (SPEC_FULL §3).
func (p *Parser) parseToolbar(header ast.CommonHeader) (*ast.Toolbar, error) {
	dims, err := p.parseCommaSeparatedExprs(2, 2)
	if err != nil {
		return nil, err
	}
	tb := &ast.Toolbar{Header: header, Width: dims[0], Height: dims[1]}

	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return tb, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated TOOLBAR block")
		}
		kw := p.next(lexer.WhitespaceDelimiterOnly)
		switch {
		case kw.Is("SEPARATOR"):
			tb.Buttons = append(tb.Buttons, ast.ToolbarButton{IsSeparator: true})
		case kw.Is("BUTTON"):
			id, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			tb.Buttons = append(tb.Buttons, ast.ToolbarButton{ID: id})
		default:
			return nil, p.errorf(kw, "expected BUTTON or SEPARATOR")
		}
	}
}
