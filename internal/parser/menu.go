package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// parseMenu parses "MENU|MENUEX [attrs] [LANGUAGE] BEGIN ... END" (spec
// §4.5), dispatching each body line to the classic or extended item
// grammar depending on isEx.
func (p *Parser) parseMenu(header ast.CommonHeader, isEx bool) (*ast.Menu, error) {
	header.Attrs = p.parseAttributes()
	if p.peekKeyword("LANGUAGE") {
		lang, err := p.parseLanguageStmt()
		if err != nil {
			return nil, err
		}
		header.Language = lang
	}

	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}

	items, err := p.parseMenuItemList(isEx, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		p.diags.Warnf(diagnostics.ReasonEmptyMenu, diagnostics.Span{Line: open.Line, ByteLow: open.ByteLow, ByteHigh: open.ByteHigh}, "menu has no items")
	}
	return &ast.Menu{Header: header, IsEx: isEx, Items: items}, nil
}

func (p *Parser) parseMenuItemList(isEx bool, depth int) ([]ast.MenuItem, error) {
	if depth > maxMenuDepth {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		return nil, p.errorf(t, "menu nesting exceeds the limit of %d levels", maxMenuDepth)
	}
	var items []ast.MenuItem
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return items, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated menu block")
		}
		item, err := p.parseMenuItem(isEx, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *Parser) parseMenuItem(isEx bool, depth int) (ast.MenuItem, error) {
	kw := p.next(lexer.WhitespaceDelimiterOnly)
	switch {
	case kw.Is("POPUP"):
		return p.parsePopupItem(isEx, depth)
	case kw.Is("MENUITEM"):
		return p.parseMenuLeafItem(isEx)
	default:
		return ast.MenuItem{}, p.errorf(kw, "expected MENUITEM or POPUP")
	}
}

func (p *Parser) parsePopupItem(isEx bool, depth int) (ast.MenuItem, error) {
	text, err := p.parseQuotedText()
	if err != nil {
		return ast.MenuItem{}, err
	}
	item := ast.MenuItem{Text: text, IsPopup: true}

	if isEx {
		for p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			e, err := p.parseExpr()
			if err != nil {
				return ast.MenuItem{}, err
			}
			if item.IDEx == nil {
				item.IDEx = e
			} else if item.Type == nil {
				item.Type = e
			} else if item.State == nil {
				item.State = e
			} else {
				item.HelpID = e
			}
		}
	} else {
		for {
			t := p.peek(lexer.WhitespaceDelimiterOnly)
			flag, ok := menuFlagKeyword(t)
			if !ok {
				break
			}
			p.next(lexer.WhitespaceDelimiterOnly)
			item.Flags |= flag
		}
	}

	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return ast.MenuItem{}, p.errorf(open, "expected BEGIN after POPUP")
	}
	children, err := p.parseMenuItemList(isEx, depth+1)
	if err != nil {
		return ast.MenuItem{}, err
	}
	item.Items = children
	return item, nil
}

func (p *Parser) parseMenuLeafItem(isEx bool) (ast.MenuItem, error) {
	t := p.peek(lexer.WhitespaceDelimiterOnly)
	if t.Is("SEPARATOR") {
		p.next(lexer.WhitespaceDelimiterOnly)
		return ast.MenuItem{IsSeparator: true}, nil
	}

	text, err := p.parseQuotedText()
	if err != nil {
		return ast.MenuItem{}, err
	}
	item := ast.MenuItem{Text: text}

	if p.peek(lexer.Normal).Kind != token.Comma {
		return item, nil
	}
	p.next(lexer.Normal)

	if isEx {
		id, err := p.parseExpr()
		if err != nil {
			return ast.MenuItem{}, err
		}
		item.IDEx = id
		for p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			e, err := p.parseExpr()
			if err != nil {
				return ast.MenuItem{}, err
			}
			if item.Type == nil {
				item.Type = e
			} else {
				item.State = e
			}
		}
		return item, nil
	}

	id, err := p.parseExpr()
	if err != nil {
		return ast.MenuItem{}, err
	}
	item.ID = id
	for {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		if t.Kind != token.Comma && t.Kind != token.Literal {
			break
		}
		if t.Kind == token.Comma {
			p.next(lexer.Normal)
			continue
		}
		flag, ok := menuFlagKeyword(t)
		if !ok {
			break
		}
		p.next(lexer.WhitespaceDelimiterOnly)
		item.Flags |= flag
	}
	return item, nil
}

// parseQuotedText reads a quoted string primary and returns its raw
// (still-escaped) text. No escape or code-page decoding happens here, and
// the menu emitter writes this text as it is.
func (p *Parser) parseQuotedText() (string, error) {
	t := p.next(lexer.Normal)
	if t.Kind != token.QuotedASCIIString && t.Kind != token.QuotedWideString {
		return "", p.errorf(t, "expected a quoted string")
	}
	return t.Text, nil
}

func menuFlagKeyword(t token.Token) (uint16, bool) {
	switch {
	case t.Is("CHECKED"):
		return 0x0008, true
	case t.Is("GRAYED"):
		return 0x0001, true
	case t.Is("HELP"):
		return 0x4000, true
	case t.Is("INACTIVE"):
		return 0x0002, true
	case t.Is("MENUBARBREAK"):
		return 0x0020, true
	case t.Is("MENUBREAK"):
		return 0x0040, true
	default:
		return 0, false
	}
}
