package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// parseVersionInfo parses "VERSIONINFO <fixed fields> BEGIN <blocks> END"
// (spec §4.5/§6).
func (p *Parser) parseVersionInfo(header ast.CommonHeader) (*ast.VersionInfo, error) {
	vi := &ast.VersionInfo{Header: header}

	for {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		switch {
		case t.Is("FILEVERSION"):
			p.next(lexer.WhitespaceDelimiterOnly)
			quad, err := p.parseCommaSeparatedExprs(4, 4)
			if err != nil {
				return nil, err
			}
			copy(vi.FileVersion[:], quad)
		case t.Is("PRODUCTVERSION"):
			p.next(lexer.WhitespaceDelimiterOnly)
			quad, err := p.parseCommaSeparatedExprs(4, 4)
			if err != nil {
				return nil, err
			}
			copy(vi.ProductVersion[:], quad)
		case t.Is("FILEFLAGSMASK"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vi.FileFlagsMask = e
		case t.Is("FILEFLAGS"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vi.FileFlags = e
		case t.Is("FILEOS"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vi.FileOS = e
		case t.Is("FILETYPE"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vi.FileType = e
		case t.Is("FILESUBTYPE"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vi.FileSubtype = e
		default:
			goto body
		}
	}
body:
	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}
	_, children, err := p.parseVersionInfoBody(1)
	if err != nil {
		return nil, err
	}
	vi.Blocks = children
	return vi, nil
}

// parseVersionInfoBody parses the statements inside one BEGIN...END level
// of a VERSIONINFO tree: VALUE entries become this level's Values, BLOCK
// entries become nested Children (spec §4.5).
func (p *Parser) parseVersionInfoBody(depth int) ([]ast.VersionInfoValue, []ast.VersionInfoBlock, error) {
	if depth > maxVersionInfoDepth {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		return nil, nil, p.errorf(t, "VERSIONINFO nesting exceeds the limit of %d levels", maxVersionInfoDepth)
	}
	var values []ast.VersionInfoValue
	var children []ast.VersionInfoBlock
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return values, children, nil
		}
		if t.Kind == token.EOF {
			return nil, nil, p.errorf(t, "unterminated VERSIONINFO block")
		}
		switch {
		case t.Is("BLOCK"):
			p.next(lexer.WhitespaceDelimiterOnly)
			name, err := p.parseQuotedText()
			if err != nil {
				return nil, nil, err
			}
			open := p.next(lexer.Normal)
			if open.Kind != token.OpenBrace {
				return nil, nil, p.errorf(open, "expected BEGIN after BLOCK name")
			}
			childValues, grandchildren, err := p.parseVersionInfoBody(depth + 1)
			if err != nil {
				return nil, nil, err
			}
			children = append(children, ast.VersionInfoBlock{Name: name, Values: childValues, Children: grandchildren})
		case t.Is("VALUE"):
			p.next(lexer.WhitespaceDelimiterOnly)
			key, err := p.parseQuotedText()
			if err != nil {
				return nil, nil, err
			}
			var items []ast.RawDataItem
			for p.peek(lexer.Normal).Kind == token.Comma {
				p.next(lexer.Normal)
				vt := p.peek(lexer.Normal)
				switch vt.Kind {
				case token.QuotedASCIIString:
					tok := p.next(lexer.Normal)
					items = append(items, ast.RawDataItem{Narrow: &tok})
				case token.QuotedWideString:
					tok := p.next(lexer.Normal)
					items = append(items, ast.RawDataItem{Wide: &tok})
				default:
					e, err := p.parseExpr()
					if err != nil {
						return nil, nil, err
					}
					items = append(items, ast.RawDataItem{Number: &e})
				}
			}
			values = append(values, ast.VersionInfoValue{Key: key, Items: items})
		default:
			return nil, nil, p.errorf(t, "expected BLOCK or VALUE")
		}
	}
}
