package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
)

// parseDlgInclude parses "DLGINCLUDE "header.h"" (spec §4.5).
func (p *Parser) parseDlgInclude(header ast.CommonHeader) (*ast.DlgInclude, error) {
	t := p.next(lexer.Normal)
	return &ast.DlgInclude{Header: header, Filename: t}, nil
}
