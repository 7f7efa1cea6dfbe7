package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// parseAccelerators parses "ACCELERATORS [attrs] [LANGUAGE] BEGIN event,
// id [, ASCII|VIRTKEY] [, NOINVERT] [, ALT] [, SHIFT] [, CONTROL] ... END"
// (spec §4.5).
func (p *Parser) parseAccelerators(header ast.CommonHeader) (*ast.Accelerators, error) {
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

	acc := &ast.Accelerators{Header: header}
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return acc, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated ACCELERATORS block")
		}

		entry := ast.AcceleratorEntry{}
		eventTok := p.next(lexer.Normal)
		if eventTok.Kind == token.QuotedASCIIString || eventTok.Kind == token.QuotedWideString {
			entry.EventString = &eventTok
		} else {
			e, err := p.parseExprFromToken(eventTok)
			if err != nil {
				return nil, err
			}
			entry.EventNumber = &e
		}

		if _, err := p.expectComma(); err != nil {
			return nil, err
		}
		id, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		entry.ID = id

		for p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			opt := p.next(lexer.Normal)
			switch {
			case opt.Is("ASCII"):
				entry.ASCII = true
			case opt.Is("VIRTKEY"):
				entry.VirtKey = true
			case opt.Is("NOINVERT"):
				entry.NoInvert = true
			case opt.Is("ALT"):
				entry.Alt = true
			case opt.Is("SHIFT"):
				entry.Shift = true
			case opt.Is("CONTROL"):
				entry.Control = true
			default:
				return nil, p.errorf(opt, "unrecognized accelerator option %q", opt.Text)
			}
		}
		acc.Entries = append(acc.Entries, entry)
	}
}

// parseExprFromToken builds an expression starting from an already-
// consumed primary token (used where the calling context had to peek the
// token's kind before deciding how to interpret it).
func (p *Parser) parseExprFromToken(t token.Token) (ast.Expr, error) {
	left := ast.Expr(&ast.Literal{Tok: t})
	for {
		opTok := p.peek(lexer.NormalExpectOperator)
		if opTok.Kind != token.Operator {
			return left, nil
		}
		p.next(lexer.NormalExpectOperator)
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Op: opTok.Text[0], Right: right}
	}
}
