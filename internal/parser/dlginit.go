package parser

import (
	"bytes"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
	"github.com/holocm/rcc/internal/token"
)

// parseDlgInit parses the supplemented "DLGINIT BEGIN id, message, data...
// ... END" grammar (SPEC_FULL §3): each record is a flat comma-separated
// list of "control id, message, <data items>", where data items are raw
// numbers/strings exactly as in an RCDATA body.
func (p *Parser) parseDlgInit(header ast.CommonHeader) (*ast.DlgInit, error) {
	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}
	di := &ast.DlgInit{Header: header}
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return di, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated DLGINIT block")
		}

		id, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectComma(); err != nil {
			return nil, err
		}
		msg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		var data bytes.Buffer
		for p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			it := p.peek(lexer.Normal)
			switch it.Kind {
			case token.QuotedASCIIString:
				tok := p.next(lexer.Normal)
				b, err := numlit.EvalNarrowString(tok.Text, codepage.Default, codepage.Default)
				if err != nil {
					return nil, err
				}
				data.Write(b)
			case token.QuotedWideString:
				tok := p.next(lexer.Normal)
				units, err := numlit.EvalWideString(tok.Text)
				if err != nil {
					return nil, err
				}
				for _, u := range units {
					data.WriteByte(byte(u))
					data.WriteByte(byte(u >> 8))
				}
			default:
				e, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				num, err := evalConstExpr(e)
				if err != nil {
					return nil, err
				}
				resfmt.WriteNumber(&data, num)
			}
		}

		di.Records = append(di.Records, ast.DlgInitRecord{ControlID: id, Message: msg, Data: data.Bytes()})
	}
}

// evalConstExpr reduces a DLGINIT data-item expression, which is never
// attribute-dependent on ambient emitter state (spec's rcemit evaluator
// handles every other numeric field; this one is self-contained literal
// data and safe to fold during parsing).
func evalConstExpr(e ast.Expr) (numlit.Number, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return numlit.ParseNumberLiteral(n.Tok.Text)
	case *ast.GroupedExpression:
		return evalConstExpr(n.Inner)
	case *ast.NotExpression:
		v, err := evalConstExpr(n.Operand)
		if err != nil {
			return numlit.Number{}, err
		}
		return numlit.Not(v), nil
	case *ast.BinaryExpression:
		left, err := evalConstExpr(n.Left)
		if err != nil {
			return numlit.Number{}, err
		}
		right, err := evalConstExpr(n.Right)
		if err != nil {
			return numlit.Number{}, err
		}
		return numlit.Eval(numlit.Op(n.Op), left, right), nil
	default:
		return numlit.Number{}, nil
	}
}
