package rcemit

import (
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
)

// EvalNumber reduces an expression subtree to a Number (spec §4.4). It is
// a pure reduction with no ambient state, used for ids, dimensions,
// styles, version numbers, string-table ids, and menu option masks.
//
// NOT is legal only directly beneath a BinaryExpression with OpOr (style/
// exstyle fields, per spec §4.2); elsewhere it is evaluated as a plain
// bitwise complement, matching Not's standalone definition.
func EvalNumber(e ast.Expr) (numlit.Number, error) {
	switch n := e.(type) {
	case nil:
		return numlit.Number{}, fmt.Errorf("missing expression")
	case *ast.Literal:
		return numlit.ParseNumberLiteral(n.Tok.Text)
	case *ast.GroupedExpression:
		return EvalNumber(n.Inner)
	case *ast.NotExpression:
		v, err := EvalNumber(n.Operand)
		if err != nil {
			return numlit.Number{}, err
		}
		return numlit.Not(v), nil
	case *ast.BinaryExpression:
		notExpr, ok := n.Left.(*ast.NotExpression)
		sibling := n.Right
		if !ok {
			notExpr, ok = n.Right.(*ast.NotExpression)
			sibling = n.Left
		}
		if ok && n.Op == '|' {
			left, err := EvalNumber(notExpr.Operand)
			if err != nil {
				return numlit.Number{}, err
			}
			right, err := EvalNumber(sibling)
			if err != nil {
				return numlit.Number{}, err
			}
			// "x OR (NOT y)" folds to AND-with-complement against the
			// sibling, per spec §4.2's description of NOT's role inside
			// style/exstyle fields.
			return numlit.Number{Value: right.Value &^ left.Value, IsLong: left.IsLong || right.IsLong}, nil
		}
		left, err := EvalNumber(n.Left)
		if err != nil {
			return numlit.Number{}, err
		}
		right, err := EvalNumber(n.Right)
		if err != nil {
			return numlit.Number{}, err
		}
		return numlit.Eval(numlit.Op(n.Op), left, right), nil
	default:
		return numlit.Number{}, fmt.Errorf("expression is not a number")
	}
}

// MustEvalNumber is a convenience for call sites that have already
// validated e is non-nil and numeric (e.g. defaulted fields); it panics on
// error, which is appropriate only for internally-constructed expressions.
func MustEvalNumber(e ast.Expr) numlit.Number {
	n, err := EvalNumber(e)
	if err != nil {
		panic(err)
	}
	return n
}
