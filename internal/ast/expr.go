package ast

import "github.com/holocm/rcc/internal/token"

// Expr is the interface implemented by expression nodes. Expressions form
// the number-expression subtree evaluated by internal/rcemit's expression
// evaluator (spec §4.4).
type Expr interface {
	Node
	exprNode()
}

// Literal wraps a single Number or quoted-string token used where an
// expression is expected (ids, dimensions, styles, ...).
type Literal struct {
	Span
	Tok token.Token
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// BinaryExpression is a left-associative "+ - | &" expression.
type BinaryExpression struct {
	Span
	Left  Expr
	Op    byte // one of + - | &
	Right Expr
}

func (*BinaryExpression) node()     {}
func (*BinaryExpression) exprNode() {}

// GroupedExpression is a parenthesized sub-expression.
type GroupedExpression struct {
	Span
	Inner Expr
}

func (*GroupedExpression) node()     {}
func (*GroupedExpression) exprNode() {}

// NotExpression is "NOT N", legal only inside style/exstyle fields (spec
// §4.2).
type NotExpression struct {
	Span
	Operand Expr
}

func (*NotExpression) node()     {}
func (*NotExpression) exprNode() {}
