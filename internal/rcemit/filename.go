package rcemit

import (
	"strings"

	"github.com/holocm/rcc/internal/ast"
)

// FilenameOf reduces a filename expression to its string spelling without
// evaluating it, per spec §4.6: operator characters in an expression-form
// filename are kept verbatim (e.g. "a" "-" "b" stays "a-b", not a
// subtraction).
func FilenameOf(e ast.Expr) string {
	var b strings.Builder
	writeFilenameExpr(&b, e)
	return b.String()
}

func writeFilenameExpr(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		b.WriteString(n.Tok.Text)
	case *ast.GroupedExpression:
		writeFilenameExpr(b, n.Inner)
	case *ast.NotExpression:
		b.WriteString("NOT ")
		writeFilenameExpr(b, n.Operand)
	case *ast.BinaryExpression:
		writeFilenameExpr(b, n.Left)
		b.WriteByte(n.Op)
		writeFilenameExpr(b, n.Right)
	}
}
