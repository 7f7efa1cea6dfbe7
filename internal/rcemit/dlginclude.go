package rcemit

import (
	"bytes"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
)

// emitDlgInclude implements spec §4.5's DLGINCLUDE resource: a single
// NUL-terminated narrow string naming the header associated with a
// dialog's symbolic control ids.
func emitDlgInclude(out *bytes.Buffer, n *ast.DlgInclude, ctx *Context, defaults Defaults) error {
	line := ctx.CP.AtLine(n.Filename.Line)
	body, err := numlit.EvalNarrowString(n.Filename.Text, line.Input, line.Output)
	if err != nil {
		return err
	}
	body = append(body, 0)
	return writeSimpleResourceFor(out, &n.Header, KindDlgInclude, ctx, defaults, body)
}
