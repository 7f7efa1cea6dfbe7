package rcemit

import (
	"bytes"
	"encoding/binary"

	"github.com/holocm/rcc/internal/ast"
)

// emitToolbar implements the supplemented TOOLBAR resource (SPEC_FULL §3):
// a version/button-size header followed by one u16 id per button, with
// SEPARATOR entries written as id 0.
func emitToolbar(out *bytes.Buffer, n *ast.Toolbar, ctx *Context, defaults Defaults) error {
	width, err := optionalUint16(n.Width)
	if err != nil {
		return err
	}
	height, err := optionalUint16(n.Height)
	if err != nil {
		return err
	}

	var data bytes.Buffer
	binary.Write(&data, binary.LittleEndian, uint16(1)) // version
	binary.Write(&data, binary.LittleEndian, width)
	binary.Write(&data, binary.LittleEndian, height)
	binary.Write(&data, binary.LittleEndian, uint16(len(n.Buttons)))

	for _, b := range n.Buttons {
		if b.IsSeparator {
			binary.Write(&data, binary.LittleEndian, uint16(0))
			continue
		}
		id, err := EvalNumber(b.ID)
		if err != nil {
			return err
		}
		binary.Write(&data, binary.LittleEndian, uint16(id.Value))
	}

	return writeSimpleResourceFor(out, &n.Header, KindToolbar, ctx, defaults, data.Bytes())
}
