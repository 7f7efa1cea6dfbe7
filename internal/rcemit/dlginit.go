package rcemit

import (
	"bytes"
	"encoding/binary"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/resfmt"
)

// emitDlgInit implements the supplemented DLGINIT resource (SPEC_FULL §3):
// a sequence of per-control initialization records -- control id, message,
// byte length, then the raw payload bytes padded to a 4-byte boundary --
// followed by a terminating record with control id 0xFFFF, as consumed by
// dialog controls (e.g. combo/list boxes) during WM_INITDIALOG.
func emitDlgInit(out *bytes.Buffer, n *ast.DlgInit, ctx *Context, defaults Defaults) error {
	var data bytes.Buffer
	for _, rec := range n.Records {
		id, err := EvalNumber(rec.ControlID)
		if err != nil {
			return err
		}
		msg, err := EvalNumber(rec.Message)
		if err != nil {
			return err
		}
		binary.Write(&data, binary.LittleEndian, uint16(id.Value))
		binary.Write(&data, binary.LittleEndian, uint16(msg.Value))
		binary.Write(&data, binary.LittleEndian, uint32(len(rec.Data)))
		data.Write(rec.Data)
		resfmt.PadTo4(&data)
	}
	binary.Write(&data, binary.LittleEndian, uint16(0xFFFF)) // terminator control id
	binary.Write(&data, binary.LittleEndian, uint16(0))
	binary.Write(&data, binary.LittleEndian, uint32(0))

	return writeSimpleResourceFor(out, &n.Header, KindDlgInit, ctx, defaults, data.Bytes())
}
