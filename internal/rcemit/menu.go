package rcemit

import (
	"bytes"
	"encoding/binary"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/resfmt"
)

const (
	menuFlagGrayed    uint16 = 0x0001
	menuFlagInactive  uint16 = 0x0002
	menuFlagBitmap    uint16 = 0x0004
	menuFlagOwnerDraw uint16 = 0x0100
	menuFlagChecked   uint16 = 0x0008
	menuFlagPopup     uint16 = 0x0010
	menuFlagMenuBarBreak uint16 = 0x0020
	menuFlagMenuBreak uint16 = 0x0040
	menuFlagEnd       uint16 = 0x0080
	menuFlagHelp      uint16 = 0x4000
)

// emitMenu implements spec §4.5's classic MENU and extended MENUEX binary
// layouts: a 4-byte header (version/headerSize, both zero for the forms
// rcc emits) followed by a recursive item tree.
func emitMenu(out *bytes.Buffer, n *ast.Menu, ctx *Context, defaults Defaults) error {
	var data bytes.Buffer
	binary.Write(&data, binary.LittleEndian, uint16(0)) // version
	binary.Write(&data, binary.LittleEndian, uint16(4)) // header_size (MENUEX) / reserved (MENU)

	kind := KindMenu
	if n.IsEx {
		kind = KindMenuEx
		if err := writeMenuExItems(&data, n.Items); err != nil {
			return err
		}
	} else {
		if err := writeMenuItems(&data, n.Items); err != nil {
			return err
		}
	}

	return writeSimpleResourceFor(out, &n.Header, kind, ctx, defaults, data.Bytes())
}

// writeMenuItems encodes the classic MENU item tree (spec §4.5): each
// entry is a flags word, an id word for non-popups, then a NUL-terminated
// UTF-16 title; the last sibling at each level gets MF_END set.
func writeMenuItems(buf *bytes.Buffer, items []ast.MenuItem) error {
	for i, item := range items {
		flags := item.Flags
		if item.IsPopup {
			flags |= menuFlagPopup
		}
		if i == len(items)-1 {
			flags |= menuFlagEnd
		}
		binary.Write(buf, binary.LittleEndian, flags)
		if !item.IsPopup {
			id, err := optionalUint16(item.ID)
			if err != nil {
				return err
			}
			binary.Write(buf, binary.LittleEndian, id)
		}
		writeUTF16String(buf, item.Text)
		if item.IsPopup {
			if err := writeMenuItems(buf, item.Items); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeMenuExItems encodes the MENUEX item tree (spec §4.5): each entry is
// type/state/id/flags words (flags holding the resinfo byte plus the
// popup/last-item bits), a NUL-terminated title, and -- for popups -- a
// nested 4-byte-aligned item list preceded by a help_id.
func writeMenuExItems(buf *bytes.Buffer, items []ast.MenuItem) error {
	for i, item := range items {
		typeVal, err := optionalUint32(item.Type)
		if err != nil {
			return err
		}
		state, err := optionalUint32(item.State)
		if err != nil {
			return err
		}
		id, err := optionalUint32(item.IDEx)
		if err != nil {
			return err
		}
		var resInfo uint16
		if item.IsPopup {
			resInfo |= 0x01
		}
		if i == len(items)-1 {
			resInfo |= 0x80
		}

		binary.Write(buf, binary.LittleEndian, typeVal)
		binary.Write(buf, binary.LittleEndian, state)
		binary.Write(buf, binary.LittleEndian, id)
		binary.Write(buf, binary.LittleEndian, resInfo)
		writeUTF16String(buf, item.Text)
		resfmt.PadTo4(buf)

		if item.IsPopup {
			helpID, err := optionalUint32(item.HelpID)
			if err != nil {
				return err
			}
			binary.Write(buf, binary.LittleEndian, helpID)
			if err := writeMenuExItems(buf, item.Items); err != nil {
				return err
			}
		}
	}
	return nil
}
