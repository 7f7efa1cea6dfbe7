package rcemit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
)

// maxDialogControls is the 65,535-control ceiling from spec §6 (cDlgItems
// is a single u16 field in both the classic and extended templates).
const maxDialogControls = 65535

// emitDialog implements spec §4.5/§6's DIALOG and DIALOGEX binary layouts:
// a fixed-size header, optional menu/class/title sz_Or_Ord fields, an
// optional DS_SETFONT typeface, followed by one DWORD-aligned
// DLGITEMTEMPLATE(EX) per control.
func emitDialog(out *bytes.Buffer, n *ast.Dialog, ctx *Context, defaults Defaults) error {
	if len(n.Controls) > maxDialogControls {
		return fmt.Errorf("dialog has %d controls, exceeding the limit of %d", len(n.Controls), maxDialogControls)
	}

	style, err := styleWithSetFont(n.Style, n.HasFont)
	if err != nil {
		return err
	}
	exStyle, err := optionalUint32(n.ExStyle)
	if err != nil {
		return err
	}
	x, err := optionalUint16(n.X)
	if err != nil {
		return err
	}
	y, err := optionalUint16(n.Y)
	if err != nil {
		return err
	}
	w, err := optionalUint16(n.W)
	if err != nil {
		return err
	}
	h, err := optionalUint16(n.H)
	if err != nil {
		return err
	}

	var data bytes.Buffer
	if n.IsEx {
		helpID, err := optionalUint32(n.HelpID)
		if err != nil {
			return err
		}
		binary.Write(&data, binary.LittleEndian, uint16(1))      // dlgVer
		binary.Write(&data, binary.LittleEndian, uint16(0xFFFF)) // signature
		binary.Write(&data, binary.LittleEndian, helpID)
		binary.Write(&data, binary.LittleEndian, exStyle)
		binary.Write(&data, binary.LittleEndian, style)
	} else {
		binary.Write(&data, binary.LittleEndian, style)
		binary.Write(&data, binary.LittleEndian, exStyle)
	}
	binary.Write(&data, binary.LittleEndian, uint16(len(n.Controls)))
	binary.Write(&data, binary.LittleEndian, x)
	binary.Write(&data, binary.LittleEndian, y)
	binary.Write(&data, binary.LittleEndian, w)
	binary.Write(&data, binary.LittleEndian, h)

	if err := writeMenuOrClassField(&data, n.MenuVal); err != nil {
		return err
	}
	if err := writeMenuOrClassField(&data, n.ClassVal); err != nil {
		return err
	}
	writeUTF16String(&data, dialogCaption(n))

	if n.HasFont {
		size, err := optionalUint16(n.FontSize)
		if err != nil {
			return err
		}
		binary.Write(&data, binary.LittleEndian, size)
		if n.IsEx {
			weight, err := optionalUint16(n.FontWeight)
			if err != nil {
				return err
			}
			binary.Write(&data, binary.LittleEndian, weight)
			italic := byte(0)
			if n.FontItalic {
				italic = 1
			}
			data.WriteByte(italic)
			charset, err := optionalUint16(n.FontCharset)
			if err != nil {
				return err
			}
			data.WriteByte(byte(charset))
		}
		writeUTF16String(&data, n.FontName)
	}

	for _, c := range n.Controls {
		resfmt.PadTo4(&data)
		if err := writeDialogControl(&data, c, n.IsEx); err != nil {
			return err
		}
	}

	return writeSimpleResourceFor(out, &n.Header, headerKindFor(n.IsEx), ctx, defaults, data.Bytes())
}

func headerKindFor(isEx bool) Kind {
	if isEx {
		return KindDialogEx
	}
	return KindDialog
}

// writeSimpleResourceFor is writeSimpleResource with the type value derived
// from kind directly, for statements (DIALOG, MENU, VERSIONINFO, ...) whose
// type keyword is implicit rather than user-spelled. Kinds without a
// reserved numeric type constant (TOOLBAR, DLGINIT) fall back to their
// keyword spelled out as a Name, matching how an arbitrary user-defined
// type keyword is classified (spec §3).
func writeSimpleResourceFor(out *bytes.Buffer, h *ast.CommonHeader, kind Kind, ctx *Context, defaults Defaults, data []byte) error {
	typeNum, ok := PredefinedTypeNumber(kind)
	if ok {
		return writeSimpleResource(out, h, kind, numlit.Ordinal(typeNum), ctx, defaults, data)
	}
	return writeSimpleResource(out, h, kind, numlit.ClassifyLiteral(kindKeyword(kind)), ctx, defaults, data)
}

// kindKeyword returns the resource-type keyword spelling for a Kind that
// has no reserved numeric type constant.
func kindKeyword(k Kind) string {
	switch k {
	case KindToolbar:
		return "TOOLBAR"
	case KindDlgInit:
		return "DLGINIT"
	default:
		return ""
	}
}

func writeDialogControl(data *bytes.Buffer, c ast.DialogControl, isEx bool) error {
	style, err := optionalUint32WithDefault(c.Style, 0x50000000) // WS_CHILD|WS_VISIBLE
	if err != nil {
		return err
	}
	exStyle, err := optionalUint32(c.ExStyle)
	if err != nil {
		return err
	}
	x, err := optionalUint16(c.X)
	if err != nil {
		return err
	}
	y, err := optionalUint16(c.Y)
	if err != nil {
		return err
	}
	w, err := optionalUint16(c.W)
	if err != nil {
		return err
	}
	h, err := optionalUint16(c.H)
	if err != nil {
		return err
	}
	id, err := EvalNumber(c.ID)
	if err != nil {
		return err
	}

	if isEx {
		helpID, err := optionalUint32(c.HelpID)
		if err != nil {
			return err
		}
		binary.Write(data, binary.LittleEndian, helpID)
		binary.Write(data, binary.LittleEndian, exStyle)
		binary.Write(data, binary.LittleEndian, style)
		binary.Write(data, binary.LittleEndian, x)
		binary.Write(data, binary.LittleEndian, y)
		binary.Write(data, binary.LittleEndian, w)
		binary.Write(data, binary.LittleEndian, h)
		binary.Write(data, binary.LittleEndian, uint32(id.Value))
	} else {
		binary.Write(data, binary.LittleEndian, style)
		binary.Write(data, binary.LittleEndian, exStyle)
		binary.Write(data, binary.LittleEndian, x)
		binary.Write(data, binary.LittleEndian, y)
		binary.Write(data, binary.LittleEndian, w)
		binary.Write(data, binary.LittleEndian, h)
		binary.Write(data, binary.LittleEndian, uint16(id.Value))
	}

	if err := writeControlClass(data, c.Class); err != nil {
		return err
	}
	if err := writeControlText(data, c.Text); err != nil {
		return err
	}

	binary.Write(data, binary.LittleEndian, uint16(len(c.CreationData)))
	data.Write(c.CreationData)
	return nil
}

// writeControlClass encodes CONTROL/LTEXT/... class fields: predefined
// classes write their fixed name string; everything else is a name-or-
// ordinal expression (spec §4.5).
func writeControlClass(buf *bytes.Buffer, cc *ast.ControlClass) error {
	if cc == nil {
		binary.Write(buf, binary.LittleEndian, uint16(0))
		return nil
	}
	if cc.Predefined != "" {
		resfmt.WriteNameOrOrdinal(buf, numlit.NameOrdinalFromRunes([]rune(cc.Predefined)))
		return nil
	}
	return writeControlText(buf, cc.Text)
}

// writeControlText encodes a ControlText: absent (0x0000), a NameOrOrdinal
// number, or a quoted string, per spec §4.5.
func writeControlText(buf *bytes.Buffer, ct *ast.ControlText) error {
	if ct == nil {
		binary.Write(buf, binary.LittleEndian, uint16(0))
		return nil
	}
	if ct.Number != nil {
		n, err := EvalNumber(*ct.Number)
		if err != nil {
			return err
		}
		resfmt.WriteNameOrOrdinal(buf, numlit.Ordinal(uint16(n.Value)))
		return nil
	}
	if ct.String != nil {
		writeUTF16String(buf, ct.String.Text)
		return nil
	}
	binary.Write(buf, binary.LittleEndian, uint16(0))
	return nil
}

func writeMenuOrClassField(buf *bytes.Buffer, ct *ast.ControlText) error {
	return writeControlText(buf, ct)
}

func dialogCaption(n *ast.Dialog) string {
	if !n.HasCaption {
		return ""
	}
	return n.Caption
}

// writeUTF16String appends s's UTF-16LE code units followed by a NUL
// terminator code unit.
func writeUTF16String(buf *bytes.Buffer, s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		binary.Write(buf, binary.LittleEndian, u)
	}
	binary.Write(buf, binary.LittleEndian, uint16(0))
}

// styleWithSetFont evaluates a dialog's style expression (defaulting to 0)
// and forces DS_SETFONT (0x40) on if the dialog carries a FONT statement.
func styleWithSetFont(e ast.Expr, hasFont bool) (uint32, error) {
	v, err := optionalUint32(e)
	if err != nil {
		return 0, err
	}
	if hasFont {
		v |= 0x40
	}
	return v, nil
}

func optionalUint32(e ast.Expr) (uint32, error) {
	if e == nil {
		return 0, nil
	}
	n, err := EvalNumber(e)
	if err != nil {
		return 0, err
	}
	return n.Value, nil
}

func optionalUint32WithDefault(e ast.Expr, def uint32) (uint32, error) {
	if e == nil {
		return def, nil
	}
	n, err := EvalNumber(e)
	if err != nil {
		return 0, err
	}
	return n.Value, nil
}

func optionalUint16(e ast.Expr) (uint16, error) {
	v, err := optionalUint32(e)
	return uint16(v), err
}
