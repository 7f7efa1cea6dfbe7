package rcemit

import (
	"bytes"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
)

// emitRawDataResource emits RCDATA and user-defined-type resources whose
// body is a literal { number/string, ... } list (spec §4.5).
func emitRawDataResource(out *bytes.Buffer, n *ast.ResourceRawData, ctx *Context, defaults Defaults) error {
	kind, typeVal, err := resourceTypeAndKind(&n.Header)
	if err != nil {
		return err
	}
	if kind != KindRCData && kind != KindUserDefined {
		return fmt.Errorf("raw data body is not permitted for resource type %q", n.Header.Type.Text)
	}

	var data bytes.Buffer
	line := ctx.CP.AtLine(n.Header.Type.Line)
	for _, item := range n.Items {
		switch {
		case item.Number != nil:
			num, err := EvalNumber(*item.Number)
			if err != nil {
				return err
			}
			resfmt.WriteNumber(&data, num)
		case item.Narrow != nil:
			b, err := numlit.EvalNarrowString(item.Narrow.Text, line.Input, line.Output)
			if err != nil {
				return err
			}
			data.Write(b)
		case item.Wide != nil:
			units, err := numlit.EvalWideString(item.Wide.Text)
			if err != nil {
				return err
			}
			for _, u := range units {
				data.WriteByte(byte(u))
				data.WriteByte(byte(u >> 8))
			}
		}
	}

	return writeSimpleResource(out, &n.Header, kind, typeVal, ctx, defaults, data.Bytes())
}

// writeSimpleResource resolves a CommonHeader's name/flags/language/
// version/characteristics and appends one resource block with the given
// already-computed payload.
func writeSimpleResource(out *bytes.Buffer, h *ast.CommonHeader, kind Kind, typeVal numlit.NameOrOrdinal, ctx *Context, defaults Defaults, data []byte) error {
	language, version, characteristics, err := headerFieldsFor(h, defaults)
	if err != nil {
		return err
	}
	flags := ApplyAttributeKeywords(DefaultFlags(kind), h.Attrs)

	resfmt.WriteResource(out, resfmt.Header{
		Type:            typeVal,
		Name:            idNameOrdinal(h.ID),
		MemoryFlags:     uint16(flags),
		LanguageID:      language,
		Version:         version,
		Characteristics: characteristics,
	}, data)
	return nil
}
