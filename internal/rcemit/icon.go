package rcemit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/extfile"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
)

// emitExternalResource dispatches a "<id> <type> <filename>" statement
// according to its resolved Kind: icon/cursor groups get the special
// directory-splitting treatment of spec §4.5, bitmaps get their file
// header stripped and validated, and every other external-file kind is a
// verbatim passthrough of the referenced file's bytes.
func emitExternalResource(out *bytes.Buffer, n *ast.ResourceExternal, ctx *Context, defaults Defaults) error {
	kind, typeVal, err := resourceTypeAndKind(&n.Header)
	if err != nil {
		return err
	}

	filename := FilenameOf(n.Filename)
	mapped, err := ctx.Resolver.Open(filename)
	if err != nil {
		return err
	}
	defer mapped.Close()
	data := mapped.Bytes()

	switch kind {
	case KindIcon:
		return emitIconOrCursorGroup(out, n, ctx, defaults, data, false)
	case KindCursor:
		return emitIconOrCursorGroup(out, n, ctx, defaults, data, true)
	case KindBitmap:
		stripped, err := extfile.StripBitmapFileHeader(data)
		if err != nil {
			return err
		}
		return writeSimpleResource(out, &n.Header, kind, typeVal, ctx, defaults, stripped)
	case KindFont:
		if err := writeSimpleResource(out, &n.Header, kind, typeVal, ctx, defaults, data); err != nil {
			return err
		}
		language, _, _, err := headerFieldsFor(&n.Header, defaults)
		if err != nil {
			return err
		}
		ctx.FontResources = append(ctx.FontResources, FontEntry{
			ID:       idNameOrdinal(n.Header.ID),
			Language: language,
			Data:     data,
		})
		return nil
	default:
		return writeSimpleResource(out, &n.Header, kind, typeVal, ctx, defaults, data)
	}
}

// emitIconOrCursorGroup implements spec §4.5's Icon/Cursor handling: each
// directory entry becomes an auxiliary RT_ICON/RT_CURSOR sub-resource
// named with the next free global icon id, followed by a GROUP_ICON/
// GROUP_CURSOR resource whose payload mirrors the ICO/CUR directory but
// substitutes a 16-bit id for each entry's 32-bit file offset.
func emitIconOrCursorGroup(out *bytes.Buffer, n *ast.ResourceExternal, ctx *Context, defaults Defaults, data []byte, isCursor bool) error {
	dir, err := extfile.ParseIconDirectory(data)
	if err != nil {
		return err
	}

	language, version, characteristics, err := headerFieldsFor(&n.Header, defaults)
	if err != nil {
		return err
	}

	subKind := KindIcon
	subFlags := MemoryFlags(0x1010) // MOVEABLE|DISCARDABLE|SHARED, spec §4.5
	if isCursor {
		subKind = KindCursor
	}
	subTypeNum, _ := PredefinedTypeNumber(subKind)

	ids := make([]uint16, len(dir.Entries))
	for i, image := range dir.Images {
		id := ctx.NextIconID()
		ids[i] = id
		resfmt.WriteResource(out, resfmt.Header{
			Type:            numlit.Ordinal(subTypeNum),
			Name:            numlit.Ordinal(id),
			MemoryFlags:     uint16(subFlags),
			LanguageID:      language,
			Version:         version,
			Characteristics: characteristics,
		}, image)
	}

	var payload bytes.Buffer
	binary.Write(&payload, binary.LittleEndian, uint16(0))    // reserved
	dirType := uint16(1)
	if isCursor {
		dirType = 2
	}
	binary.Write(&payload, binary.LittleEndian, dirType)
	binary.Write(&payload, binary.LittleEndian, uint16(len(dir.Entries)))

	for i, e := range dir.Entries {
		binary.Write(&payload, binary.LittleEndian, e.Width)
		binary.Write(&payload, binary.LittleEndian, e.Height)
		binary.Write(&payload, binary.LittleEndian, e.ColorCount)
		binary.Write(&payload, binary.LittleEndian, e.Reserved)
		binary.Write(&payload, binary.LittleEndian, e.Planes)
		binary.Write(&payload, binary.LittleEndian, e.BitCount)
		binary.Write(&payload, binary.LittleEndian, e.BytesInRes)
		binary.Write(&payload, binary.LittleEndian, ids[i])
	}

	groupKind := KindGroupIcon
	if isCursor {
		groupKind = KindGroupCursor
	}
	groupFlags := ApplyAttributeKeywords(DefaultFlags(groupKind), n.Header.Attrs)
	groupTypeNum, _ := PredefinedTypeNumber(groupKind)

	resfmt.WriteResource(out, resfmt.Header{
		Type:            numlit.Ordinal(groupTypeNum),
		Name:            idNameOrdinal(n.Header.ID),
		MemoryFlags:     uint16(groupFlags),
		LanguageID:      language,
		Version:         version,
		Characteristics: characteristics,
	}, payload.Bytes())
	return nil
}

// EmitFontDir auto-derives a FONTDIR resource from every FONT resource
// compiled so far (SPEC_FULL §3), if any were present. It mirrors the
// reference compiler's implicit behavior rather than requiring an explicit
// FONTDIR statement.
func EmitFontDir(out *bytes.Buffer, ctx *Context) error {
	if len(ctx.FontResources) == 0 {
		return nil
	}
	var payload bytes.Buffer
	binary.Write(&payload, binary.LittleEndian, uint16(len(ctx.FontResources)))
	for _, f := range ctx.FontResources {
		if !f.ID.IsOrdinal {
			return fmt.Errorf("FONTDIR requires all FONT resources to have ordinal ids")
		}
		binary.Write(&payload, binary.LittleEndian, f.ID.Ordinal)
		payload.Write(f.Data)
	}
	flags := DefaultFlags(KindFontDir)
	resfmt.WriteResource(out, resfmt.Header{
		Type:        numlit.Ordinal(mustType(KindFontDir)),
		Name:        numlit.Ordinal(1),
		MemoryFlags: uint16(flags),
		LanguageID:  ctx.FontResources[0].Language,
	}, payload.Bytes())
	return nil
}

func mustType(k Kind) uint16 {
	n, _ := PredefinedTypeNumber(k)
	return n
}
