package rcemit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
)

const (
	vsFixedFileInfoSignature uint32 = 0xFEEF04BD
	vsFixedFileInfoStructVer uint32 = 0x00010000
)

// emitVersionInfo implements spec §4.5/§6's VERSIONINFO layout: a
// VS_FIXEDFILEINFO binary block named "VS_VERSION_INFO", followed by the
// StringFileInfo/VarFileInfo block tree written exactly as declared.
func emitVersionInfo(out *bytes.Buffer, n *ast.VersionInfo, ctx *Context, defaults Defaults) error {
	fixed, err := buildFixedFileInfo(n)
	if err != nil {
		return err
	}

	var children [][]byte
	for _, block := range n.Blocks {
		cb, err := buildVersionInfoBlock(block, ctx)
		if err != nil {
			return err
		}
		children = append(children, cb)
	}

	data := buildVersionNode("VS_VERSION_INFO", 0, uint16(len(fixed)), fixed, children)
	return writeSimpleResourceFor(out, &n.Header, KindVersionInfo, ctx, defaults, data)
}

func buildFixedFileInfo(n *ast.VersionInfo) ([]byte, error) {
	fv, err := evalQuad(n.FileVersion)
	if err != nil {
		return nil, err
	}
	pv, err := evalQuad(n.ProductVersion)
	if err != nil {
		return nil, err
	}
	mask, err := optionalUint32(n.FileFlagsMask)
	if err != nil {
		return nil, err
	}
	flags, err := optionalUint32(n.FileFlags)
	if err != nil {
		return nil, err
	}
	os, err := optionalUint32(n.FileOS)
	if err != nil {
		return nil, err
	}
	fileType, err := optionalUint32(n.FileType)
	if err != nil {
		return nil, err
	}
	subtype, err := optionalUint32(n.FileSubtype)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, vsFixedFileInfoSignature)
	binary.Write(&b, binary.LittleEndian, vsFixedFileInfoStructVer)
	binary.Write(&b, binary.LittleEndian, fv[0]<<16|fv[1])
	binary.Write(&b, binary.LittleEndian, fv[2]<<16|fv[3])
	binary.Write(&b, binary.LittleEndian, pv[0]<<16|pv[1])
	binary.Write(&b, binary.LittleEndian, pv[2]<<16|pv[3])
	binary.Write(&b, binary.LittleEndian, mask)
	binary.Write(&b, binary.LittleEndian, flags)
	binary.Write(&b, binary.LittleEndian, os)
	binary.Write(&b, binary.LittleEndian, fileType)
	binary.Write(&b, binary.LittleEndian, subtype)
	binary.Write(&b, binary.LittleEndian, uint32(0)) // fileDateMS
	binary.Write(&b, binary.LittleEndian, uint32(0)) // fileDateLS
	return b.Bytes(), nil
}

func evalQuad(fields [4]ast.Expr) ([4]uint32, error) {
	var out [4]uint32
	for i, e := range fields {
		v, err := optionalUint32(e)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func buildVersionInfoBlock(block ast.VersionInfoBlock, ctx *Context) ([]byte, error) {
	var children [][]byte
	for _, v := range block.Values {
		cb, err := buildVersionInfoValue(v, ctx)
		if err != nil {
			return nil, err
		}
		children = append(children, cb)
	}
	for _, child := range block.Children {
		cb, err := buildVersionInfoBlock(child, ctx)
		if err != nil {
			return nil, err
		}
		children = append(children, cb)
	}
	return buildVersionNode(block.Name, 1, 0, nil, children), nil
}

// buildVersionInfoValue encodes one "key", value entry inside a BLOCK.
// Mixing string and numeric items within one value is refused with an
// error -- the reference compiler instead miscompiles this case, which
// rcc diagnoses explicitly instead of reproducing (spec §7, "mixed-length
// VERSIONINFO values").
func buildVersionInfoValue(v ast.VersionInfoValue, ctx *Context) ([]byte, error) {
	hasString := false
	hasNumber := false
	for _, item := range v.Items {
		if item.Number != nil {
			hasNumber = true
		} else {
			hasString = true
		}
	}
	if hasString && hasNumber {
		return nil, fmt.Errorf("VERSIONINFO value %q mixes string and numeric items, which this compiler refuses instead of reproducing the reference compiler's miscompile", v.Key)
	}

	if hasString {
		var units []uint16
		for _, item := range v.Items {
			switch {
			case item.Wide != nil:
				u, err := numlit.EvalWideString(item.Wide.Text)
				if err != nil {
					return nil, err
				}
				units = append(units, u...)
			case item.Narrow != nil:
				line := ctx.CP.AtLine(item.Narrow.Line)
				b, err := numlit.EvalNarrowString(item.Narrow.Text, line.Input, line.Output)
				if err != nil {
					return nil, err
				}
				for _, by := range b {
					units = append(units, uint16(by))
				}
			}
		}
		units = append(units, 0)
		var data bytes.Buffer
		for _, u := range units {
			binary.Write(&data, binary.LittleEndian, u)
		}
		return buildVersionNode(v.Key, 1, uint16(len(units)), data.Bytes(), nil), nil
	}

	var data bytes.Buffer
	for _, item := range v.Items {
		num, err := EvalNumber(*item.Number)
		if err != nil {
			return nil, err
		}
		resfmt.WriteNumber(&data, num)
	}
	return buildVersionNode(v.Key, 0, uint16(data.Len()), data.Bytes(), nil), nil
}

// buildVersionNode assembles one VS_VERSION_INFO-shaped node: a 6-byte
// length/value_length/type header, a NUL-terminated UTF-16 key, DWORD
// padding, the value bytes, and each DWORD-aligned child in turn (spec
// §4.5, §6).
func buildVersionNode(name string, wType uint16, valueLength uint16, value []byte, children [][]byte) []byte {
	var b bytes.Buffer
	b.Write(make([]byte, 6))
	writeUTF16String(&b, name)
	resfmt.PadTo4(&b)
	b.Write(value)
	for _, c := range children {
		resfmt.PadTo4(&b)
		b.Write(c)
	}
	out := b.Bytes()
	binary.LittleEndian.PutUint16(out[0:2], uint16(len(out)))
	binary.LittleEndian.PutUint16(out[2:4], valueLength)
	binary.LittleEndian.PutUint16(out[4:6], wType)
	return out
}
