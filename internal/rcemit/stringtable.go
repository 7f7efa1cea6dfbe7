package rcemit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
	"github.com/holocm/rcc/internal/token"
)

// stringTableBundleKey identifies one emitted STRING resource: language id
// plus bundle index (id>>4), per spec §4.5 and §8.
type stringTableBundleKey struct {
	language uint16
	bundle   uint16
}

type versionAndCharacteristics struct {
	version         uint32
	characteristics uint32
}

type stringTableAccumulator struct {
	bundles   map[stringTableBundleKey]*[16]*[]uint16
	attrs     map[stringTableBundleKey]ast.Attributes
	order     []stringTableBundleKey
	seen      map[stringTableBundleKey]map[uint16]bool
	headerFor map[stringTableBundleKey]versionAndCharacteristics
}

func newStringTableAccumulator() *stringTableAccumulator {
	return &stringTableAccumulator{
		bundles:   make(map[stringTableBundleKey]*[16]*[]uint16),
		attrs:     make(map[stringTableBundleKey]ast.Attributes),
		seen:      make(map[stringTableBundleKey]map[uint16]bool),
		headerFor: make(map[stringTableBundleKey]versionAndCharacteristics),
	}
}

// Add folds one STRINGTABLE statement's entries into the sparse
// (language, bundle) -> 16-slot map described in spec §9, validating
// duplicate ids (spec §7) and the configured max string length (spec §8).
func (a *stringTableAccumulator) Add(n *ast.StringTable, ctx *Context, defaults Defaults) error {
	header := &ast.CommonHeader{
		Language:        n.Language,
		Version:         n.Version,
		Characteristics: n.Characteristics,
	}
	language, version, characteristics, err := headerFieldsFor(header, defaults)
	if err != nil {
		return err
	}

	line := ctx.CP.AtLine(n.Span.First.Line)

	for _, entry := range n.Entries {
		idNum, err := EvalNumber(entry.ID)
		if err != nil {
			return err
		}
		id := uint16(idNum.Value)
		bundle := id >> 4
		slot := id & 0xF
		key := stringTableBundleKey{language: language, bundle: bundle}

		if _, ok := a.bundles[key]; !ok {
			var arr [16]*[]uint16
			a.bundles[key] = &arr
			a.attrs[key] = n.Attrs
			a.seen[key] = make(map[uint16]bool)
			a.headerFor[key] = versionAndCharacteristics{version, characteristics}
			a.order = append(a.order, key)
		}
		if a.seen[key][id] {
			return fmt.Errorf("duplicate string table id %d", id)
		}
		a.seen[key][id] = true

		var units []uint16
		if entry.Text.Kind == token.QuotedWideString {
			units, err = numlit.EvalWideString(entry.Text.Text)
			if err != nil {
				return err
			}
		} else {
			b, err := numlit.EvalNarrowString(entry.Text.Text, line.Input, line.Output)
			if err != nil {
				return err
			}
			units = make([]uint16, len(b))
			for i, by := range b {
				units[i] = uint16(by)
			}
		}
		if len(units) > ctx.MaxStringLiteralCodeUnits {
			return fmt.Errorf("string table entry %d exceeds the configured maximum of %d UTF-16 code units", id, ctx.MaxStringLiteralCodeUnits)
		}
		a.bundles[key][slot] = &units
	}
	return nil
}

// Flush emits one RT_STRING resource per (language, bundle) key, each
// carrying 16 length-prefixed UTF-16 strings (spec §4.5).
func (a *stringTableAccumulator) Flush(out *bytes.Buffer, ctx *Context) error {
	for _, key := range a.order {
		slots := a.bundles[key]
		var data bytes.Buffer
		for _, s := range slots {
			if s == nil {
				binary.Write(&data, binary.LittleEndian, uint16(0))
				continue
			}
			binary.Write(&data, binary.LittleEndian, uint16(len(*s)))
			for _, u := range *s {
				binary.Write(&data, binary.LittleEndian, u)
			}
		}
		flags := ApplyAttributeKeywords(DefaultFlags(KindStringTable), a.attrs[key])
		hv := a.headerFor[key]
		resfmt.WriteResource(out, resfmt.Header{
			Type:            numlit.Ordinal(mustType(KindStringTable)),
			Name:            numlit.Ordinal(key.bundle + 1),
			MemoryFlags:     uint16(flags),
			LanguageID:      key.language,
			Version:         hv.version,
			Characteristics: hv.characteristics,
		}, data.Bytes())
	}
	return nil
}
