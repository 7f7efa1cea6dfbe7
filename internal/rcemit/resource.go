package rcemit

import (
	"bytes"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
	"github.com/holocm/rcc/internal/resfmt"
)

// Defaults carries the top-level LANGUAGE/VERSION/CHARACTERISTICS
// statements in effect for resources that don't override them locally
// (spec §8, "LANGUAGE p, s followed by any resource without its own
// LANGUAGE emits language_id = p | (s<<10)").
type Defaults struct {
	HasLanguage     bool
	LanguageID      uint16
	HasVersion      bool
	Version         uint32
	HasCharacteristics bool
	Characteristics uint32
}

// Emit compiles a full syntax tree into a concatenated ".res" byte stream,
// preceded by the mandatory empty sentinel header (spec §3, §6).
func Emit(root *ast.Root, ctx *Context) ([]byte, error) {
	var out bytes.Buffer
	out.Write(resfmt.EmptySentinelHeader)

	defaults := Defaults{LanguageID: ctx.DefaultLanguageID}
	stringTables := newStringTableAccumulator()

	for _, node := range root.Body {
		switch n := node.(type) {
		case *ast.LanguageStmt:
			p, err := EvalNumber(n.Primary)
			if err != nil {
				return nil, err
			}
			s, err := EvalNumber(n.Sublanguage)
			if err != nil {
				return nil, err
			}
			defaults.HasLanguage = true
			defaults.LanguageID = EncodeLanguageID(uint16(p.Value), uint16(s.Value))
		case *ast.VersionStmt:
			v, err := EvalNumber(n.Value)
			if err != nil {
				return nil, err
			}
			defaults.HasVersion = true
			defaults.Version = v.Value
		case *ast.CharacteristicsStmt:
			v, err := EvalNumber(n.Value)
			if err != nil {
				return nil, err
			}
			defaults.HasCharacteristics = true
			defaults.Characteristics = v.Value
		case *ast.StringTable:
			if err := stringTables.Add(n, ctx, defaults); err != nil {
				return nil, err
			}
		default:
			if err := emitResourceNode(&out, node, ctx, defaults); err != nil {
				return nil, err
			}
		}
	}

	if err := stringTables.Flush(&out, ctx); err != nil {
		return nil, err
	}

	if err := EmitFontDir(&out, ctx); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodeLanguageID packs primary/sublanguage into the single-u16 encoding
// from spec §6: primary_language:u10 | (sublanguage:u6 << 10).
func EncodeLanguageID(primary, sublanguage uint16) uint16 {
	return (primary & 0x3FF) | (sublanguage << 10)
}

// headerFieldsFor resolves a CommonHeader's language/version/
// characteristics against the statement-local override, falling back to
// the top-level Defaults.
func headerFieldsFor(h *ast.CommonHeader, defaults Defaults) (language uint16, version uint32, characteristics uint32, err error) {
	language = defaults.LanguageID
	if h.Language != nil {
		p, e := EvalNumber(h.Language.Primary)
		if e != nil {
			return 0, 0, 0, e
		}
		s, e := EvalNumber(h.Language.Sublanguage)
		if e != nil {
			return 0, 0, 0, e
		}
		language = EncodeLanguageID(uint16(p.Value), uint16(s.Value))
	}

	version = defaults.Version
	if h.Version != nil {
		v, e := EvalNumber(h.Version)
		if e != nil {
			return 0, 0, 0, e
		}
		version = v.Value
	}

	characteristics = defaults.Characteristics
	if h.Characteristics != nil {
		v, e := EvalNumber(h.Characteristics)
		if e != nil {
			return 0, 0, 0, e
		}
		characteristics = v.Value
	}
	return
}

// resourceTypeAndKind resolves a CommonHeader's type token to both a
// Kind (for emitter dispatch) and the on-disk NameOrOrdinal, applying the
// ">=256 forces user-defined" and "6 (STRING) is a hard error" rules from
// spec §3.
func resourceTypeAndKind(h *ast.CommonHeader) (Kind, numlit.NameOrOrdinal, error) {
	classified := numlit.ClassifyLiteral(h.Type.Text)
	if classified.IsOrdinal && classified.Ordinal == 6 {
		return KindUnknown, classified, fmt.Errorf("type 6 (STRING) cannot be used as a resource type directly")
	}
	if classified.IsOrdinal && classified.Ordinal >= 256 {
		return KindUserDefined, classified, nil
	}
	if kind, ok := ClassifyTypeKeyword(h.Type.Text); ok {
		if num, hasNum := PredefinedTypeNumber(kind); hasNum {
			return kind, numlit.Ordinal(num), nil
		}
		return kind, classified, nil
	}
	return KindUserDefined, classified, nil
}

func emitResourceNode(out *bytes.Buffer, node ast.Node, ctx *Context, defaults Defaults) error {
	switch n := node.(type) {
	case *ast.ResourceExternal:
		return emitExternalResource(out, n, ctx, defaults)
	case *ast.ResourceRawData:
		return emitRawDataResource(out, n, ctx, defaults)
	case *ast.Accelerators:
		return emitAccelerators(out, n, ctx, defaults)
	case *ast.Dialog:
		return emitDialog(out, n, ctx, defaults)
	case *ast.Menu:
		return emitMenu(out, n, ctx, defaults)
	case *ast.VersionInfo:
		return emitVersionInfo(out, n, ctx, defaults)
	case *ast.DlgInclude:
		return emitDlgInclude(out, n, ctx, defaults)
	case *ast.Toolbar:
		return emitToolbar(out, n, ctx, defaults)
	case *ast.DlgInit:
		return emitDlgInit(out, n, ctx, defaults)
	case *ast.Invalid:
		return nil // tolerated dangling content; nothing to emit
	default:
		return fmt.Errorf("internal error: unhandled node type %T", node)
	}
}

func idNameOrdinal(id ast.ResourceID) numlit.NameOrOrdinal {
	return numlit.ClassifyLiteral(id.Token.Text)
}
