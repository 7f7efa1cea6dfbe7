package rcemit

import "github.com/holocm/rcc/internal/ast"

// MemoryFlags is the 16-bit resource memory-flags bitfield (spec §3).
type MemoryFlags uint16

const (
	FlagMoveable   MemoryFlags = 0x10
	FlagShared     MemoryFlags = 0x20 // aka PURE
	FlagPreload    MemoryFlags = 0x40
	FlagDiscardable MemoryFlags = 0x1000
)

// DefaultFlags returns the default memory-flags value for a predefined
// resource Kind, per the table in spec §4.5.
func DefaultFlags(k Kind) MemoryFlags {
	switch k {
	case KindIcon, KindCursor:
		return FlagMoveable | FlagDiscardable
	case KindRCData, KindBitmap, KindHTML, KindAccelerators, KindManifest:
		return FlagMoveable | FlagShared
	case KindGroupIcon, KindGroupCursor, KindStringTable, KindFont, KindDialog, KindDialogEx:
		return FlagMoveable | FlagShared | FlagDiscardable
	case KindFontDir:
		return FlagMoveable | FlagPreload
	default:
		return FlagMoveable | FlagShared
	}
}

// ApplyAttributeKeywords folds the common-resource-attribute keywords onto
// a base flags value using the fixed rule set from spec §3: DISCARDABLE
// implies MOVEABLE|SHARED as well; FIXED clears MOVEABLE|DISCARDABLE; etc.
func ApplyAttributeKeywords(base MemoryFlags, a ast.Attributes) MemoryFlags {
	f := base
	if a.Preload {
		f |= FlagPreload
	}
	if a.LoadOnCall {
		f &^= FlagPreload
	}
	if a.Moveable {
		f |= FlagMoveable
	}
	if a.Fixed {
		f &^= FlagMoveable | FlagDiscardable
	}
	if a.Shared || a.Pure {
		f |= FlagShared
	}
	if a.NonShared || a.Impure {
		f &^= FlagShared
	}
	if a.Discardable {
		f |= FlagDiscardable | FlagMoveable | FlagShared
	}
	return f
}
