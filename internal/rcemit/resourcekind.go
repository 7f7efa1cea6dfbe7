/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package rcemit implements the per-resource-type code generators: it
// evaluates expressions, builds binary payloads, and frames them with the
// resource header from internal/resfmt. This corresponds to spec §4.5's
// "Resource emitters" component and to SPEC_FULL §3's supplemented
// TOOLBAR/DLGINIT/FONTDIR/MESSAGETABLE kinds.
package rcemit

import "strings"

// Kind is the semantic classification of a resource-type keyword, per
// spec §3.
type Kind int

const (
	KindUnknown Kind = iota
	KindAccelerators
	KindBitmap
	KindCursor
	KindDialog
	KindDialogEx
	KindDlgInclude
	KindDlgInit
	KindFont
	KindHTML
	KindIcon
	KindMenu
	KindMenuEx
	KindMessageTable
	KindPlugPlay
	KindRCData
	KindStringTable
	KindToolbar
	KindUserDefined
	KindVXD
	KindVersionInfo
	KindGroupIcon
	KindGroupCursor
	KindFontDir
	KindManifest
)

// PredefinedTypeNumber returns the reserved numeric type constant for
// Kinds that have one (spec Glossary, "Predefined resource type"). Kinds
// with no numeric constant (e.g. user-defined-by-name) return 0, false.
func PredefinedTypeNumber(k Kind) (uint16, bool) {
	switch k {
	case KindCursor:
		return 1, true
	case KindBitmap:
		return 2, true
	case KindIcon:
		return 3, true
	case KindMenu, KindMenuEx:
		return 4, true
	case KindDialog, KindDialogEx:
		return 5, true
	// 6 (STRING) is intentionally absent: using it directly is a hard
	// error (spec §3), never a resource we emit under that number.
	case KindFontDir:
		return 7, true
	case KindFont:
		return 8, true
	case KindAccelerators:
		return 9, true
	case KindRCData:
		return 10, true
	case KindMessageTable:
		return 11, true
	case KindGroupCursor:
		return 12, true
	case KindGroupIcon:
		return 14, true
	case KindVersionInfo:
		return 16, true
	case KindDlgInclude:
		return 17, true
	case KindPlugPlay:
		return 19, true
	case KindVXD:
		return 20, true
	case KindHTML:
		return 23, true
	case KindManifest:
		return 24, true
	case KindDlgInit, KindToolbar:
		return 0, false // these have no reserved numeric constant
	default:
		return 0, false
	}
}

// ClassifyTypeKeyword maps a resource-type keyword (matched
// case-insensitively) to a Kind. Numeric type values are not handled here;
// resourceTypeAndKind classifies them before consulting this function.
func ClassifyTypeKeyword(text string) (Kind, bool) {
	switch strings.ToUpper(text) {
	case "ACCELERATORS":
		return KindAccelerators, true
	case "BITMAP":
		return KindBitmap, true
	case "CURSOR":
		return KindCursor, true
	case "DIALOG":
		return KindDialog, true
	case "DIALOGEX":
		return KindDialogEx, true
	case "DLGINCLUDE":
		return KindDlgInclude, true
	case "DLGINIT":
		return KindDlgInit, true
	case "FONT":
		return KindFont, true
	case "FONTDIR":
		return KindFontDir, true
	case "HTML":
		return KindHTML, true
	case "ICON":
		return KindIcon, true
	case "MENU":
		return KindMenu, true
	case "MENUEX":
		return KindMenuEx, true
	case "MESSAGETABLE":
		return KindMessageTable, true
	case "PLUGPLAY":
		return KindPlugPlay, true
	case "RCDATA":
		return KindRCData, true
	case "STRINGTABLE":
		return KindStringTable, true
	case "TOOLBAR":
		return KindToolbar, true
	case "VXD":
		return KindVXD, true
	case "VERSIONINFO":
		return KindVersionInfo, true
	case "MANIFEST", "RT_MANIFEST":
		return KindManifest, true
	default:
		return KindUnknown, false
	}
}

// RequiresOrdinalID reports whether this Kind's id must be numeric (only
// FONT, per spec §4.3).
func RequiresOrdinalID(k Kind) bool {
	return k == KindFont
}
