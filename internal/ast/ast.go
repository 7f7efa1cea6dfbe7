/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package ast defines the syntax tree produced by internal/parser. Per
// spec §9's design notes, nodes are modeled as a tagged sum rather than an
// open class hierarchy: every concrete node type is known at compile time,
// and emitter dispatch is a type switch, not virtual dispatch. All nodes
// are owned by one per-parse arena (a plain slice-backed allocation list;
// Go's garbage collector frees the whole tree as a unit once the parse
// result goes out of scope, so no explicit arena type is needed).
package ast

import "github.com/holocm/rcc/internal/token"

// Span records the first and last token of a node, for diagnostics.
type Span struct {
	First, Last token.Token
}

// Root is the top-level syntax tree: a sequence of top-level statements.
type Root struct {
	Span
	Body []Node
}

// Node is implemented by every concrete syntax tree node.
type Node interface {
	node()
}

// ResourceID is either a numeric or name identifier for a resource, parsed
// with NameOrOrdinal-classification semantics, but keeping the raw token
// around so emitters needing id-form requirements (e.g. FONT must be
// ordinal) can re-check the source form.
type ResourceID struct {
	Token token.Token
}

// Attributes are the common resource attribute keywords (memory flags)
// appearing between the type keyword and the body.
type Attributes struct {
	Preload     bool
	LoadOnCall  bool
	Moveable    bool
	Fixed       bool
	Shared      bool
	NonShared   bool
	Pure        bool
	Impure      bool
	Discardable bool
}

// CommonHeader carries the fields shared by every resource statement.
type CommonHeader struct {
	ID         ResourceID
	Type       token.Token // the raw type keyword token, for diagnostics
	Attrs      Attributes
	Language   *LanguageStmt // nil if not overridden for this resource
	Version    Expr
	Characteristics Expr
}

// ResourceExternal is a resource whose body is "just a filename" (an
// expression reduced to its string spelling, spec §4.6): ICON, CURSOR,
// BITMAP, RCDATA-from-file, MESSAGETABLE, user-defined-from-file, etc.
type ResourceExternal struct {
	Span
	Header   CommonHeader
	Filename Expr
}

func (*ResourceExternal) node() {}

// RawDataItem is one element of a raw-data list: a number, narrow string,
// or wide string.
type RawDataItem struct {
	Number *Expr
	Narrow *token.Token
	Wide   *token.Token
}

// ResourceRawData is RCDATA or a user-defined type with a literal { ... }
// body of numbers/strings.
type ResourceRawData struct {
	Span
	Header CommonHeader
	Items  []RawDataItem
}

func (*ResourceRawData) node() {}

// LanguageStmt is "LANGUAGE primary, sublanguage" either at top level or
// nested as a resource-local override.
type LanguageStmt struct {
	Span
	Primary     Expr
	Sublanguage Expr
}

func (*LanguageStmt) node() {}

// VersionStmt is a top-level "VERSION n".
type VersionStmt struct {
	Span
	Value Expr
}

func (*VersionStmt) node() {}

// CharacteristicsStmt is a top-level "CHARACTERISTICS n".
type CharacteristicsStmt struct {
	Span
	Value Expr
}

func (*CharacteristicsStmt) node() {}

// StringTableEntry is one "id, "text"" pair inside a STRINGTABLE body.
type StringTableEntry struct {
	ID   Expr
	Text token.Token // QuotedASCIIString or QuotedWideString
}

// StringTable is a STRINGTABLE resource statement.
type StringTable struct {
	Span
	Attrs    Attributes
	Language *LanguageStmt
	Version  Expr
	Characteristics Expr
	Entries  []StringTableEntry
}

func (*StringTable) node() {}

// AcceleratorEntry is one line inside an ACCELERATORS body.
type AcceleratorEntry struct {
	// Event is either a quoted string (char/ctrl-char accelerator) or a
	// numeric expression.
	EventString *token.Token
	EventNumber *Expr
	ID          Expr
	ASCII       bool
	VirtKey     bool
	Shift       bool
	Control     bool
	Alt         bool
	NoInvert    bool
}

// Accelerators is an ACCELERATORS resource statement.
type Accelerators struct {
	Span
	Header  CommonHeader
	Entries []AcceleratorEntry
}

func (*Accelerators) node() {}

// DialogControl is one control line inside a DIALOG/DIALOGEX body.
type DialogControl struct {
	Kind     token.Token // e.g. "CONTROL", "LTEXT", "PUSHBUTTON", ...
	Text     *ControlText
	ID       Expr
	X, Y, W, H Expr
	HelpID   Expr // DIALOGEX only
	Class    *ControlClass
	Style    Expr
	ExStyle  Expr
	CreationData []byte
	MissingTrailingComma bool // triggers the style-miscompile warning (spec §7)
}

// ControlText is a NameOrOrdinal-valued field (control title, or a class
// given as a predefined ordinal).
type ControlText struct {
	String *token.Token
	Number *Expr
}

// ControlClass distinguishes a predefined class keyword (BUTTON, EDIT,
// ...) from an arbitrary class name/ordinal expression.
type ControlClass struct {
	Predefined string // "" if not one of the six predefined classes
	Text       *ControlText
}

// Dialog is a DIALOG or DIALOGEX resource statement.
type Dialog struct {
	Span
	Header   CommonHeader
	IsEx     bool
	X, Y, W, H Expr
	HelpID   Expr // DIALOGEX only
	Caption  string
	HasCaption bool
	ClassVal *ControlText
	MenuVal  *ControlText
	FontName string
	FontSize Expr
	FontWeight Expr
	FontItalic bool
	FontCharset Expr
	HasFont  bool
	Style    Expr
	ExStyle  Expr
	Controls []DialogControl
}

func (*Dialog) node() {}

// MenuItem is one entry in a MENU/MENUEX tree; Popup items carry nested
// Items and no ID.
type MenuItem struct {
	Text     string // empty for a separator
	IsPopup  bool
	IsSeparator bool
	ID       Expr   // classic MENU only (non-popup)
	Type     Expr   // MENUEX
	State    Expr   // MENUEX
	IDEx     Expr   // MENUEX
	Flags    uint16 // classic MENU flag bits accumulated from keywords
	HelpID   Expr   // MENUEX popup only
	Items    []MenuItem
}

// Menu is a MENU or MENUEX resource statement.
type Menu struct {
	Span
	Header CommonHeader
	IsEx   bool
	Items  []MenuItem
}

func (*Menu) node() {}

// VersionInfoValue is one "value" statement inside a BLOCK: either typed
// text fields (the common "key", "value" form) or raw numeric/string data.
type VersionInfoValue struct {
	Key   string
	Items []RawDataItem // mixed string/number list, as written in source
}

// VersionInfoBlock is a nested "BLOCK "name" { ... }" inside VERSIONINFO.
type VersionInfoBlock struct {
	Name     string
	Values   []VersionInfoValue
	Children []VersionInfoBlock
}

// VersionInfo is a VERSIONINFO resource statement.
type VersionInfo struct {
	Span
	Header CommonHeader
	FileVersion    [4]Expr
	ProductVersion [4]Expr
	FileFlagsMask  Expr
	FileFlags      Expr
	FileOS         Expr
	FileType       Expr
	FileSubtype    Expr
	Blocks         []VersionInfoBlock
}

func (*VersionInfo) node() {}

// DlgInclude is a DLGINCLUDE resource statement (a single quoted string
// naming a header to associate with a dialog's symbolic constants).
type DlgInclude struct {
	Span
	Header   CommonHeader
	Filename token.Token
}

func (*DlgInclude) node() {}

// Toolbar is the supplemented TOOLBAR resource (SPEC_FULL §3).
type ToolbarButton struct {
	ID         Expr // nil for a SEPARATOR
	IsSeparator bool
}

type Toolbar struct {
	Span
	Header CommonHeader
	Width, Height Expr
	Buttons []ToolbarButton
}

func (*Toolbar) node() {}

// DlgInit is the DLGINIT resource (SPEC_FULL §3): a sequence of
// control-init records.
type DlgInitRecord struct {
	ControlID Expr
	Message   Expr
	Data      []byte
}

type DlgInit struct {
	Span
	Header  CommonHeader
	Records []DlgInitRecord
}

func (*DlgInit) node() {}

// Invalid is produced for recoverable end-of-file situations where the
// reference compiler tolerates a dangling identifier (spec §4.3).
type Invalid struct {
	Span
	ContextTokens []token.Token
}

func (*Invalid) node() {}
