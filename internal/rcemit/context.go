package rcemit

import (
	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/extfile"
	"github.com/holocm/rcc/internal/numlit"
)

// FontEntry records one compiled FONT resource, so a FONTDIR can be
// auto-derived afterwards (SPEC_FULL §3).
type FontEntry struct {
	ID       numlit.NameOrOrdinal
	Language uint16
	Data     []byte
}

// Context threads the emitter's cross-statement mutable state (spec §9,
// "Global mutable state"): the icon/cursor id counter and the code-page
// tables, passed explicitly instead of living behind package-level
// globals.
type Context struct {
	Diags *diagnostics.Collector
	CP    *codepage.Table

	// Resolver locates external files (icons, cursors, bitmaps, raw
	// binaries) against the source directory and configured include
	// path (spec §4.6).
	Resolver *extfile.Resolver

	// DefaultLanguageID is used for any resource lacking a LANGUAGE
	// override, seeded from config or a top-level LANGUAGE statement.
	DefaultLanguageID uint16

	// MaxStringLiteralCodeUnits bounds STRINGTABLE string length (spec
	// §4.5 and §8).
	MaxStringLiteralCodeUnits int

	// nextIconID is the shared, auto-incrementing icon/cursor
	// sub-resource id counter (spec §4.5); starts at 1.
	nextIconID uint16

	// FontResources accumulates every compiled FONT resource so Emit can
	// auto-derive a FONTDIR afterwards (SPEC_FULL §3).
	FontResources []FontEntry
}

// NewContext builds a Context with the icon counter initialized to 1.
func NewContext(diags *diagnostics.Collector, cp *codepage.Table, resolver *extfile.Resolver, defaultLanguageID uint16, maxStringLen int) *Context {
	return &Context{
		Diags:                     diags,
		CP:                        cp,
		Resolver:                  resolver,
		DefaultLanguageID:         defaultLanguageID,
		MaxStringLiteralCodeUnits: maxStringLen,
		nextIconID:                1,
	}
}

// NextIconID returns the next free icon/cursor sub-resource id and
// advances the shared counter.
func (c *Context) NextIconID() uint16 {
	id := c.nextIconID
	c.nextIconID++
	return id
}
