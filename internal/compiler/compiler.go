/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package compiler wires the tokenizer, parser, and resource emitters
// together into one compilation unit, mirroring how holo-build's build.go
// sequences parsing and generator invocation for a package definition.
package compiler

import (
	"fmt"

	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/extfile"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/parser"
	"github.com/holocm/rcc/internal/rcconfig"
	"github.com/holocm/rcc/internal/rcemit"
)

// Options carries the per-invocation settings that aren't already fixed by
// Config (spec §6): the base directory external files resolve against, and
// whether to tolerate recoverable errors as warnings.
type Options struct {
	BaseDirectory string
	Tolerant      bool
}

// Result is a completed compilation: either a ".res" byte stream (on
// success) or a set of diagnostics explaining why none was produced.
type Result struct {
	Output      []byte
	Diagnostics []diagnostics.Diagnostic
}

// Compile runs one .rc source file through the full tokenizer -> parser ->
// emitter pipeline (spec §4), threading the shared codepage.Table and
// diagnostics.Collector the way spec §9 describes rcc's mutable state being
// passed explicitly rather than living behind package globals.
func Compile(source []byte, cfg rcconfig.Config, opts Options) Result {
	diags := &diagnostics.Collector{}
	cp := codepage.NewTable(codepage.ID(cfg.Input.DefaultCodePage))

	lx := lexer.New(source, cp, diags, false, opts.Tolerant)
	p := parser.New(*lx, diags, opts.Tolerant)

	root, err := p.ParseRoot()
	if err != nil {
		return Result{Diagnostics: diags.Diagnostics}
	}
	if diags.HasErrors() {
		return Result{Diagnostics: diags.Diagnostics}
	}

	resolver := extfile.NewResolver(opts.BaseDirectory, cfg.Input.IncludePaths)
	ctx := rcemit.NewContext(diags, cp, resolver, cfg.Input.DefaultLanguage, cfg.Limits.MaxStringLiteralCodeUnits)

	out, err := rcemit.Emit(root, ctx)
	if err != nil {
		diags.Errorf(diagnostics.ReasonExpectedToken, diagnostics.Span{}, "%s", err.Error())
		return Result{Diagnostics: diags.Diagnostics}
	}

	return Result{Output: out, Diagnostics: diags.Diagnostics}
}

// Err renders the first hard error in a Result, or nil if compilation
// succeeded (possibly with warnings).
func (r Result) Err() error {
	for _, d := range r.Diagnostics {
		if d.Kind == diagnostics.KindError {
			return fmt.Errorf("%s", d.Error())
		}
	}
	return nil
}
