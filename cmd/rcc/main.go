/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Command rcc compiles Windows ".rc" resource scripts into ".res" files.
// Its flag set and cobra.Command wiring follow saferwall-pe's pedumper.go
// (a root cobra.Command whose flags are bound to package variables via
// Flags().StringVarP/BoolVar/IntVar, Execute() + os.Exit(1) on failure);
// its diagnostic printing follows holo-build's
// main.go showError (a colored "!!" prefix written to stderr per error).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/compiler"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/parser"
	"github.com/holocm/rcc/internal/rcconfig"
	"github.com/holocm/rcc/internal/token"
)

var (
	flagOutput       string
	flagIncludeDirs  []string
	flagCodePage     int
	flagLanguage     int
	flagTolerant     bool
	flagReproducible bool
	flagStdout       bool
	flagConfigPath   string
	flagDumpTokens   bool
	flagDumpAST      bool
	flagSLPercent    int
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rcc <input.rc>",
		Short: "Compile a Windows resource script into a .res file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output .res path (default: input with .res extension)")
	cmd.Flags().StringArrayVarP(&flagIncludeDirs, "include", "I", nil, "additional include directory (repeatable)")
	cmd.Flags().IntVar(&flagCodePage, "code-page", 0, "default code page for narrow string literals (default: 1252)")
	cmd.Flags().IntVar(&flagLanguage, "language", 0, "default LANGUAGE id when the script sets none (default: 0x0409)")
	cmd.Flags().BoolVar(&flagTolerant, "tolerant", false, "tolerate recoverable syntax errors as warnings")
	cmd.Flags().IntVar(&flagSLPercent, "sl", 0, "max string literal length as a percent of 8192 code units, e.g. 33 (default: 4097 code units, unaffected by this flag)")
	cmd.Flags().BoolVar(&flagReproducible, "reproducible", false, "omit build-time-dependent bytes from the output")
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "write the compiled resource to stdout instead of a file")
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a TOML configuration file")
	cmd.Flags().BoolVar(&flagDumpTokens, "dump-tokens", false, "print the token stream instead of compiling")
	cmd.Flags().BoolVar(&flagDumpAST, "dump-ast", false, "print the parsed syntax tree instead of compiling")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		showError(err)
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	source, err := os.ReadFile(inputPath)
	if err != nil {
		showError(err)
		return err
	}

	if flagDumpTokens {
		dumpTokens(source, cfg.Input.DefaultCodePage)
		return nil
	}
	if flagDumpAST {
		return dumpAST(source, cfg.Input.DefaultCodePage)
	}

	result := compiler.Compile(source, cfg, compiler.Options{
		BaseDirectory: dirOf(inputPath),
		Tolerant:      cfg.Input.Tolerant,
	})
	for _, d := range result.Diagnostics {
		showDiagnostic(d)
	}
	if result.Err() != nil {
		return result.Err()
	}

	if flagStdout {
		if _, err := os.Stdout.Write(result.Output); err != nil {
			showError(err)
			return err
		}
		return nil
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = replaceExtension(inputPath, ".res")
	}
	if err := os.WriteFile(outPath, result.Output, 0644); err != nil {
		showError(fmt.Errorf("cannot write %s: %w", outPath, err))
		return err
	}
	return nil
}

func loadConfig() (rcconfig.Config, error) {
	if flagConfigPath == "" {
		return rcconfig.DefaultConfig(), nil
	}
	return rcconfig.Load(flagConfigPath)
}

func applyFlagOverrides(cmd *cobra.Command, cfg *rcconfig.Config) {
	if flagCodePage != 0 {
		cfg.Input.DefaultCodePage = flagCodePage
	}
	if flagLanguage != 0 {
		cfg.Input.DefaultLanguage = uint16(flagLanguage)
	}
	if flagTolerant {
		cfg.Input.Tolerant = true
	}
	if flagReproducible {
		cfg.Output.Reproducible = true
	}
	if cmd.Flags().Changed("sl") {
		cfg.Limits.MaxStringLiteralCodeUnits = maxStringLiteralCodeUnitsForPercent(flagSLPercent)
	}
	cfg.Input.IncludePaths = append(cfg.Input.IncludePaths, flagIncludeDirs...)
}

// maxStringLiteralCodeUnitsForPercent implements the reference tool's "/sl
// <percent>" option (spec §4.5, §8): the limit is floor(8192*percent/100),
// except that percent 100 maps to 8192 exactly rather than the rounded
// product. No percent value reproduces the built-in default of 4097 code
// units (spec §8), since 50% floors to 4096.
func maxStringLiteralCodeUnitsForPercent(percent int) int {
	if percent == 100 {
		return 8192
	}
	return 8192 * percent / 100
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i]
		}
	}
	return "."
}

func replaceExtension(path, ext string) string {
	dot := -1
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			break
		}
		if path[i] == '.' {
			dot = i
			break
		}
	}
	if dot == -1 {
		return path + ext
	}
	return path[:dot] + ext
}

// dumpTokens runs the lexer alone and prints every token it produces, one
// per line. It never fails on its own: lexer errors surface as Invalid
// tokens and diagnostics, which are printed inline rather than aborting.
func dumpTokens(source []byte, defaultCodePage int) {
	diags := &diagnostics.Collector{}
	cp := codepage.NewTable(codepage.ID(defaultCodePage))
	lx := lexer.New(source, cp, diags, false, flagTolerant)
	for {
		tok := lx.Next(lexer.Normal)
		fmt.Printf("%4d  %-10s %q\n", tok.Line, tokenKindName(tok.Kind), tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}
	for _, d := range diags.Diagnostics {
		showDiagnostic(d)
	}
}

// dumpAST parses source and prints the resulting syntax tree's top-level
// statements with Go's "%#v" verb. This is a debugging aid only; it does
// not attempt a prettier tree-drawing since the tagged-sum node types
// already carry descriptive field names.
func dumpAST(source []byte, defaultCodePage int) error {
	diags := &diagnostics.Collector{}
	cp := codepage.NewTable(codepage.ID(defaultCodePage))
	lx := lexer.New(source, cp, diags, false, flagTolerant)
	p := parser.New(*lx, diags, flagTolerant)
	root, err := p.ParseRoot()
	for _, d := range diags.Diagnostics {
		showDiagnostic(d)
	}
	if err != nil {
		showError(err)
		return err
	}
	fmt.Printf("%d top-level statements\n", len(root.Body))
	for _, stmt := range root.Body {
		dumpNode(stmt)
	}
	return nil
}

func dumpNode(n ast.Node) {
	fmt.Printf("%#v\n", n)
}

func tokenKindName(k token.Kind) string {
	switch k {
	case token.Invalid:
		return "INVALID"
	case token.EOF:
		return "EOF"
	case token.Literal:
		return "LITERAL"
	case token.Number:
		return "NUMBER"
	case token.QuotedASCIIString:
		return "STRING"
	case token.QuotedWideString:
		return "WSTRING"
	case token.Operator:
		return "OP"
	case token.Comma:
		return "COMMA"
	case token.OpenParen:
		return "LPAREN"
	case token.CloseParen:
		return "RPAREN"
	case token.OpenBrace:
		return "LBRACE"
	case token.CloseBrace:
		return "RBRACE"
	default:
		return "?"
	}
}

func showDiagnostic(d diagnostics.Diagnostic) {
	switch d.Kind {
	case diagnostics.KindError:
		fmt.Fprintf(os.Stderr, "\x1b[31m\x1b[1m!!\x1b[0m %s\n", d.Error())
	case diagnostics.KindWarning:
		fmt.Fprintf(os.Stderr, "\x1b[33m\x1b[1m!!\x1b[0m %s\n", d.Error())
	default:
		fmt.Fprintf(os.Stderr, "%s\n", d.Error())
	}
}

func showError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31m\x1b[1m!!\x1b[0m %s\n", err.Error())
}
