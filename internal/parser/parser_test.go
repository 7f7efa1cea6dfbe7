package parser

import (
	"testing"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/codepage"
	"github.com/holocm/rcc/internal/diagnostics"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) (*ast.Root, *diagnostics.Collector) {
	t.Helper()
	diags := &diagnostics.Collector{}
	cp := codepage.NewTable(codepage.Default)
	lx := lexer.New([]byte(source), cp, diags, false, false)
	p := New(*lx, diags, false)
	root, err := p.ParseRoot()
	require.NoError(t, err)
	return root, diags
}

func TestParseRawDataResource(t *testing.T) {
	root, _ := parseSource(t, `1 RCDATA { 1, 2 }`)
	require.Len(t, root.Body, 1)
	rd, ok := root.Body[0].(*ast.ResourceRawData)
	require.True(t, ok)
	assert.Len(t, rd.Items, 2)
}

func TestParseExternalFileResource(t *testing.T) {
	root, _ := parseSource(t, `1 BITMAP "foo.bmp"`)
	require.Len(t, root.Body, 1)
	ext, ok := root.Body[0].(*ast.ResourceExternal)
	require.True(t, ok)
	assert.Equal(t, "foo.bmp", ext.Filename.(*ast.Literal).Tok.Text)
}

func TestParseAccelerators(t *testing.T) {
	root, _ := parseSource(t, `1 ACCELERATORS { "^C", 1, ASCII  "D", 2, VIRTKEY, CONTROL }`)
	require.Len(t, root.Body, 1)
	acc, ok := root.Body[0].(*ast.Accelerators)
	require.True(t, ok)
	require.Len(t, acc.Entries, 2)
	assert.True(t, acc.Entries[0].ASCII)
	assert.True(t, acc.Entries[1].VirtKey)
	assert.True(t, acc.Entries[1].Control)
}

func TestParseMenuWithPopupAndSeparator(t *testing.T) {
	root, _ := parseSource(t, `1 MENU {
		POPUP "&File" {
			MENUITEM "&Open", 100
			MENUITEM SEPARATOR
			MENUITEM "E&xit", 101
		}
	}`)
	require.Len(t, root.Body, 1)
	menu, ok := root.Body[0].(*ast.Menu)
	require.True(t, ok)
	require.Len(t, menu.Items, 1)
	popup := menu.Items[0]
	assert.True(t, popup.IsPopup)
	require.Len(t, popup.Items, 3)
	assert.True(t, popup.Items[1].IsSeparator)
}

func TestParseEmptyMenuWarns(t *testing.T) {
	_, diags := parseSource(t, `1 MENU { }`)
	assert.True(t, len(diags.Diagnostics) > 0)
	assert.Equal(t, diagnostics.ReasonEmptyMenu, diags.Diagnostics[0].Reason)
}

func TestParseStringTable(t *testing.T) {
	root, _ := parseSource(t, `STRINGTABLE { 1, "one" 2, "two" }`)
	require.Len(t, root.Body, 1)
	st, ok := root.Body[0].(*ast.StringTable)
	require.True(t, ok)
	require.Len(t, st.Entries, 2)
	assert.Equal(t, "one", st.Entries[0].Text.Text)
}

func TestParseTopLevelLanguageVersionCharacteristics(t *testing.T) {
	root, _ := parseSource(t, "LANGUAGE 9, 1\nVERSION 2\nCHARACTERISTICS 3\n1 RCDATA { 1 }")
	require.Len(t, root.Body, 4)
	assert.IsType(t, &ast.LanguageStmt{}, root.Body[0])
	assert.IsType(t, &ast.VersionStmt{}, root.Body[1])
	assert.IsType(t, &ast.CharacteristicsStmt{}, root.Body[2])
}

func TestParseUnterminatedRawDataIsAnError(t *testing.T) {
	diags := &diagnostics.Collector{}
	cp := codepage.NewTable(codepage.Default)
	lx := lexer.New([]byte(`1 RCDATA { 1, 2`), cp, diags, false, false)
	p := New(*lx, diags, false)
	_, err := p.ParseRoot()
	assert.Error(t, err)
}
