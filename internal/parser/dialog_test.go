package parser

import (
	"testing"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialogWithPredefinedControlShorthand(t *testing.T) {
	root, _ := parseSource(t, `1 DIALOG 0, 0, 200, 100
	STYLE 0x10
	CAPTION "Hello"
	BEGIN
		LTEXT "Some text", 100, 10, 10, 80, 10
		PUSHBUTTON "OK", IDOK, 10, 80, 50, 14
	END`)
	require.Len(t, root.Body, 1)
	dlg, ok := root.Body[0].(*ast.Dialog)
	require.True(t, ok)
	assert.Equal(t, "Hello", dlg.Caption)
	require.Len(t, dlg.Controls, 2)
	assert.Equal(t, "STATIC", dlg.Controls[0].Class.Predefined)
	assert.Equal(t, "BUTTON", dlg.Controls[1].Class.Predefined)
}

func TestParseDialogExWithHelpIDAndFont(t *testing.T) {
	root, _ := parseSource(t, `1 DIALOGEX 0, 0, 200, 100, 42
	CAPTION "Ex"
	FONT 8, "MS Shell Dlg", 400, 0, 1
	BEGIN
		CONTROL "text", 101, "STATIC", 0x01, 0, 0, 10, 10
	END`)
	require.Len(t, root.Body, 1)
	dlg, ok := root.Body[0].(*ast.Dialog)
	require.True(t, ok)
	require.NotNil(t, dlg.HelpID)
	assert.Equal(t, "MS Shell Dlg", dlg.FontName)
	require.Len(t, dlg.Controls, 1)
	assert.True(t, dlg.Controls[0].Kind.Is("CONTROL"))
}

func TestEvalBool(t *testing.T) {
	zero := &ast.Literal{Tok: token.Token{Kind: token.Number, Text: "0"}}
	nonzero := &ast.Literal{Tok: token.Token{Kind: token.Number, Text: "1"}}

	v, err := EvalBool(zero)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = EvalBool(nonzero)
	require.NoError(t, err)
	assert.True(t, v)
}
