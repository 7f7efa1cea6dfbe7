package rcemit

import (
	"testing"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberLiteral(text string) ast.Expr {
	return &ast.Literal{Tok: token.Token{Kind: token.Number, Text: text}}
}

func TestEvalNumberLiteral(t *testing.T) {
	n, err := EvalNumber(numberLiteral("42"))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), n.Value)
}

func TestEvalNumberBinaryOr(t *testing.T) {
	n, err := EvalNumber(&ast.BinaryExpression{
		Left:  numberLiteral("0x0001"),
		Op:    '|',
		Right: numberLiteral("0x0010"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0011), n.Value)
}

func TestEvalNumberGrouped(t *testing.T) {
	n, err := EvalNumber(&ast.GroupedExpression{Inner: numberLiteral("5")})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), n.Value)
}

func TestEvalNumberNotFoldsAgainstOrSibling(t *testing.T) {
	// "0x0F | NOT 0x01" folds to 0x0F AND-NOT 0x01 = 0x0E
	n, err := EvalNumber(&ast.BinaryExpression{
		Left:  &ast.NotExpression{Operand: numberLiteral("0x01")},
		Op:    '|',
		Right: numberLiteral("0x0F"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0E), n.Value)
}

func TestEvalNumberStandaloneNot(t *testing.T) {
	n, err := EvalNumber(&ast.NotExpression{Operand: numberLiteral("0")})
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), n.Value)
}

func TestEvalNumberMissingExpression(t *testing.T) {
	_, err := EvalNumber(nil)
	assert.Error(t, err)
}

func TestMustEvalNumberPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustEvalNumber(nil)
	})
}
