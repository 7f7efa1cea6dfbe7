package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("BEGIN", "begin"))
	assert.True(t, EqualFold("DialogEx", "DIALOGEX"))
	assert.False(t, EqualFold("DIALOG", "DIALOGEX"))
	assert.False(t, EqualFold("", "A"))
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: Literal, Text: "StringTable"}
	assert.True(t, tok.Is("STRINGTABLE"))
	assert.False(t, tok.Is("MENU"))

	notLiteral := Token{Kind: Number, Text: "STRINGTABLE"}
	assert.False(t, notLiteral.Is("STRINGTABLE"))
}
