package rcemit

import (
	"testing"

	"github.com/holocm/rcc/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFlags(t *testing.T) {
	assert.Equal(t, FlagMoveable|FlagDiscardable, DefaultFlags(KindIcon))
	assert.Equal(t, FlagMoveable|FlagShared, DefaultFlags(KindRCData))
	assert.Equal(t, FlagMoveable|FlagShared|FlagDiscardable, DefaultFlags(KindDialog))
	assert.Equal(t, FlagMoveable|FlagPreload, DefaultFlags(KindFontDir))
}

func TestApplyAttributeKeywordsFixedClearsMoveableAndDiscardable(t *testing.T) {
	f := ApplyAttributeKeywords(FlagMoveable|FlagDiscardable, ast.Attributes{Fixed: true})
	assert.Equal(t, MemoryFlags(0), f)
}

func TestApplyAttributeKeywordsDiscardableImpliesMoveableShared(t *testing.T) {
	f := ApplyAttributeKeywords(0, ast.Attributes{Discardable: true})
	assert.Equal(t, FlagDiscardable|FlagMoveable|FlagShared, f)
}

func TestApplyAttributeKeywordsLoadOnCallClearsPreload(t *testing.T) {
	f := ApplyAttributeKeywords(FlagPreload, ast.Attributes{LoadOnCall: true})
	assert.Equal(t, MemoryFlags(0), f)
}

func TestApplyAttributeKeywordsNonSharedClearsShared(t *testing.T) {
	f := ApplyAttributeKeywords(FlagShared, ast.Attributes{NonShared: true})
	assert.Equal(t, MemoryFlags(0), f)
}
