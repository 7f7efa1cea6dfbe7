package extfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPrefersBaseDirectory(t *testing.T) {
	base := t.TempDir()
	include := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "icon.ico"), []byte("base"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(include, "icon.ico"), []byte("include"), 0644))

	r := NewResolver(base, []string{include})
	path, err := r.Resolve("icon.ico")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "icon.ico"), path)
}

func TestResolverFallsBackToIncludeDirectories(t *testing.T) {
	base := t.TempDir()
	include := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(include, "icon.ico"), []byte("include"), 0644))

	r := NewResolver(base, []string{include})
	path, err := r.Resolve("icon.ico")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(include, "icon.ico"), path)
}

func TestResolverMissingFile(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)
	_, err := r.Resolve("missing.ico")
	assert.Error(t, err)
}

func TestResolverOpenAndReadBytes(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "data.bin"), []byte("hello"), 0644))

	r := NewResolver(base, nil)
	mf, err := r.Open("data.bin")
	require.NoError(t, err)
	defer mf.Close()
	assert.Equal(t, []byte("hello"), mf.Bytes())
}

func TestResolverOpenEmptyFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "empty.bin"), nil, 0644))

	r := NewResolver(base, nil)
	mf, err := r.Open("empty.bin")
	require.NoError(t, err)
	defer mf.Close()
	assert.Empty(t, mf.Bytes())
}
