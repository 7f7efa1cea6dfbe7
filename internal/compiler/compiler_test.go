package compiler

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/holocm/rcc/internal/rcconfig"
	"github.com/holocm/rcc/internal/resfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSource(t *testing.T, source string) resfmt.Record {
	t.Helper()
	result := Compile([]byte(source), rcconfig.DefaultConfig(), Options{})
	require.NoError(t, result.Err())
	records, err := resfmt.ReadRecords(result.Output)
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestCompileRCData(t *testing.T) {
	rec := compileSource(t, `1 RCDATA { 1, 2, "hi" }`)
	assert.Equal(t, "#10", rec.Type)
	assert.Equal(t, "#1", rec.Name)
	assert.Equal(t, []byte{1, 0, 2, 0, 'h', 'i'}, rec.Data)
}

func TestCompileStringTable(t *testing.T) {
	result := Compile([]byte(`STRINGTABLE { 1, "one" 2, "two" }`), rcconfig.DefaultConfig(), Options{})
	require.NoError(t, result.Err())
	records, err := resfmt.ReadRecords(result.Output)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "#6", records[0].Type) // RT_STRING
}

func TestCompileTopLevelLanguagePropagates(t *testing.T) {
	rec := compileSource(t, "LANGUAGE 9, 1\n1 RCDATA { 1 }")
	assert.Equal(t, uint16(9|1<<10), rec.LanguageID)
}

func TestCompileSyntaxErrorProducesDiagnostics(t *testing.T) {
	result := Compile([]byte(`1 RCDATA { `), rcconfig.DefaultConfig(), Options{})
	assert.Error(t, result.Err())
	assert.NotEmpty(t, result.Diagnostics)
}

func TestCompileUserDefinedTypeByOrdinal(t *testing.T) {
	rec := compileSource(t, `1 300 { 1 }`) // 300 >= 256 forces user-defined
	assert.Equal(t, "#300", rec.Type)
}

func TestCompileDialog(t *testing.T) {
	rec := compileSource(t, `1 DIALOG 0, 0, 200, 100
	CAPTION "Hello"
	BEGIN
		LTEXT "Some text", 100, 10, 10, 80, 10
	END`)
	assert.Equal(t, "#5", rec.Type) // RT_DIALOG
	assert.Equal(t, "#1", rec.Name)
	assert.NotEmpty(t, rec.Data)
}

func TestCompileMenu(t *testing.T) {
	rec := compileSource(t, `1 MENU {
		POPUP "&File" {
			MENUITEM "&Open", 100
			MENUITEM SEPARATOR
			MENUITEM "E&xit", 101
		}
	}`)
	assert.Equal(t, "#4", rec.Type) // RT_MENU
	assert.NotEmpty(t, rec.Data)
}

func TestCompileAccelerators(t *testing.T) {
	rec := compileSource(t, `1 ACCELERATORS { "^C", 1, ASCII  "D", 2, VIRTKEY, CONTROL }`)
	assert.Equal(t, "#9", rec.Type) // RT_ACCELERATOR
	// two 8-byte ACCEL entries, the second flagged with the "last entry" bit
	assert.Len(t, rec.Data, 16)
}

func TestCompileVersionInfo(t *testing.T) {
	rec := compileSource(t, `1 VERSIONINFO
	FILEVERSION 1, 0, 0, 1
	PRODUCTVERSION 1, 0, 0, 1
	BEGIN
		BLOCK "StringFileInfo"
		BEGIN
			BLOCK "040904B0"
			BEGIN
				VALUE "ProductName", "Test Product"
			END
		END
	END`)
	assert.Equal(t, "#16", rec.Type) // RT_VERSION
	assert.NotEmpty(t, rec.Data)
}

func TestCompileIconGroupEmitsSubImagesAndGroup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.ico"), makeTestIcon(), 0644))

	result := Compile([]byte(`1 ICON "app.ico"`), rcconfig.DefaultConfig(), Options{BaseDirectory: dir})
	require.NoError(t, result.Err())
	records, err := resfmt.ReadRecords(result.Output)
	require.NoError(t, err)
	require.Len(t, records, 2) // one RT_ICON sub-image, one RT_GROUP_ICON
	assert.Equal(t, "#3", records[0].Type)  // RT_ICON
	assert.Equal(t, "#14", records[1].Type) // RT_GROUP_ICON
	assert.Equal(t, "#1", records[1].Name)
}

func TestCompileDlgInclude(t *testing.T) {
	rec := compileSource(t, `1 DLGINCLUDE "resource.h"`)
	assert.Equal(t, "DLGINCLUDE", rec.Type)
	assert.Equal(t, append([]byte("resource.h"), 0), rec.Data)
}

func TestCompileToolbar(t *testing.T) {
	rec := compileSource(t, `1 TOOLBAR 16, 15
	BEGIN
		BUTTON 1
		SEPARATOR
		BUTTON 2
	END`)
	assert.Equal(t, "TOOLBAR", rec.Type)
	// version, width, height, count, then one u16 id per entry (0 for SEPARATOR)
	assert.Equal(t, []byte{
		1, 0,
		16, 0,
		15, 0,
		3, 0,
		1, 0,
		0, 0,
		2, 0,
	}, rec.Data)
}

func TestCompileDlgInit(t *testing.T) {
	rec := compileSource(t, `1 DLGINIT
	BEGIN
		100, 0x403, "ab"
	END`)
	assert.Equal(t, "DLGINIT", rec.Type)
	// one record (id, message, byte length, payload padded to a 4-byte
	// boundary) plus the 8-byte 0xFFFF terminator
	assert.Equal(t, []byte{
		100, 0, // control id
		0x03, 0x04, // message
		2, 0, 0, 0, // byte length
		'a', 'b', 0, 0, // payload, padded to 4 bytes
		0xFF, 0xFF, 0, 0, 0, 0, 0, 0, // terminator
	}, rec.Data)
}

// makeTestIcon builds a minimal single-image ICONDIR file: a 6-byte
// header, one 16-byte directory entry, and a placeholder image payload.
func makeTestIcon() []byte {
	image := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[2:4], 1) // RES_ICON
	binary.LittleEndian.PutUint16(header[4:6], 1) // one entry
	entry := make([]byte, 16)
	entry[0], entry[1] = 32, 32 // width, height
	entry[4] = 1                // planes low byte
	binary.LittleEndian.PutUint32(entry[8:12], uint32(len(image)))
	binary.LittleEndian.PutUint32(entry[12:16], uint32(len(header)+len(entry)))
	return append(append(header, entry...), image...)
}
