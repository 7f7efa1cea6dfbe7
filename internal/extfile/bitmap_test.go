package extfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBitmapFile(dibHeader []byte, extra []byte) []byte {
	file := make([]byte, bitmapFileHeaderSize)
	file = append(file, dibHeader...)
	file = append(file, extra...)
	return file
}

func makeBitmapInfoHeader(biBitCount uint16, biClrUsed uint32) []byte {
	h := make([]byte, 40)
	binary.LittleEndian.PutUint32(h[0:4], 40)
	binary.LittleEndian.PutUint16(h[14:16], biBitCount)
	binary.LittleEndian.PutUint32(h[32:36], biClrUsed)
	return h
}

func TestStripBitmapFileHeaderTooShort(t *testing.T) {
	_, err := StripBitmapFileHeader(make([]byte, 10))
	assert.Error(t, err)
}

func TestStripBitmapFileHeaderOS2CoreHeader(t *testing.T) {
	core := make([]byte, 12)
	binary.LittleEndian.PutUint32(core[0:4], 12)
	file := makeBitmapFile(core, nil)

	payload, err := StripBitmapFileHeader(file)
	require.NoError(t, err)
	assert.Equal(t, core, payload)
}

func TestStripBitmapFileHeaderUnrecognizedDibSize(t *testing.T) {
	bad := make([]byte, 20)
	binary.LittleEndian.PutUint32(bad[0:4], 20)
	file := makeBitmapFile(bad, nil)

	_, err := StripBitmapFileHeader(file)
	assert.Error(t, err)
}

func TestStripBitmapFileHeaderPaletteFitsExactly(t *testing.T) {
	header := makeBitmapInfoHeader(8, 2)
	palette := make([]byte, 2*4)
	file := makeBitmapFile(header, palette)

	payload, err := StripBitmapFileHeader(file)
	require.NoError(t, err)
	assert.Len(t, payload, 40+8)
}

func TestStripBitmapFileHeaderPaletteExceedsFileIsRefused(t *testing.T) {
	header := makeBitmapInfoHeader(8, 10) // declares 10 colors
	palette := make([]byte, 2*4)          // but only provides 2
	file := makeBitmapFile(header, palette)

	_, err := StripBitmapFileHeader(file)
	assert.Error(t, err)
}

func TestStripBitmapFileHeaderHighColorNoImpliedPalette(t *testing.T) {
	header := makeBitmapInfoHeader(24, 0) // 24bpp, biClrUsed=0 means no palette
	file := makeBitmapFile(header, nil)

	_, err := StripBitmapFileHeader(file)
	assert.NoError(t, err)
}
