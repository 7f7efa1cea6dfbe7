package extfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIconDirectoryFile(typ uint16, entries []IconDirEntry, images [][]byte) []byte {
	var data []byte
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[2:4], typ)
	binary.LittleEndian.PutUint16(header[4:6], uint16(len(entries)))
	data = append(data, header...)

	imageOffset := 6 + len(entries)*16
	var imageBytes []byte
	for i, e := range entries {
		e.ImageOffset = uint32(imageOffset)
		e.BytesInRes = uint32(len(images[i]))
		entry := make([]byte, 16)
		entry[0], entry[1], entry[2], entry[3] = e.Width, e.Height, e.ColorCount, e.Reserved
		binary.LittleEndian.PutUint16(entry[4:6], e.Planes)
		binary.LittleEndian.PutUint16(entry[6:8], e.BitCount)
		binary.LittleEndian.PutUint32(entry[8:12], e.BytesInRes)
		binary.LittleEndian.PutUint32(entry[12:16], e.ImageOffset)
		data = append(data, entry...)
		imageOffset += len(images[i])
		imageBytes = append(imageBytes, images[i]...)
	}
	data = append(data, imageBytes...)
	return data
}

func TestParseIconDirectorySingleEntry(t *testing.T) {
	image := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	file := makeIconDirectoryFile(1, []IconDirEntry{{Width: 32, Height: 32, Planes: 1, BitCount: 32}}, [][]byte{image})

	dir, err := ParseIconDirectory(file)
	require.NoError(t, err)
	assert.Equal(t, IconDir, dir.Type)
	require.Len(t, dir.Entries, 1)
	assert.Equal(t, uint8(32), dir.Entries[0].Width)
	require.Len(t, dir.Images, 1)
	assert.Equal(t, image, dir.Images[0])
}

func TestParseIconDirectoryTooShort(t *testing.T) {
	_, err := ParseIconDirectory([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestParseIconDirectoryBadHeader(t *testing.T) {
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[2:4], 99) // not 1 or 2
	_, err := ParseIconDirectory(header)
	assert.Error(t, err)
}

func TestParseIconDirectoryTruncatedEntry(t *testing.T) {
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[2:4], 1)
	binary.LittleEndian.PutUint16(header[4:6], 1) // claims 1 entry but provides none
	_, err := ParseIconDirectory(header)
	assert.Error(t, err)
}

func TestParseIconDirectoryOutOfBoundsImage(t *testing.T) {
	entry := make([]byte, 16)
	binary.LittleEndian.PutUint32(entry[8:12], 100) // BytesInRes
	binary.LittleEndian.PutUint32(entry[12:16], 1000) // ImageOffset way past EOF
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[2:4], 2)
	binary.LittleEndian.PutUint16(header[4:6], 1)
	data := append(header, entry...)

	_, err := ParseIconDirectory(data)
	assert.Error(t, err)
}
