package extfile

import (
	"encoding/binary"
	"fmt"
)

// bitmapFileHeaderSize is the size of the 14-byte BITMAPFILEHEADER that
// precedes the DIB data in a .bmp file on disk (spec §4.5).
const bitmapFileHeaderSize = 14

// StripBitmapFileHeader validates a .bmp file's header and returns the
// payload with its 14-byte BITMAPFILEHEADER removed, per spec §4.5:
//
//   - the DIB header size must be exactly 12 (OS/2 BITMAPCOREHEADER) or
//     >= 40 (BITMAPINFOHEADER and later);
//   - rcc refuses the reference compiler's documented over-read-for-
//     large-palette miscompile; instead, if the declared biClrUsed times
//     the palette entry size would exceed the remaining bytes, this
//     returns an error rather than reproducing the miscompile.
func StripBitmapFileHeader(data []byte) ([]byte, error) {
	if len(data) < bitmapFileHeaderSize+4 {
		return nil, fmt.Errorf("bitmap file too short for BITMAPFILEHEADER")
	}
	payload := data[bitmapFileHeaderSize:]

	dibHeaderSize := binary.LittleEndian.Uint32(payload[0:4])
	switch {
	case dibHeaderSize == 12:
		// BITMAPCOREHEADER: no biClrUsed field to validate.
		return payload, nil
	case dibHeaderSize >= 40:
		if err := validatePalette(payload, dibHeaderSize); err != nil {
			return nil, err
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unrecognized bitmap header size %d", dibHeaderSize)
	}
}

func validatePalette(payload []byte, dibHeaderSize uint32) error {
	if len(payload) < int(dibHeaderSize) {
		return fmt.Errorf("bitmap DIB header truncated")
	}
	// BITMAPINFOHEADER layout: ... biBitCount at offset 14, biClrUsed at
	// offset 32 (relative to the DIB header start), both only meaningful
	// when the header is large enough to contain them.
	if dibHeaderSize < 36 {
		return nil
	}
	biBitCount := binary.LittleEndian.Uint16(payload[14:16])
	biClrUsed := binary.LittleEndian.Uint32(payload[32:36])
	if biClrUsed == 0 {
		if biBitCount > 8 {
			return nil // no palette expected
		}
		biClrUsed = 1 << biBitCount
	}
	paletteBytes := uint64(biClrUsed) * 4 // RGBQUAD entries
	remaining := uint64(len(payload)) - uint64(dibHeaderSize)
	if paletteBytes > remaining {
		return fmt.Errorf("declared palette size (%d colors) exceeds remaining file bytes", biClrUsed)
	}
	return nil
}
