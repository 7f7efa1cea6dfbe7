package extfile

import (
	"encoding/binary"
	"fmt"
)

// IconDirEntry is one 16-byte entry of an ICO/CUR directory (spec §4.5).
type IconDirEntry struct {
	Width, Height, ColorCount, Reserved uint8
	Planes, BitCount                   uint16
	BytesInRes                         uint32
	ImageOffset                        uint32
}

// IconDirType distinguishes ICO (1) from CUR (2) directories.
type IconDirType uint16

const (
	IconDir   IconDirType = 1
	CursorDir IconDirType = 2
)

// IconDirectory is a parsed ICO/CUR file: a directory header plus one
// entry and one raw image payload per sub-resource.
type IconDirectory struct {
	Type    IconDirType
	Entries []IconDirEntry
	Images  [][]byte
}

// ParseIconDirectory splits a .ico/.cur file into its directory header,
// per-entry directory records, and raw image payloads, per spec §4.5.
func ParseIconDirectory(data []byte) (*IconDirectory, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("icon/cursor file too short for directory header")
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	typ := binary.LittleEndian.Uint16(data[2:4])
	count := binary.LittleEndian.Uint16(data[4:6])
	if reserved != 0 || (typ != 1 && typ != 2) {
		return nil, fmt.Errorf("unrecognized icon/cursor directory header")
	}

	dir := &IconDirectory{Type: IconDirType(typ)}
	offset := 6
	for i := 0; i < int(count); i++ {
		if len(data) < offset+16 {
			return nil, fmt.Errorf("icon/cursor directory truncated at entry %d", i)
		}
		e := IconDirEntry{
			Width:      data[offset+0],
			Height:     data[offset+1],
			ColorCount: data[offset+2],
			Reserved:   data[offset+3],
			Planes:     binary.LittleEndian.Uint16(data[offset+4 : offset+6]),
			BitCount:   binary.LittleEndian.Uint16(data[offset+6 : offset+8]),
			BytesInRes: binary.LittleEndian.Uint32(data[offset+8 : offset+12]),
			ImageOffset: binary.LittleEndian.Uint32(data[offset+12 : offset+16]),
		}
		dir.Entries = append(dir.Entries, e)
		offset += 16
	}

	for i, e := range dir.Entries {
		lo, hi := int(e.ImageOffset), int(e.ImageOffset)+int(e.BytesInRes)
		if lo < 0 || hi > len(data) || lo > hi {
			return nil, fmt.Errorf("icon/cursor entry %d data out of bounds", i)
		}
		dir.Images = append(dir.Images, data[lo:hi])
	}
	return dir, nil
}
