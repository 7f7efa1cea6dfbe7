/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

package resfmt

import (
	"encoding/binary"
	"fmt"
)

// Record is one decoded resource block, the inverse of WriteResource.
type Record struct {
	Type            string
	Name            string
	DataVersion     uint32
	MemoryFlags     uint16
	LanguageID      uint16
	Version         uint32
	Characteristics uint32
	Data            []byte
}

// ReadRecords decodes a ".res" byte stream into its constituent Records,
// skipping the mandatory leading empty sentinel header. It is the dump-side
// counterpart of WriteResource, grounded the same way dump-package's
// impl.RecognizeAndDump walks a package archive structurally instead of
// trusting a single top-level format tag.
func ReadRecords(data []byte) ([]Record, error) {
	var records []Record
	pos := 0
	for pos < len(data) {
		rec, next, err := readOneRecord(data, pos)
		if err != nil {
			return nil, err
		}
		if !(rec.Type == "#0" && rec.Name == "#0" && len(rec.Data) == 0) {
			records = append(records, rec)
		}
		pos = next
	}
	return records, nil
}

func readOneRecord(data []byte, pos int) (Record, int, error) {
	const minHeader = 8
	if pos+minHeader > len(data) {
		return Record{}, 0, fmt.Errorf("truncated resource header at offset %d", pos)
	}
	dataSize := binary.LittleEndian.Uint32(data[pos:])
	headerSize := binary.LittleEndian.Uint32(data[pos+4:])
	if int(headerSize) < minHeader || pos+int(headerSize) > len(data) {
		return Record{}, 0, fmt.Errorf("invalid header size at offset %d", pos)
	}

	cursor := pos + 8
	typeName, cursor, err := readNameOrOrdinalField(data, cursor)
	if err != nil {
		return Record{}, 0, err
	}
	name, cursor, err := readNameOrOrdinalField(data, cursor)
	if err != nil {
		return Record{}, 0, err
	}
	// Skip padding up to the next 4-byte boundary within the header.
	headerEnd := pos + int(headerSize)
	fieldsEnd := headerEnd - 16
	if fieldsEnd < cursor {
		return Record{}, 0, fmt.Errorf("invalid header at offset %d", pos)
	}
	cursor = fieldsEnd

	rec := Record{Type: typeName, Name: name}
	rec.DataVersion = binary.LittleEndian.Uint32(data[cursor:])
	rec.MemoryFlags = binary.LittleEndian.Uint16(data[cursor+4:])
	rec.LanguageID = binary.LittleEndian.Uint16(data[cursor+6:])
	rec.Version = binary.LittleEndian.Uint32(data[cursor+8:])
	rec.Characteristics = binary.LittleEndian.Uint32(data[cursor+12:])

	dataStart := headerEnd
	dataEnd := dataStart + int(dataSize)
	if dataEnd > len(data) {
		return Record{}, 0, fmt.Errorf("resource data at offset %d overruns stream", dataStart)
	}
	rec.Data = data[dataStart:dataEnd]

	next := Align4(dataEnd)
	return rec, next, nil
}

// readNameOrOrdinalField decodes one NameOrOrdinal field starting at pos,
// returning a display string ("#123" for an ordinal, the literal name
// otherwise) and the offset just past the field.
func readNameOrOrdinalField(data []byte, pos int) (string, int, error) {
	if pos+2 > len(data) {
		return "", 0, fmt.Errorf("truncated name/ordinal field at offset %d", pos)
	}
	if binary.LittleEndian.Uint16(data[pos:]) == 0xFFFF {
		if pos+4 > len(data) {
			return "", 0, fmt.Errorf("truncated ordinal at offset %d", pos)
		}
		ordinal := binary.LittleEndian.Uint16(data[pos+2:])
		return fmt.Sprintf("#%d", ordinal), pos + 4, nil
	}

	var units []uint16
	cursor := pos
	for {
		if cursor+2 > len(data) {
			return "", 0, fmt.Errorf("unterminated name at offset %d", pos)
		}
		u := binary.LittleEndian.Uint16(data[cursor:])
		cursor += 2
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return decodeUTF16(units), cursor, nil
}

func decodeUTF16(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if r >= 0xD800 && r <= 0xDBFF && i+1 < len(units) {
			lo := rune(units[i+1])
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r = ((r - 0xD800) << 10) + (lo - 0xDC00) + 0x10000
				i++
			}
		}
		runes = append(runes, r)
	}
	return string(runes)
}
