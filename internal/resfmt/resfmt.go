/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package resfmt implements the binary ".res" container primitives: the
// resource header, NameOrOrdinal wire encoding, and 4-byte alignment
// padding, per spec §3 and §6.
//
// All fields are little-endian. There is no higher-level ".res framing"
// library anywhere in the retrieval pack, so this builds directly on
// encoding/binary, the same primitive holo-build's own rpm/header.go uses
// for its (big-endian) RPM header serialization -- see DESIGN.md.
package resfmt

import (
	"bytes"
	"encoding/binary"

	"github.com/holocm/rcc/internal/numlit"
)

// EmptySentinelHeader is the mandatory 32-byte empty resource that begins
// every ".res" stream (spec §6).
var EmptySentinelHeader = []byte{
	0, 0, 0, 0, // data_size = 0
	32, 0, 0, 0, // header_size = 32
	0xFF, 0xFF, 0, 0, // type = Ordinal(0)
	0xFF, 0xFF, 0, 0, // name = Ordinal(0)
	0, 0, 0, 0, // data_version = 0
	0, 0, // memory_flags = 0
	0, 0, // language_id = 0
	0, 0, 0, 0, // version = 0
	0, 0, 0, 0, // characteristics = 0
}

// WriteNameOrOrdinal appends the on-disk form of a NameOrOrdinal: two
// little-endian u16 words 0xFFFF followed by the ordinal value, or the
// UTF-16LE code units of a Name followed by a single 0x0000 code unit.
func WriteNameOrOrdinal(buf *bytes.Buffer, v numlit.NameOrOrdinal) {
	if v.IsOrdinal {
		binary.Write(buf, binary.LittleEndian, uint16(0xFFFF))
		binary.Write(buf, binary.LittleEndian, v.Ordinal)
		return
	}
	for _, unit := range v.Name {
		binary.Write(buf, binary.LittleEndian, unit)
	}
	binary.Write(buf, binary.LittleEndian, uint16(0))
}

// SizeOfNameOrOrdinal returns the on-disk byte length of a NameOrOrdinal.
func SizeOfNameOrOrdinal(v numlit.NameOrOrdinal) int {
	if v.IsOrdinal {
		return 4
	}
	return 2 * (len(v.Name) + 1)
}

// PadTo4 appends zero bytes until buf's length is a multiple of 4.
func PadTo4(buf *bytes.Buffer) {
	for buf.Len()%4 != 0 {
		buf.WriteByte(0)
	}
}

// Align4 rounds n up to the next multiple of 4.
func Align4(n int) int {
	return (n + 3) &^ 3
}

// Header describes one resource's header fields, prior to serialization.
type Header struct {
	Type            numlit.NameOrOrdinal
	Name            numlit.NameOrOrdinal
	DataVersion     uint32
	MemoryFlags     uint16
	LanguageID      uint16
	Version         uint32
	Characteristics uint32
}

// WriteResource appends one complete resource block (header + data,
// 4-byte-padded) to buf, per spec §3 and §6.
func WriteResource(buf *bytes.Buffer, h Header, data []byte) {
	var hdr bytes.Buffer
	WriteNameOrOrdinal(&hdr, h.Type)
	WriteNameOrOrdinal(&hdr, h.Name)
	PadTo4(&hdr)

	headerSize := 8 + hdr.Len() + 16

	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	binary.Write(buf, binary.LittleEndian, uint32(headerSize))
	buf.Write(hdr.Bytes())
	binary.Write(buf, binary.LittleEndian, h.DataVersion)
	binary.Write(buf, binary.LittleEndian, h.MemoryFlags)
	binary.Write(buf, binary.LittleEndian, h.LanguageID)
	binary.Write(buf, binary.LittleEndian, h.Version)
	binary.Write(buf, binary.LittleEndian, h.Characteristics)
	buf.Write(data)
	PadTo4(buf)
}

// WriteNumber appends a raw-data number at its spec-mandated width: 2
// bytes (low 16 bits) for a short number, 4 bytes for a long one.
func WriteNumber(buf *bytes.Buffer, n numlit.Number) {
	if n.IsLong {
		binary.Write(buf, binary.LittleEndian, n.Value)
	} else {
		binary.Write(buf, binary.LittleEndian, uint16(n.Value))
	}
}
