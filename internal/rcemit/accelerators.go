package rcemit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/numlit"
)

const (
	accNoInvert MemoryFlagBit = 0x02
	accShift    MemoryFlagBit = 0x04
	accControl  MemoryFlagBit = 0x08
	accAlt      MemoryFlagBit = 0x10
	accVirtKey  MemoryFlagBit = 0x01
	accLast     MemoryFlagBit = 0x80
)

// MemoryFlagBit is a bit within an ACCELTABLEENTRY's flags word.
type MemoryFlagBit uint16

// emitAccelerators implements spec §4.5's ACCELERATORS emitter: an array
// of 8-byte entries, the last of which has bit 0x80 set.
func emitAccelerators(out *bytes.Buffer, n *ast.Accelerators, ctx *Context, defaults Defaults) error {
	kind, typeVal, err := resourceTypeAndKind(&n.Header)
	if err != nil {
		return err
	}

	var data bytes.Buffer
	for i, entry := range n.Entries {
		event, flags, err := evalAcceleratorEvent(entry)
		if err != nil {
			return err
		}
		id, err := EvalNumber(entry.ID)
		if err != nil {
			return err
		}
		if i == len(n.Entries)-1 {
			flags |= accLast
		}
		binary.Write(&data, binary.LittleEndian, uint16(flags))
		binary.Write(&data, binary.LittleEndian, event)
		binary.Write(&data, binary.LittleEndian, uint16(id.Value))
		binary.Write(&data, binary.LittleEndian, uint16(0)) // pad
	}

	return writeSimpleResource(out, &n.Header, kind, typeVal, ctx, defaults, data.Bytes())
}

// evalAcceleratorEvent implements the accelerator-key algorithm from
// spec §4.5.
func evalAcceleratorEvent(entry ast.AcceleratorEntry) (event uint16, flags MemoryFlagBit, err error) {
	if entry.Shift {
		flags |= accShift
	}
	if entry.Control {
		flags |= accControl
	}
	if entry.Alt {
		flags |= accAlt
	}
	if entry.NoInvert {
		flags |= accNoInvert
	}
	if entry.VirtKey {
		flags |= accVirtKey
	}

	if entry.EventNumber != nil {
		num, err := EvalNumber(*entry.EventNumber)
		if err != nil {
			return 0, 0, err
		}
		return uint16(num.Value), flags, nil
	}

	text := entry.EventString.Text
	runes := []rune(text)
	// unescape \^ or literal caret handled by caller -- entry.EventString
	// carries the literal, already-unescaped string.
	if len(runes) >= 2 && runes[0] == '^' {
		if len(runes) > 2 {
			return 0, 0, fmt.Errorf("invalid accelerator %q: control sequences take exactly one character", text)
		}
		c := runes[1]
		switch {
		case c == '^':
			return uint16('^'), flags, nil
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
			fallthrough
		case c >= 'A' && c <= 'Z':
			return uint16(c - 0x40), flags, nil
		default:
			return 0, 0, fmt.Errorf("invalid accelerator %q: ^%c is not A-Z", text, c)
		}
	}

	switch len(runes) {
	case 0:
		return 0, 0, fmt.Errorf("empty accelerator string")
	case 1:
		c := runes[0]
		if entry.VirtKey && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		return encodeAcceleratorRune(c), flags, nil
	case 2:
		first, second := runes[0], runes[1]
		return uint16(first)<<8 | uint16(second&0xFF), flags, nil
	default:
		if runes[2] == 0 {
			first, second := runes[0], runes[1]
			return uint16(first)<<8 | uint16(second&0xFF), flags, nil
		}
		return 0, 0, fmt.Errorf("invalid accelerator %q: strings of 3+ characters must be NUL-terminated", text)
	}
}

// encodeAcceleratorRune applies the fixed surrogate-based transform for
// codepoints >= 0x10000 mentioned in spec §4.5 (folded into the low 16
// bits via UTF-16 surrogate encoding, matching how a single non-BMP
// character is represented as a virtual-key/char code on Windows).
func encodeAcceleratorRune(r rune) uint16 {
	if r < 0x10000 {
		return uint16(r)
	}
	units := numlit.NameOrdinalFromRunes([]rune{r}).Name
	if len(units) > 0 {
		return units[0]
	}
	return 0xFFFD
}
