package numlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberLiteral(t *testing.T) {
	for _, c := range []struct {
		text   string
		value  uint32
		isLong bool
	}{
		{"0", 0, false},
		{"65535", 65535, false},
		{"65536", 65536, false},
		{"1L", 1, true},
		{"1l", 1, true},
		{"0x1234", 0x1234, false},
		{"0X1234", 0x1234, false},
		{"0x12345", 0x1234, false}, // only first four hex digits participate
		{"0x1g34", 0x1, false},     // non-hex char terminates the value
		{"-1", uint32(0xFFFFFFFF), false},
		{"~0", uint32(0xFFFFFFFF), false},
		{"¹²³", 123, false},
	} {
		t.Run(c.text, func(t *testing.T) {
			n, err := ParseNumberLiteral(c.text)
			require.NoError(t, err)
			assert.Equal(t, c.value, n.Value)
			assert.Equal(t, c.isLong, n.IsLong)
		})
	}
}

func TestParseNumberLiteralErrors(t *testing.T) {
	for _, text := range []string{"", "abc"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseNumberLiteral(text)
			assert.Error(t, err)
		})
	}
}

func TestEval(t *testing.T) {
	left := Number{Value: 0xFFFFFFFF, IsLong: false}
	right := Number{Value: 1, IsLong: true}

	sum := Eval(OpAdd, left, right)
	assert.Equal(t, uint32(0), sum.Value) // wraps modulo 2^32
	assert.True(t, sum.IsLong)            // disjoined from either operand

	diff := Eval(OpSub, Number{Value: 0}, Number{Value: 1})
	assert.Equal(t, uint32(0xFFFFFFFF), diff.Value)

	assert.Equal(t, uint32(0xFF), Eval(OpOr, Number{Value: 0x0F}, Number{Value: 0xF0}).Value)
	assert.Equal(t, uint32(0x0F), Eval(OpAnd, Number{Value: 0xFF}, Number{Value: 0x0F}).Value)
}

func TestNot(t *testing.T) {
	n := Not(Number{Value: 0, IsLong: true})
	assert.Equal(t, uint32(0xFFFFFFFF), n.Value)
	assert.True(t, n.IsLong)
}

func TestNumberSizeOf(t *testing.T) {
	assert.Equal(t, 2, Number{IsLong: false}.SizeOf())
	assert.Equal(t, 4, Number{IsLong: true}.SizeOf())
}
