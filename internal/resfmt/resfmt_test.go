package resfmt

import (
	"bytes"
	"testing"

	"github.com/holocm/rcc/internal/numlit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNameOrOrdinal(t *testing.T) {
	var buf bytes.Buffer
	WriteNameOrOrdinal(&buf, numlit.Ordinal(5))
	assert.Equal(t, []byte{0xFF, 0xFF, 5, 0}, buf.Bytes())
}

func TestAlign4(t *testing.T) {
	assert.Equal(t, 0, Align4(0))
	assert.Equal(t, 4, Align4(1))
	assert.Equal(t, 4, Align4(4))
	assert.Equal(t, 8, Align4(5))
}

func TestWriteResourceRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(EmptySentinelHeader)
	WriteResource(&buf, Header{
		Type:       numlit.Ordinal(10),
		Name:       numlit.ClassifyLiteral("MYDATA"),
		LanguageID: 0x0409,
	}, []byte{1, 2, 3})

	records, err := ReadRecords(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "#10", records[0].Type)
	assert.Equal(t, "MYDATA", records[0].Name)
	assert.Equal(t, uint16(0x0409), records[0].LanguageID)
	assert.Equal(t, []byte{1, 2, 3}, records[0].Data)
}

func TestWriteNumber(t *testing.T) {
	var buf bytes.Buffer
	WriteNumber(&buf, numlit.Number{Value: 0x1234, IsLong: false})
	assert.Equal(t, []byte{0x34, 0x12}, buf.Bytes())

	buf.Reset()
	WriteNumber(&buf, numlit.Number{Value: 0x12345678, IsLong: true})
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, buf.Bytes())
}
