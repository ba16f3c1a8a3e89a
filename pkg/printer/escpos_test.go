package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_InitAndCut(t *testing.T) {
	data := NewDocument(32).PartialCut().Bytes()

	require.GreaterOrEqual(t, len(data), 5)
	assert.Equal(t, []byte{ESC, '@'}, data[:2])
	assert.Equal(t, []byte{GS, 'V', 0x01}, data[len(data)-3:])
}

func TestDocument_KeyValueAlignment(t *testing.T) {
	data := NewDocument(32).KeyValue("Subtotal:", "320.00").Bytes()
	line := strings.TrimSuffix(string(data[2:]), "\n")

	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Subtotal:"))
	assert.True(t, strings.HasSuffix(line, "320.00"))
}

func TestDocument_KeyValueNeverCollides(t *testing.T) {
	// key + value wider than the paper still keeps one separating space
	data := NewDocument(10).KeyValue("Reference:", "ORD20260828").Bytes()
	assert.Contains(t, string(data), "Reference: ORD20260828")
}

func TestDocument_ItemLine(t *testing.T) {
	data := NewDocument(32).ItemLine(2, "Paneer Butter Masala", "240.00").Bytes()
	line := strings.TrimSuffix(string(data[2:]), "\n")

	assert.True(t, strings.HasPrefix(line, "2x Paneer Butter Masala"))
	assert.True(t, strings.HasSuffix(line, "240.00"))
}

func TestDocument_Separator(t *testing.T) {
	data := NewDocument(32).Separator('-').Bytes()
	assert.Contains(t, string(data), strings.Repeat("-", 32))
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("x")))

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)
}
