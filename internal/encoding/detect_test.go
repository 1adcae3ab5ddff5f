package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-finance/hucha/internal/encoding"
)

func TestToUTF8_Passthrough(t *testing.T) {
	// Valid UTF-8 with Spanish characters passes through unchanged.
	input := []byte("Recibo de luz\nImporte: 599,90 €\nVencimiento: 15 de marzo\n")

	got, err := encoding.ToUTF8(input)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestToUTF8_Latin1(t *testing.T) {
	// Windows-1252 encoded "Número de crédito": é = 0xE9, ú = 0xFA.
	input := []byte{
		'N', 0xFA, 'm', 'e', 'r', 'o', ' ', 'd', 'e', ' ',
		'c', 'r', 0xE9, 'd', 'i', 't', 'o', '\n',
	}

	got, err := encoding.ToUTF8(input)
	require.NoError(t, err)
	assert.Equal(t, "Número de crédito\n", string(got))
}

func TestToUTF8_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Recibo Telmex\n")...)

	got, err := encoding.ToUTF8(input)
	require.NoError(t, err)
	assert.Equal(t, "Recibo Telmex\n", string(got))
}

func TestToUTF8_UTF16LE(t *testing.T) {
	// "Pago" in UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'P', 0x00, 'a', 0x00, 'g', 0x00, 'o', 0x00}

	got, err := encoding.ToUTF8(input)
	require.NoError(t, err)
	assert.Equal(t, "Pago", string(got))
}
