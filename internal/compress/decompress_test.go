package compress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermetroid/internal/smerr"
)

func hexBytes(vals ...byte) []byte { return vals }

// TestDecompress_Laws exercises every row of the decompressor law table:
// direct copy, byte/word/sigma fill, library/xor/subtract copy, and the
// extended subtract-xor form.
func TestDecompress_Laws(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"direct_copy", hexBytes(0x02, 0x01, 0x02, 0x03, 0xff), hexBytes(0x01, 0x02, 0x03)},
		{"byte_fill", hexBytes(0x22, 0x01, 0xff), hexBytes(0x01, 0x01, 0x01)},
		{"word_fill_aligned", hexBytes(0x43, 0x55, 0xaa, 0xff), hexBytes(0x55, 0xaa, 0x55, 0xaa)},
		{"word_fill_unaligned", hexBytes(0x44, 0x55, 0xaa, 0xff), hexBytes(0x55, 0xaa, 0x55, 0xaa, 0x55)},
		{"sigma_fill", hexBytes(0x64, 0x01, 0xff), hexBytes(0x01, 0x02, 0x03, 0x04, 0x05)},
		{"sigma_fill_wrap", hexBytes(0x64, 0xfe, 0xff), hexBytes(0xfe, 0xff, 0x00, 0x01, 0x02)},
		{"library_copy", hexBytes(0x64, 0x01, 0x82, 0x01, 0x00, 0xff), hexBytes(0x01, 0x02, 0x03, 0x04, 0x05, 0x02, 0x03, 0x04)},
		{"xor_copy", hexBytes(0x64, 0x01, 0xa2, 0x01, 0x00, 0xff), hexBytes(0x01, 0x02, 0x03, 0x04, 0x05, 0xfd, 0xfc, 0xfb)},
		{"subtract_copy", hexBytes(0x64, 0x01, 0xc2, 0x03, 0xff), hexBytes(0x01, 0x02, 0x03, 0x04, 0x05, 0x03, 0x04, 0x05)},
		{"extended_subtract_xor", hexBytes(0x64, 0x01, 0xfc, 0x02, 0x03, 0xff), hexBytes(0x01, 0x02, 0x03, 0x04, 0x05, 0xfc, 0xfb, 0xfa)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decompress(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecompress_StopsAtFF(t *testing.T) {
	got, err := Decompress([]byte{0xff})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecompress_PrematureEndOfInput(t *testing.T) {
	_, err := Decompress([]byte{0x02, 0x01}) // direct copy of 3 bytes, only 1 present
	require.Error(t, err)
	assert.True(t, errors.Is(err, smerr.ErrMalformedCompression))
}

func TestDecompress_BackReferenceOutOfRange(t *testing.T) {
	// library copy pointing past an empty output
	_, err := Decompress([]byte{0x80, 0x00, 0x00, 0xff})
	require.Error(t, err)
	assert.True(t, errors.Is(err, smerr.ErrMalformedCompression))
}

func TestDecompress_MissingTerminator(t *testing.T) {
	_, err := Decompress([]byte{0x02, 0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.True(t, errors.Is(err, smerr.ErrMalformedCompression))
}
