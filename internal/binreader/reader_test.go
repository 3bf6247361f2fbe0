package binreader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermetroid/internal/smerr"
)

func TestReader_SequentialReads(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	r := New(data, 0x1000)

	b, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)
	assert.Equal(t, 1, r.Position())
	assert.Equal(t, 0x1001, r.AbsolutePosition())

	u16, err := r.ReadU16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)

	u24, err := r.ReadU24LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x060504), u24)
}

func TestReader_SeekAndSkip(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	r := New(data, 0)

	require.NoError(t, r.Seek(4))
	b, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), b)

	require.NoError(t, r.Seek(0))
	require.NoError(t, r.Skip(2))
	b, err = r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), b)
}

func TestReader_ShortRead(t *testing.T) {
	data := []byte{0x01}
	r := New(data, 0)

	_, err := r.ReadU16LE()
	require.Error(t, err)
	assert.True(t, errors.Is(err, smerr.ErrShortRead))
}

func TestReader_SeekOutOfBounds(t *testing.T) {
	r := New([]byte{1, 2, 3}, 0)
	err := r.Seek(10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, smerr.ErrShortRead))
}

func TestReader_ReadBytes(t *testing.T) {
	r := New([]byte{1, 2, 3, 4}, 0)
	b, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 3, r.Position())
}
