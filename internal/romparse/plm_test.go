package romparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlmList_TerminatesOnZeroId(t *testing.T) {
	rom := []byte{
		0x01, 0x00, 0x05, 0x06, 0xaa, 0xbb, // plm 0
		0x02, 0x00, 0x07, 0x08, 0xcc, 0xdd, // plm 1
		0x00, 0x00, // terminator
		0xff, 0xff, // garbage past terminator, must not be read
	}
	plms, err := ParsePlmList(rom, 0)
	require.NoError(t, err)
	require.Len(t, plms, 2)
	require.Equal(t, uint16(1), plms[0].ID)
	require.Equal(t, uint8(5), plms[0].X)
	require.Equal(t, uint8(6), plms[0].Y)
	require.Equal(t, uint16(0xbbaa), plms[0].Param)
	require.Equal(t, uint16(2), plms[1].ID)
}

func TestParsePlmList_EmptyList(t *testing.T) {
	rom := []byte{0x00, 0x00}
	plms, err := ParsePlmList(rom, 0)
	require.NoError(t, err)
	require.Empty(t, plms)
}

func TestParsePlmList_MissingTerminator(t *testing.T) {
	rom := []byte{0x01, 0x00, 0x05, 0x06, 0xaa, 0xbb}
	_, err := ParsePlmList(rom, 0)
	require.Error(t, err)
}
