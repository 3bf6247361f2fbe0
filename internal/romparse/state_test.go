package romparse

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"supermetroid/internal/addr"
	"supermetroid/internal/model"
)

func putU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

func putU24(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
}

// buildStateData writes one 26-byte StateData record at off and returns the
// offset immediately past it.
func buildStateData(rom []byte, off int) int {
	putU24(rom, off, 0x8e8000) // level_data
	rom[off+3] = 0x00          // tile_set
	rom[off+4] = 0x01          // music_data_index
	rom[off+5] = 0x02          // music_track
	putU16(rom, off+6, 0x0003) // fx
	putU16(rom, off+8, 0x0004) // enemy_population
	putU16(rom, off+10, 0x0005)
	rom[off+12] = 0x06 // layer2 x
	rom[off+13] = 0x07 // layer2 y
	putU16(rom, off+14, 0x0008)
	putU16(rom, off+16, 0x0009)
	putU16(rom, off+18, 0x000a)
	putU16(rom, off+20, 0x000b)
	putU16(rom, off+22, 0x000c)
	putU16(rom, off+24, 0x000d)
	return off + StateDataSize
}

func TestParseStates_DefaultOnly(t *testing.T) {
	rom := make([]byte, 0x400000)
	start := int(addr.RomOf(0x8f, 0x9200))

	putU16(rom, start, uint16(model.TagDefault))
	buildStateData(rom, start+2)

	states, err := ParseStates(rom, addr.RomOffset(start))
	require.NoError(t, err)
	require.Len(t, states, 1)
	require.Equal(t, model.CondDefault, states[0].Condition.Kind)
	require.Equal(t, model.TileSetId(0), states[0].Data.TileSet)
	require.Equal(t, uint8(1), states[0].Data.MusicDataIndex)
}

func TestParseStates_EventThenDefault(t *testing.T) {
	rom := make([]byte, 0x400000)
	start := int(addr.RomOf(0x8f, 0x9300))

	pos := start
	putU16(rom, pos, uint16(model.TagEventSet))
	pos += 2
	rom[pos] = 0x03 // event value
	pos++
	putU16(rom, pos, 0x9400) // state data ptr (bank 0x8f implicit)
	pos += 2

	putU16(rom, pos, uint16(model.TagDefault))
	pos += 2
	tail := pos
	buildStateData(rom, tail)

	eventDataOff := int(addr.RomOf(0x8f, 0x9400))
	buildStateData(rom, eventDataOff)

	states, err := ParseStates(rom, addr.RomOffset(start))
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.Equal(t, model.CondEventSet, states[0].Condition.Kind)
	require.Equal(t, model.Event(3), states[0].Condition.Event)
	require.Equal(t, model.CondDefault, states[1].Condition.Kind)
}

func TestParseStates_UnknownTag(t *testing.T) {
	rom := make([]byte, 0x400000)
	start := int(addr.RomOf(0x8f, 0x9200))
	putU16(rom, start, 0xbeef)

	_, err := ParseStates(rom, addr.RomOffset(start))
	require.Error(t, err)
}

func TestParseStateData_UnknownTileSetStrict(t *testing.T) {
	rom := make([]byte, 0x400000)
	off := int(addr.RomOf(0x8f, 0x9200))
	buildStateData(rom, off)
	rom[off+3] = 0xff // invalid tile_set

	AllowUnknownTileSetID = false
	_, err := ParseStateData(rom, addr.RomOffset(off))
	require.Error(t, err)
}

func TestParseStateData_UnknownTileSetPermissive(t *testing.T) {
	rom := make([]byte, 0x400000)
	off := int(addr.RomOf(0x8f, 0x9200))
	buildStateData(rom, off)
	rom[off+3] = 0xff

	AllowUnknownTileSetID = true
	defer func() { AllowUnknownTileSetID = false }()

	data, err := ParseStateData(rom, addr.RomOffset(off))
	require.NoError(t, err)
	require.Equal(t, model.TileSetId(0xff), data.TileSet)
}
