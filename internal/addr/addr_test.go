package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRomOf_AddressMapLaw verifies the worked example from rommap.rs:
// rom_addr!(0x8f, 0x93fe) == 0x793fe.
func TestRomOf_AddressMapLaw(t *testing.T) {
	assert.Equal(t, RomOffset(0x793fe), RomOf(0x8f, 0x93fe))
}

// TestSnes16Of_RoundTrip checks that converting a legal short-pointer to a
// ROM offset and back recovers the original value, for a spread of legal
// 0x8000-0xffff offsets.
func TestSnes16Of_RoundTrip(t *testing.T) {
	for _, offset := range []uint16{0x8000, 0x93fe, 0xabcd, 0xe7a7, 0xffff} {
		rom := RomOf(0x8f, offset)
		assert.Equal(t, ShortPtr(offset), Snes16Of(rom), "offset 0x%04x", offset)
	}
}

func TestRomOfBanked_MatchesRomOf(t *testing.T) {
	a := BankedFrom(0x8f, 0x93fe)
	assert.Equal(t, RomOf(0x8f, 0x93fe), RomOfBanked(a))
}

func TestBankedAddr_BankAndOffset(t *testing.T) {
	a := BankedFrom(0xb9, 0xa09d)
	assert.Equal(t, uint8(0xb9), a.Bank())
	assert.Equal(t, uint16(0xa09d), a.Offset())
}

func TestSnesOf_RoundTripsThroughRomOfBanked(t *testing.T) {
	rom := RomOf(0x8f, 0x93fe)
	banked := SnesOf(rom)
	assert.Equal(t, rom, RomOfBanked(banked))
}

func TestFixedTableLocations(t *testing.T) {
	assert.Equal(t, RomOf(0x8f, 0x91f8), RoomMdbStart)
	assert.Equal(t, RomOf(0x8f, 0xe7a7), TilesetPointerTable)
	assert.Equal(t, RomOf(0xb9, 0x8000), CRETiles)
	assert.Equal(t, RomOf(0xb9, 0xa09d), CRETileTable)
}
