// Package addr converts between on-ROM offsets and the SNES LoROM banked
// pointer space used throughout Super Metroid's data tables, and holds the
// fixed table locations every load starts from.
//
// See konkers/sm's rommap.rs (rom_addr!/snes_to_rom_addr! macros) for the
// reference arithmetic this package reproduces.
package addr

// BankedAddr is a 24-bit SNES pointer: a bank byte packed with a 16-bit
// offset as (bank<<16)|offset.
type BankedAddr uint32

// RomOffset is a flat byte offset into the cartridge image.
type RomOffset uint32

// ShortPtr is a 16-bit offset within an implicit (caller-known) bank.
type ShortPtr uint16

// RomOf converts a (bank, offset) LoROM pointer into a flat ROM offset.
func RomOf(bank uint8, offset uint16) RomOffset {
	return RomOffset((uint32(bank)-0x80)<<15 + (uint32(offset) - 0x8000))
}

// RomOfBanked splits a 24-bit banked address and applies the same mapping
// as RomOf.
func RomOfBanked(a BankedAddr) RomOffset {
	bank := uint8((uint32(a) >> 16) & 0xff)
	offset := uint16(a & 0xffff)
	return RomOf(bank, offset)
}

// Snes16Of reconstructs a 16-bit short-pointer from a flat ROM offset,
// assuming the caller already knows the bank.
func Snes16Of(rom RomOffset) ShortPtr {
	return ShortPtr((uint32(rom) & 0x7fff) | 0x8000)
}

// SnesOf reconstructs a full 24-bit banked pointer from a flat ROM offset.
func SnesOf(rom RomOffset) BankedAddr {
	r := uint32(rom)
	return BankedAddr(0x80_0000 | ((r << 1) & 0x00ff_0000) | ((r & 0x7fff) | 0x8000))
}

// Bank returns the bank byte of a banked address.
func (a BankedAddr) Bank() uint8 {
	return uint8((uint32(a) >> 16) & 0xff)
}

// Offset returns the 16-bit offset of a banked address.
func (a BankedAddr) Offset() uint16 {
	return uint16(a & 0xffff)
}

// BankedFrom packs a bank byte and offset into a BankedAddr.
func BankedFrom(bank uint8, offset uint16) BankedAddr {
	return BankedAddr(uint32(bank)<<16 | uint32(offset))
}

// Fixed table locations. These are computed once from constant inputs at
// package initialisation, not looked up at runtime, and never fail.
var (
	// RoomMdbStart is the flat ROM offset of the first RoomMdb header.
	RoomMdbStart = RomOf(0x8f, 0x91f8)

	// TilesetPointerTable is the flat ROM offset of the 29-entry tileset
	// pointer table.
	TilesetPointerTable = RomOf(0x8f, 0xe7a7)

	// CRETiles is the flat ROM offset of the common (CRE) tile graphics.
	CRETiles = RomOf(0xb9, 0x8000)

	// CRETileTable is the flat ROM offset of the common (CRE) tile table.
	CRETileTable = RomOf(0xb9, 0xa09d)
)

const (
	// TilesetPointerTableCount is the number of entries in the tileset
	// pointer table.
	TilesetPointerTableCount = 29

	// TilesetEntryBank is the bank every TileSetEntry and every tileset
	// pointer table entry lives in.
	TilesetEntryBank uint8 = 0x8f

	// DoorDestBank is the bank every DoorData.dest_room short-pointer is
	// implicitly relative to.
	DoorDestBank uint8 = 0x8f

	// StateDataBank is the bank every StateCondition's StateData
	// short-pointer is implicitly relative to.
	StateDataBank uint8 = 0x8f
)
