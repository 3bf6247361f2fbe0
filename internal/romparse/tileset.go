package romparse

import (
	"fmt"

	"supermetroid/internal/addr"
	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
)

// TileSetEntrySize is the fixed wire size, in bytes, of one tileset table
// entry: three 24-bit pointers.
const TileSetEntrySize = 9

// ParseTilesetPointerTable reads the 29-entry tileset pointer table: a
// flat array of u16 short-pointers (bank 0x8f) each naming a 9-byte
// TileSetEntry in the same bank.
func ParseTilesetPointerTable(rom []byte) ([]model.TileSetEntry, error) {
	r := binreader.New(rom, 0)
	if err := r.Seek(int(addr.TilesetPointerTable)); err != nil {
		return nil, fmt.Errorf("seeking to tileset pointer table: %w", err)
	}

	entries := make([]model.TileSetEntry, 0, addr.TilesetPointerTableCount)
	for i := 0; i < addr.TilesetPointerTableCount; i++ {
		ptr, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("tileset pointer %d: %w", i, err)
		}
		entry, err := ParseTileSetEntry(rom, addr.RomOf(addr.TilesetEntryBank, ptr))
		if err != nil {
			return nil, fmt.Errorf("tileset entry %d at ptr 0x%04x: %w", i, ptr, err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// ParseTileSetEntry reads a single 9-byte TileSetEntry at the given ROM
// offset: three 24-bit pointers (tile_table, tiles, palette).
func ParseTileSetEntry(rom []byte, offset addr.RomOffset) (*model.TileSetEntry, error) {
	er := binreader.New(rom, 0)
	if err := er.Seek(int(offset)); err != nil {
		return nil, fmt.Errorf("seeking to tileset entry at 0x%x: %w", offset, err)
	}
	tileTable, err := er.ReadU24LE()
	if err != nil {
		return nil, fmt.Errorf("tileset entry tile_table ptr: %w", err)
	}
	tiles, err := er.ReadU24LE()
	if err != nil {
		return nil, fmt.Errorf("tileset entry tiles ptr: %w", err)
	}
	palette, err := er.ReadU24LE()
	if err != nil {
		return nil, fmt.Errorf("tileset entry palette ptr: %w", err)
	}
	return &model.TileSetEntry{
		TileTable: addr.BankedAddr(tileTable),
		Tiles:     addr.BankedAddr(tiles),
		Palette:   addr.BankedAddr(palette),
	}, nil
}

// DecodeTileTable splits decompressed tile-table bytes into 16-bit
// little-endian entries.
func DecodeTileTable(data []byte) (*model.TileTable, error) {
	r := binreader.New(data, 0)
	n := len(data) / 2
	entries := make([]model.TileTableEntry, 0, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("tile table entry %d: %w", i, err)
		}
		entries = append(entries, model.DecodeTileTableEntry(v))
	}
	return &model.TileTable{Entries: entries}, nil
}

// DecodePalette decodes decompressed palette bytes into exactly
// PaletteEntries BGR5 colors.
func DecodePalette(data []byte) (*model.Palette, error) {
	r := binreader.New(data, 0)
	var pal model.Palette
	for i := 0; i < model.PaletteEntries; i++ {
		v, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		pal.Colors[i] = model.DecodeColor(v)
	}
	return &pal, nil
}
