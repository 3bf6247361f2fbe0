// Package loader orchestrates a full cartridge load: it walks the room
// database from its single fixed entry point, following door pointers to
// discover every reachable room, then walks the fixed-size tileset table
// to pull in every tile/tile-table/palette resource rooms can reference.
package loader

import (
	"fmt"

	"supermetroid/internal/addr"
	"supermetroid/internal/binreader"
	"supermetroid/internal/compress"
	"supermetroid/internal/model"
	"supermetroid/internal/romparse"
	"supermetroid/internal/smerr"
)

// RomSize is the only cartridge size this loader accepts: a 3MB LoROM
// image with header stripped.
const RomSize = 0x300000

// Load walks rom and returns the full in-memory aggregate: every
// reachable room (headers, states, doors), every room's level data and
// PLM population, and every tileset's tiles, tile table, and palette,
// plus the two fixed CRE (common) resources every room composites
// against.
func Load(rom []byte) (*model.Data, error) {
	if len(rom) != RomSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", smerr.ErrWrongRomSize, len(rom), RomSize)
	}

	data := model.NewData()

	if err := loadRooms(rom, data); err != nil {
		return nil, err
	}
	if err := loadTileSets(rom, data); err != nil {
		return nil, err
	}
	if err := loadCreResources(rom, data); err != nil {
		return nil, err
	}

	return data, nil
}

// loadRooms performs the room-database walk: starting from the single
// fixed RoomMdb entry point, it follows every state's door list to
// discover new rooms, stopping once nothing new is reachable.
func loadRooms(rom []byte, data *model.Data) error {
	seed := addr.Snes16Of(addr.RoomMdbStart)
	frontier := map[uint16]struct{}{uint16(seed): {}}
	queued := map[uint16]struct{}{uint16(seed): {}}

	for len(frontier) > 0 {
		var ptr uint16
		for k := range frontier {
			ptr = k
			break
		}
		delete(frontier, ptr)

		room, newDests, err := loadRoom(rom, ptr, data)
		if err != nil {
			return fmt.Errorf("room at short pointer 0x%04x: %w", ptr, err)
		}
		data.RoomMdb[ptr] = room

		for _, dest := range newDests {
			if dest == 0 {
				continue
			}
			if _, ok := queued[dest]; ok {
				continue
			}
			queued[dest] = struct{}{}
			frontier[dest] = struct{}{}
		}
	}
	return nil
}

// loadRoom parses one room's header, state list, level data, PLM
// population, and door list, returning the room and the door
// destinations it discovered.
func loadRoom(rom []byte, ptr uint16, data *model.Data) (*model.RoomMdb, []uint16, error) {
	headerOff := addr.RomOf(0x8f, ptr)
	r := binreader.New(rom, 0)
	if err := r.Seek(int(headerOff)); err != nil {
		return nil, nil, fmt.Errorf("seeking to room header: %w", err)
	}

	room, err := romparse.ParseRoomHeader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing room header: %w", err)
	}

	states, err := romparse.ParseStates(rom, addr.RomOffset(r.AbsolutePosition()))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing state list: %w", err)
	}
	room.States = states

	for i := range states {
		levelAddr := states[i].Data.LevelData
		if _, ok := data.LevelData[levelAddr]; !ok {
			rd, err := decompressRoomData(rom, levelAddr, room.Width, room.Height)
			if err != nil {
				return nil, nil, fmt.Errorf("level data for state %d: %w", i, err)
			}
			data.LevelData[levelAddr] = rd
		}

		plmStart := addr.RomOf(0x8f, states[i].Data.Plm)
		if _, ok := data.PlmPopulation[states[i].Data.Plm]; !ok && states[i].Data.Plm != 0 {
			plms, err := romparse.ParsePlmList(rom, int(plmStart))
			if err != nil {
				return nil, nil, fmt.Errorf("plm population for state %d: %w", i, err)
			}
			data.PlmPopulation[states[i].Data.Plm] = plms
		}
	}

	numDoors := 0
	for i := range states {
		rd := data.LevelData[states[i].Data.LevelData]
		if n := rd.NumDoors(); n > numDoors {
			numDoors = n
		}
	}

	doors, err := romparse.ParseDoors(rom, room.DoorListPtr, numDoors)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing door list: %w", err)
	}
	room.DoorList = doors

	dests := make([]uint16, 0, len(doors))
	for _, d := range doors {
		dests = append(dests, d.DestRoom)
	}

	return room, dests, nil
}

func decompressRoomData(rom []byte, levelAddr addr.BankedAddr, width, height uint8) (*model.RoomData, error) {
	raw, err := decompressAt(rom, levelAddr)
	if err != nil {
		return nil, fmt.Errorf("decompressing level data at %06x: %w", uint32(levelAddr), err)
	}
	return romparse.ParseRoomData(raw, width, height)
}

func decompressAt(rom []byte, a addr.BankedAddr) ([]byte, error) {
	off := addr.RomOfBanked(a)
	if int(off) >= len(rom) {
		return nil, fmt.Errorf("%w: banked address %06x maps outside cartridge", smerr.ErrOutOfRange, uint32(a))
	}
	return compress.Decompress(rom[off:])
}

// loadTileSets reads the 29-entry tileset pointer table and loads each
// entry's tile graphics, tile table, and palette, all compressed
// resources addressed by 24-bit banked pointer and cached by that
// pointer so tilesets sharing a resource only decode it once.
func loadTileSets(rom []byte, data *model.Data) error {
	entries, err := romparse.ParseTilesetPointerTable(rom)
	if err != nil {
		return fmt.Errorf("parsing tileset pointer table: %w", err)
	}
	data.TileSets = entries

	for i, entry := range entries {
		if err := loadTilesIfAbsent(rom, entry.Tiles, data); err != nil {
			return fmt.Errorf("tileset %d tiles: %w", i, err)
		}
		if err := loadTileTableIfAbsent(rom, entry.TileTable, data); err != nil {
			return fmt.Errorf("tileset %d tile table: %w", i, err)
		}
		if err := loadPaletteIfAbsent(rom, entry.Palette, data); err != nil {
			return fmt.Errorf("tileset %d palette: %w", i, err)
		}
	}
	return nil
}

// loadCreResources loads the two fixed common resources (CRE tiles and
// CRE tile table) every room composites its tileset-specific graphics
// against. They live at fixed ROM offsets rather than behind a tileset
// entry pointer, so they are keyed under their own reconstructed banked
// address.
func loadCreResources(rom []byte, data *model.Data) error {
	creTiles := addr.SnesOf(addr.CRETiles)
	if err := loadTilesIfAbsent(rom, creTiles, data); err != nil {
		return fmt.Errorf("cre tiles: %w", err)
	}
	creTileTable := addr.SnesOf(addr.CRETileTable)
	if err := loadTileTableIfAbsent(rom, creTileTable, data); err != nil {
		return fmt.Errorf("cre tile table: %w", err)
	}
	return nil
}

func loadTilesIfAbsent(rom []byte, a addr.BankedAddr, data *model.Data) error {
	if _, ok := data.Tiles[a]; ok {
		return nil
	}
	raw, err := decompressAt(rom, a)
	if err != nil {
		return fmt.Errorf("decompressing: %w", err)
	}
	tiles, err := romparse.DecodeTiles(raw)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	data.Tiles[a] = tiles
	return nil
}

func loadTileTableIfAbsent(rom []byte, a addr.BankedAddr, data *model.Data) error {
	if _, ok := data.TileTables[a]; ok {
		return nil
	}
	raw, err := decompressAt(rom, a)
	if err != nil {
		return fmt.Errorf("decompressing: %w", err)
	}
	tbl, err := romparse.DecodeTileTable(raw)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	data.TileTables[a] = tbl
	return nil
}

func loadPaletteIfAbsent(rom []byte, a addr.BankedAddr, data *model.Data) error {
	if _, ok := data.Palettes[a]; ok {
		return nil
	}
	raw, err := decompressAt(rom, a)
	if err != nil {
		return fmt.Errorf("decompressing: %w", err)
	}
	pal, err := romparse.DecodePalette(raw)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	data.Palettes[a] = pal
	return nil
}
