// Package supermetroid extracts structured room, tile, and palette data
// from a Super Metroid cartridge image and renders it to RGBA images.
//
// Load walks the cartridge's room database and tileset table into an
// in-memory Data aggregate. NewTileRasteriser then composes any one
// scene's tiles, tile table, and palette (plus the shared CRE graphics
// every scene uses) into a Rasteriser capable of drawing individual
// tiles, 16x16 blocks, whole room backgrounds, or inspection sheets.
package supermetroid

import (
	"image"

	"supermetroid/internal/addr"
	"supermetroid/internal/loader"
	"supermetroid/internal/model"
	"supermetroid/internal/raster"
)

// Data is the full in-memory aggregate a Load call produces.
type Data = model.Data

// RoomMdb is a room's header, states, and door list.
type RoomMdb = model.RoomMdb

// RoomData is one state's decoded level grid.
type RoomData = model.RoomData

// Plm is one interactive placement entry.
type Plm = model.Plm

// TileSetEntry names a tileset's three resource pointers.
type TileSetEntry = model.TileSetEntry

// Tiles holds de-planarised 4bpp tile graphics.
type Tiles = model.Tiles

// TileTable is a flat list of tile-table entries.
type TileTable = model.TileTable

// Palette is a full 128-color palette.
type Palette = model.Palette

// BankedAddr is a 24-bit SNES bank:offset pointer, used throughout Data
// as a map key.
type BankedAddr = addr.BankedAddr

// Load reads a 3,145,728-byte LoROM cartridge image and returns every
// reachable room (headers, states, doors), each state's level data and
// PLM population, and every tileset's tiles, tile table, and palette.
func Load(rom []byte) (*Data, error) {
	return loader.Load(rom)
}

// Rasteriser composes tile graphics, tile tables, and a palette into
// renderable images.
type Rasteriser struct {
	r *raster.Rasteriser
}

// NewTileRasteriser builds a Rasteriser for one scene: its tiles and
// tile table, a palette, plus the CRE common tiles and tile table every
// room's graphics are concatenated against.
func NewTileRasteriser(creTiles *Tiles, creTable *TileTable, sceTiles *Tiles, sceTable *TileTable, palette *Palette) *Rasteriser {
	return &Rasteriser{r: raster.New(creTiles, sceTiles, palette, creTable, sceTable)}
}

// RenderRoom composes a full room background image from one state's
// decoded level data.
func (rz *Rasteriser) RenderRoom(mdb *RoomMdb, data *RoomData) (*image.RGBA, error) {
	return rz.r.RenderRoom(mdb, data)
}

// RenderBlock draws one 16x16 block into img at (x, y).
func (rz *Rasteriser) RenderBlock(img *image.RGBA, tableIndex, x, y int, flipH, flipV bool) error {
	return rz.r.RenderBlock(img, tableIndex, x, y, flipH, flipV)
}

// RenderGraphicsSheet draws every tile in the concatenated graphics
// sheet into a 16-tiles-wide inspection grid.
func (rz *Rasteriser) RenderGraphicsSheet() (*image.RGBA, error) {
	return rz.r.RenderGraphicsSheet()
}

// RenderPalette draws the palette as a 16x16-px swatch grid.
func (rz *Rasteriser) RenderPalette() *image.RGBA {
	return rz.r.RenderPalette()
}

// RenderTileTable draws every tile-table entry as a 64-tiles-wide
// inspection grid, CRE entries first.
func (rz *Rasteriser) RenderTileTable() (*image.RGBA, error) {
	return rz.r.RenderTileTable()
}
