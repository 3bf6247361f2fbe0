// Package raster composes decoded tile graphics, tile tables, and
// palettes into viewable images: individual tiles, 16x16 blocks, full
// room backgrounds, and a handful of inspection sheets useful while
// debugging a load.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"supermetroid/internal/model"
	"supermetroid/internal/smerr"
)

// TileW and TileH are the fixed dimensions, in pixels, of a single tile.
const (
	TileW = 8
	TileH = 8
)

// CREIndexStart is the tile index the common (CRE) graphics bank begins
// at in the concatenated graphics sheet, leaving room for up to 0x280
// scene-specific (SCE) tiles ahead of it.
const CREIndexStart = 0x280

// Rasteriser composes one scene's tile graphics, tile tables, and
// palette into renderable images. A single instance is reused across
// every render call for that scene.
type Rasteriser struct {
	numTiles      int
	creTileCount  int
	sceTileCount  int
	graphicsSheet []byte
	palette       *model.Palette
	creTable      *model.TileTable
	sceTable      *model.TileTable
}

// New builds a Rasteriser from the common (CRE) tiles/table and one
// scene's (SCE) tiles/table/palette. The two tile blobs are concatenated
// into a single graphics sheet indexed [0, sceTiles) then
// [CREIndexStart, CREIndexStart+creTiles).
func New(cre, sce *model.Tiles, palette *model.Palette, creTable, sceTable *model.TileTable) *Rasteriser {
	creTileCount := len(cre.Data) / bytesPerTile
	sceTileCount := len(sce.Data) / bytesPerTile
	numTiles := CREIndexStart + creTileCount

	sheet := make([]byte, numTiles*bytesPerTile)
	copy(sheet, sce.Data)
	copy(sheet[CREIndexStart*bytesPerTile:], cre.Data)

	return &Rasteriser{
		numTiles:      numTiles,
		creTileCount:  creTileCount,
		sceTileCount:  sceTileCount,
		graphicsSheet: sheet,
		palette:       palette,
		creTable:      creTable,
		sceTable:      sceTable,
	}
}

const bytesPerTile = (TileW * TileH) / 2

func (r *Rasteriser) getTile(index uint16) ([]byte, error) {
	if int(index) >= r.numTiles {
		return nil, fmt.Errorf("%w: tile index %d, have %d tiles", smerr.ErrOutOfRange, index, r.numTiles)
	}
	start := int(index) * bytesPerTile
	return r.graphicsSheet[start : start+bytesPerTile], nil
}

func getPixel(tile []byte, x, y int) uint8 {
	b := tile[y*4+x/2]
	if x&1 == 1 {
		return b >> 4
	}
	return b & 0xf
}

// RenderTile draws one 8x8 tile into img at (x, y), reading pixel colors
// from colors (must have at least 16 entries). Palette index 0 renders
// fully transparent; every other index renders opaque. The tile is
// first rasterised into its own small buffer (applying flips and
// transparency as per-pixel alpha) then composited onto img with
// draw.Over, so painting a transparent pixel never clobbers whatever
// was already there.
func RenderTile(tile []byte, img *image.RGBA, colors []model.Color, x, y int, flipH, flipV bool) {
	src := image.NewRGBA(image.Rect(0, 0, TileW, TileH))
	for y1 := 0; y1 < TileH; y1++ {
		for x1 := 0; x1 < TileW; x1++ {
			srcX, srcY := x1, y1
			if flipH {
				srcX = 7 - x1
			}
			if flipV {
				srcY = 7 - y1
			}
			idx := getPixel(tile, srcX, srcY)
			if idx == 0 {
				// Left as the zero value: fully transparent, with no
				// colour for draw.Over to add onto the destination.
				continue
			}
			c := colors[idx]
			src.SetRGBA(x1, y1, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	dstRect := image.Rect(x, y, x+TileW, y+TileH)
	draw.Draw(img, dstRect, src, image.Point{}, draw.Over)
}

// subTileOffsets are the (x, y) pixel offsets of a block's four
// sub-tiles in the no-flip case, indexed 0..3.
var subTileOffsets = [4][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}}

// RenderBlock draws one 16x16 block (four tiles addressed by table entry
// index*4) into img at (x, y). The four entries must lie entirely
// within the CRE table or entirely within the SCE table.
func (r *Rasteriser) RenderBlock(img *image.RGBA, tableIndex int, x, y int, flipH, flipV bool) error {
	base := tableIndex * 4
	creCount, sceCount := len(r.creTable.Entries), len(r.sceTable.Entries)

	var table []model.TileTableEntry
	switch {
	case base >= 0 && base+4 <= creCount:
		table = r.creTable.Entries[base : base+4]
	case base >= creCount && base+4 <= creCount+sceCount:
		table = r.sceTable.Entries[base-creCount : base-creCount+4]
	default:
		return fmt.Errorf("%w: block table index %d (entries %d..%d) straddles or exceeds table bounds", smerr.ErrOutOfRange, tableIndex, base, base+4)
	}

	for i, entry := range table {
		tile, err := r.getTile(entry.TileIndex)
		if err != nil {
			return err
		}
		ox, oy := subTileOffsets[i][0], subTileOffsets[i][1]
		if flipH {
			ox ^= 8
		}
		if flipV {
			oy ^= 8
		}
		colors := r.palette.Colors[int(entry.Palette)*16 : int(entry.Palette)*16+16]
		RenderTile(tile, img, colors, x+ox, y+oy, entry.FlipH != flipH, entry.FlipV != flipV)
	}
	return nil
}

// RenderRoom composes a full room background from one state's decoded
// level data. The image is mdb.Width*256 px wide and mdb.Height*256 px
// tall; rows of block data beyond mdb.Height*16 are ignored (some stock
// rooms carry more level data than their declared dimensions need).
func (r *Rasteriser) RenderRoom(mdb *model.RoomMdb, roomData *model.RoomData) (*image.RGBA, error) {
	blocksWide := int(mdb.Width) * 16
	blocksHigh := int(mdb.Height) * 16
	img := image.NewRGBA(image.Rect(0, 0, blocksWide*16, blocksHigh*16))

	for i, block := range roomData.Layer1 {
		row := i / blocksWide
		col := i % blocksWide
		if row >= blocksHigh {
			break
		}
		if err := r.RenderBlock(img, int(block.TileIndex), col*16, row*16, block.XFlip, block.YFlip); err != nil {
			return nil, fmt.Errorf("block (%d,%d): %w", col, row, err)
		}
	}
	return img, nil
}

// grayRamp is the 16-entry grayscale palette auxiliary sheets render
// raw tile indices with, since they are not associated with any one
// in-game palette.
var grayRamp = func() []model.Color {
	c := make([]model.Color, 16)
	for v := 0; v < 16; v++ {
		shade := uint8(v << 4)
		c[v] = model.Color{R: shade, G: shade, B: shade}
	}
	return c
}()

// RenderGraphicsSheet draws every tile in the graphics sheet into a
// 16-tiles-wide grid, for visual inspection of raw tile data.
func (r *Rasteriser) RenderGraphicsSheet() (*image.RGBA, error) {
	const tilesWide = 16
	tilesHigh := r.numTiles / tilesWide
	img := image.NewRGBA(image.Rect(0, 0, tilesWide*TileW, tilesHigh*TileH))

	draw := func(i int) error {
		tile, err := r.getTile(uint16(i))
		if err != nil {
			return err
		}
		x := (i % tilesWide) * TileW
		y := (i / tilesWide) * TileH
		RenderTile(tile, img, grayRamp, x, y, false, false)
		return nil
	}

	for i := 0; i < r.sceTileCount; i++ {
		if err := draw(i); err != nil {
			return nil, err
		}
	}
	for ci := 0; ci < r.creTileCount; ci++ {
		if err := draw(ci + CREIndexStart); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// RenderPalette draws the palette as a 16x16-px swatch grid, 16 swatches
// wide.
func (r *Rasteriser) RenderPalette() *image.RGBA {
	const entriesWide = 16
	entriesHigh := model.PaletteEntries / entriesWide
	const swatch = 16
	img := image.NewRGBA(image.Rect(0, 0, entriesWide*swatch, entriesHigh*swatch))

	for i, c := range r.palette.Colors {
		ex := (i % entriesWide) * swatch
		ey := (i / entriesWide) * swatch
		rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
		for y := 0; y < swatch; y++ {
			for x := 0; x < swatch; x++ {
				img.SetRGBA(ex+x, ey+y, rgba)
			}
		}
	}
	return img
}

// RenderTileTable draws every tile-table entry as a 64-tiles-wide grid,
// CRE entries first, SCE entries immediately below.
func (r *Rasteriser) RenderTileTable() (*image.RGBA, error) {
	const tilesWide = 64
	numEntries := len(r.creTable.Entries) + len(r.sceTable.Entries)
	tilesHigh := numEntries / tilesWide
	img := image.NewRGBA(image.Rect(0, 0, tilesWide*TileW, tilesHigh*TileH))

	if err := r.renderSubTable(img, r.creTable, 0, 0); err != nil {
		return nil, err
	}
	offsetY := len(r.creTable.Entries) / tilesWide * TileH
	if err := r.renderSubTable(img, r.sceTable, 0, offsetY); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *Rasteriser) renderSubTable(img *image.RGBA, table *model.TileTable, offsetX, offsetY int) error {
	const tilesWide = 64
	const superTilesWide = tilesWide / 2

	for i, entry := range table.Entries {
		tile, err := r.getTile(entry.TileIndex)
		if err != nil {
			return err
		}
		superI := i / 4
		superX := (superI % superTilesWide) * 2 * TileW
		superY := (superI / superTilesWide) * 2 * TileH
		subX := i % 2
		subY := (i >> 1) & 1
		x := offsetX + superX + subX*TileW
		y := offsetY + superY + subY*TileH

		colors := r.palette.Colors[int(entry.Palette)*16 : int(entry.Palette)*16+16]
		RenderTile(tile, img, colors, x, y, entry.FlipH, entry.FlipV)
	}
	return nil
}
