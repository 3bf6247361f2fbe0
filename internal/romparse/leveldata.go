package romparse

import (
	"fmt"

	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
	"supermetroid/internal/smerr"
)

// ParseRoomData decodes decompressed level data for a room of the given
// width and height (in screens; each screen is 16x16 blocks). Layer 1 and
// the BTS table are always present; layer 2 is present only when the
// decompressed data is long enough to carry it.
//
// Two stock rooms ("Bowling Alley" and "Double Chamber") carry more level
// data than their declared dimensions account for; rather than reject
// them, excess trailing bytes beyond the expected length are silently
// truncated, matching the original game engine's behavior.
func ParseRoomData(data []byte, width, height uint8) (*model.RoomData, error) {
	numBlocks := int(width) * int(height) * 256
	withoutLayer2 := numBlocks * 3
	withLayer2 := numBlocks * 5

	var hasLayer2 bool
	switch {
	case len(data) >= withLayer2:
		hasLayer2 = true
	case len(data) >= withoutLayer2:
		hasLayer2 = false
	default:
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d (width=%d height=%d)", smerr.ErrWrongSizedRoomData, len(data), withoutLayer2, width, height)
	}

	r := binreader.New(data, 0)

	layer1 := make([]model.BlockInfo, numBlocks)
	for i := 0; i < numBlocks; i++ {
		v, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("layer1 block %d: %w", i, err)
		}
		layer1[i] = model.DecodeBlockInfo(v)
	}

	bts := make([]uint8, numBlocks)
	for i := 0; i < numBlocks; i++ {
		b, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("bts %d: %w", i, err)
		}
		bts[i] = b
	}

	var layer2 []model.BlockInfo
	if hasLayer2 {
		layer2 = make([]model.BlockInfo, numBlocks)
		for i := 0; i < numBlocks; i++ {
			v, err := r.ReadU16LE()
			if err != nil {
				return nil, fmt.Errorf("layer2 block %d: %w", i, err)
			}
			layer2[i] = model.DecodeBlockInfo(v)
		}
	}

	return &model.RoomData{Layer1: layer1, Bts: bts, Layer2: layer2}, nil
}

// BytesPerTile is the size, in bytes, of one 8x8 4bpp tile in both the
// wire (planar) and stored (packed linear) layouts.
const BytesPerTile = 32

// DecodeTiles de-planarises wire 4bpp tile graphics into the packed linear
// storage layout: two pixels per byte, low nibble is the even-x pixel.
// len(wire) must be a multiple of BytesPerTile.
func DecodeTiles(wire []byte) (*model.Tiles, error) {
	if len(wire)%BytesPerTile != 0 {
		return nil, fmt.Errorf("%w: tile data length %d not a multiple of %d", smerr.ErrWrongSizedRoomData, len(wire), BytesPerTile)
	}

	out := make([]byte, len(wire))
	numTiles := len(wire) / BytesPerTile
	for t := 0; t < numTiles; t++ {
		src := wire[t*BytesPerTile : (t+1)*BytesPerTile]
		dst := out[t*BytesPerTile : (t+1)*BytesPerTile]
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				var nibble byte
				for k := 0; k < 4; k++ {
					byteOff := y*2 + (k & 1) + (k>>1)*16
					bit := (src[byteOff] >> (7 - x)) & 1
					nibble |= bit << k
				}
				dstByte := y*4 + x/2
				if x&1 == 1 {
					dst[dstByte] = (dst[dstByte] & 0x0f) | (nibble << 4)
				} else {
					dst[dstByte] = (dst[dstByte] & 0xf0) | nibble
				}
			}
		}
	}
	return &model.Tiles{Data: out}, nil
}

// TilePixel reads the packed nibble for pixel (x, y) within a single
// BytesPerTile-sized stored tile.
func TilePixel(tile []byte, x, y int) uint8 {
	b := tile[y*4+x/2]
	if x&1 == 1 {
		return b >> 4
	}
	return b & 0x0f
}
