// Package romparse implements Super Metroid's fixed-layout and
// variable-length record parsers: room headers, state condition/data
// lists, doors, PLM populations, tileset table entries, tile-table
// entries, and palette entries. Every parser here builds internal/model
// types from a internal/binreader cursor.
package romparse

import (
	"fmt"

	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
)

// RoomHeaderSize is the fixed size, in bytes, of a RoomMdb header (before
// its state and door lists).
const RoomHeaderSize = 11

// ParseRoomHeader reads the 11-byte RoomMdb header at the cursor's current
// position. It does not populate States or DoorList; callers fill those in
// separately once the states (and hence door count) are known.
func ParseRoomHeader(r *binreader.Reader) (*model.RoomMdb, error) {
	index, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header index: %w", err)
	}
	areaRaw, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header area: %w", err)
	}
	area, err := model.ParseArea(areaRaw)
	if err != nil {
		return nil, fmt.Errorf("room header at rom offset 0x%x: %w", r.AbsolutePosition()-1, err)
	}
	x, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header x: %w", err)
	}
	y, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header y: %w", err)
	}
	width, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header width: %w", err)
	}
	height, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header height: %w", err)
	}
	upScroller, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header up_scroller: %w", err)
	}
	downScroller, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header down_scroller: %w", err)
	}
	graphicsFlags, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("room header graphics_flags: %w", err)
	}
	doorListPtr, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("room header door_list ptr: %w", err)
	}

	return &model.RoomMdb{
		Index:         index,
		AreaID:        area,
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		UpScroller:    upScroller,
		DownScroller:  downScroller,
		GraphicsFlags: graphicsFlags,
		DoorListPtr:   doorListPtr,
	}, nil
}
