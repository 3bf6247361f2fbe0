// Package smerr defines the sentinel error values shared across the
// loader, parsers, and rasteriser so callers can use errors.Is/errors.As
// instead of matching on message text.
package smerr

import "errors"

var (
	// ErrWrongRomSize is returned when the input is not exactly 0x300000 bytes.
	ErrWrongRomSize = errors.New("wrong rom size")

	// ErrUnknownEnumTag is returned when a wire value does not match any
	// known Area, Event, StateCondition selector, BlockType, TileSetId, or
	// decompression opcode.
	ErrUnknownEnumTag = errors.New("unknown enum tag")

	// ErrShortRead is returned when a read would run past the end of the
	// available bytes.
	ErrShortRead = errors.New("short read")

	// ErrMalformedCompression is returned by the decompressor on a
	// back-reference that points outside the output produced so far, or
	// other structural violations of the compression format.
	ErrMalformedCompression = errors.New("malformed compression stream")

	// ErrOutOfRange is returned when an index (tile, block, table entry)
	// falls outside the bounds of the entity it indexes into.
	ErrOutOfRange = errors.New("index out of range")

	// ErrWrongSizedRoomData is returned when decompressed level data is
	// shorter than num_blocks*3 bytes (longer data is truncated, not
	// rejected), or when tile data is not a multiple of 32 bytes long.
	ErrWrongSizedRoomData = errors.New("wrong sized room data")
)
