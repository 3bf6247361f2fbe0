// Package binreader implements a little-endian typed cursor over a byte
// slice, used by every structured parser to walk fixed- and
// variable-length records without manual index arithmetic.
//
// Modelled on konkers/sm's util.rs RomReader: every Reader carries the
// absolute ROM offset its slice started at, so a short-read error names
// the real cartridge address rather than a position relative to the
// record being parsed.
package binreader

import (
	"fmt"

	"supermetroid/internal/smerr"
)

// Reader is a cursor over a byte slice with little-endian typed reads.
type Reader struct {
	data   []byte
	pos    int
	origin int // absolute ROM offset that data[0] corresponds to, for error messages
}

// New creates a Reader over data, reporting absolute offsets in errors as
// if data[0] were located at rom address origin.
func New(data []byte, origin int) *Reader {
	return &Reader{data: data, origin: origin}
}

// Position returns the current cursor position relative to the start of
// the underlying slice.
func (r *Reader) Position() int {
	return r.pos
}

// AbsolutePosition returns the current cursor position as an absolute ROM
// offset (origin + Position()).
func (r *Reader) AbsolutePosition() int {
	return r.origin + r.pos
}

// Seek moves the cursor to an absolute position within the slice.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("%w: seek to %d, slice length %d", smerr.ErrShortRead, pos, len(r.data))
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("%w: need %d bytes at rom offset 0x%x, have %d", smerr.ErrShortRead, n, r.origin+r.pos, len(r.data)-r.pos)
	}
	return nil
}

// ReadU8 reads a single byte and advances the cursor.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16LE reads a little-endian 16-bit value and advances the cursor.
func (r *Reader) ReadU16LE() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

// ReadU24LE reads a little-endian 24-bit value and advances the cursor.
func (r *Reader) ReadU24LE() (uint32, error) {
	if err := r.need(3); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos]) | uint32(r.data[r.pos+1])<<8 | uint32(r.data[r.pos+2])<<16
	r.pos += 3
	return v, nil
}

// ReadBytes reads n raw bytes and advances the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.data[r.pos:r.pos+n])
	r.pos += n
	return b, nil
}
