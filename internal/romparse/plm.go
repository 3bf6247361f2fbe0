package romparse

import (
	"fmt"

	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
)

// PlmEntrySize is the fixed wire size, in bytes, of one PLM entry.
const PlmEntrySize = 6

// ParsePlmList reads 6-byte PLM entries starting at the given ROM offset
// until an entry with id == 0x0000 terminates the list. The terminator
// itself is not included in the result.
func ParsePlmList(rom []byte, start int) ([]model.Plm, error) {
	r := binreader.New(rom, 0)
	if err := r.Seek(start); err != nil {
		return nil, fmt.Errorf("seeking to plm list at 0x%x: %w", start, err)
	}

	var plms []model.Plm
	for {
		id, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("plm %d id: %w", len(plms), err)
		}
		if id == 0 {
			return plms, nil
		}
		x, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("plm %d x: %w", len(plms), err)
		}
		y, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("plm %d y: %w", len(plms), err)
		}
		param, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("plm %d param: %w", len(plms), err)
		}
		plms = append(plms, model.Plm{ID: id, X: x, Y: y, Param: param})
	}
}
