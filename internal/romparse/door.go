package romparse

import (
	"fmt"

	"supermetroid/internal/addr"
	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
)

// DoorDataSize is the fixed wire size, in bytes, of one door-list entry.
const DoorDataSize = 12

// ParseDoors reads count 12-byte door-list entries starting at the given
// short-pointer (implicit bank 0x8f).
func ParseDoors(rom []byte, listPtr uint16, count int) ([]model.DoorData, error) {
	start := addr.RomOf(addr.DoorDestBank, listPtr)
	r := binreader.New(rom, 0)
	if err := r.Seek(int(start)); err != nil {
		return nil, fmt.Errorf("seeking to door list at 0x%x: %w", start, err)
	}

	doors := make([]model.DoorData, 0, count)
	for i := 0; i < count; i++ {
		destRoom, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("door %d dest_room: %w", i, err)
		}
		elevatorProps, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d elevator_props: %w", i, err)
		}
		orientation, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d orientation: %w", i, err)
		}
		xLo, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d x low byte: %w", i, err)
		}
		xHi, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d x high byte: %w", i, err)
		}
		yLo, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d y low byte: %w", i, err)
		}
		yHi, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("door %d y high byte: %w", i, err)
		}
		spawnDist, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("door %d spawn_dist: %w", i, err)
		}
		asm, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("door %d asm: %w", i, err)
		}

		doors = append(doors, model.DoorData{
			DestRoom:      destRoom,
			ElevatorProps: elevatorProps,
			Orientation:   orientation,
			X:             uint16(xLo) | uint16(xHi)<<8,
			Y:             uint16(yLo) | uint16(yHi)<<8,
			SpawnDist:     spawnDist,
			Asm:           asm,
		})
	}
	return doors, nil
}
