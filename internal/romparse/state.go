package romparse

import (
	"fmt"

	"supermetroid/internal/addr"
	"supermetroid/internal/binreader"
	"supermetroid/internal/model"
	"supermetroid/internal/smerr"
)

// StateDataSize is the fixed wire size, in bytes, of a StateData record.
const StateDataSize = 26

// conditionTags maps every known wire selector to its condition kind;
// a selector missing from it is an unknown tag.
var conditionTags = map[model.StateConditionTag]model.StateConditionKind{
	model.TagDoorPointerIs:           model.CondDoorPointerIs,
	model.TagMainAreaBossDead:        model.CondMainAreaBossDead,
	model.TagEventSet:                model.CondEventSet,
	model.TagAreaBossesDead:          model.CondAreaBossesDead,
	model.TagHasMorphBall:            model.CondHasMorphBall,
	model.TagHasMorphBallAndMissiles: model.CondHasMorphBallAndMissiles,
	model.TagHasPowerBombs:           model.CondHasPowerBombs,
	model.TagHasSpeedBooster:         model.CondHasSpeedBooster,
	model.TagDefault:                 model.CondDefault,
}

// ParseStates reads a room's condition+state list. rom is the full
// cartridge image; start is the flat ROM offset immediately following the
// 11-byte room header. Parsing continues until the Default condition is
// read, which both terminates the list and (per the format) implicitly
// points to the StateData located at the list's tail offset.
func ParseStates(rom []byte, start addr.RomOffset) ([]model.State, error) {
	r := binreader.New(rom, 0)
	if err := r.Seek(int(start)); err != nil {
		return nil, fmt.Errorf("seeking to state list at 0x%x: %w", start, err)
	}

	var states []model.State
	for {
		tagRaw, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("reading state condition tag: %w", err)
		}
		tag := model.StateConditionTag(tagRaw)
		kind, ok := conditionTags[tag]
		if !ok {
			return nil, fmt.Errorf("%w: StateConditionValue 0x%04x at rom offset 0x%x", smerr.ErrUnknownEnumTag, tagRaw, r.AbsolutePosition()-2)
		}

		width, err := tag.PayloadWidth()
		if err != nil {
			return nil, err
		}

		cond := model.StateCondition{Kind: kind}
		switch kind {
		case model.CondDoorPointerIs:
			v, err := r.ReadU16LE()
			if err != nil {
				return nil, fmt.Errorf("reading DoorPointerIs payload: %w", err)
			}
			cond.DoorPointer = v
		case model.CondEventSet:
			v, err := r.ReadU8()
			if err != nil {
				return nil, fmt.Errorf("reading EventSet payload: %w", err)
			}
			ev, err := model.ParseEvent(v)
			if err != nil {
				return nil, err
			}
			cond.Event = ev
		case model.CondAreaBossesDead:
			v, err := r.ReadU8()
			if err != nil {
				return nil, fmt.Errorf("reading AreaBossesDead payload: %w", err)
			}
			cond.AreaBossesMask = v
		default:
			if width != 0 {
				return nil, fmt.Errorf("%w: StateConditionValue 0x%04x declares width %d with no decoder", smerr.ErrUnknownEnumTag, tagRaw, width)
			}
		}

		var dataOffset addr.RomOffset
		if kind == model.CondDefault {
			dataOffset = addr.RomOffset(r.AbsolutePosition())
		} else {
			ptr, err := r.ReadU16LE()
			if err != nil {
				return nil, fmt.Errorf("reading state data pointer: %w", err)
			}
			dataOffset = addr.RomOf(addr.StateDataBank, ptr)
		}

		data, err := ParseStateData(rom, dataOffset)
		if err != nil {
			return nil, fmt.Errorf("state data for condition 0x%04x: %w", tagRaw, err)
		}

		states = append(states, model.State{Condition: cond, Data: *data})

		if kind == model.CondDefault {
			return states, nil
		}
	}
}

// ParseStateData reads the fixed 26-byte StateData record at the given ROM
// offset. Fields are read in wire order: level_data (3 bytes), tile_set,
// music_data_index, music_track (1 byte each), fx, enemy_population,
// enemy_set (2 each), layer-2 scroll x and y (1 each), then scroll,
// x_ray_block, main_asm, plm, bg, setup_asm (2 each).
func ParseStateData(rom []byte, offset addr.RomOffset) (*model.StateData, error) {
	r := binreader.New(rom, 0)
	if err := r.Seek(int(offset)); err != nil {
		return nil, fmt.Errorf("seeking to state data at 0x%x: %w", offset, err)
	}

	levelData, err := r.ReadU24LE()
	if err != nil {
		return nil, fmt.Errorf("state data level_data ptr: %w", err)
	}
	tileSetRaw, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("state data tile_set: %w", err)
	}
	tileSet, err := decodeTileSetID(tileSetRaw)
	if err != nil {
		return nil, fmt.Errorf("state data at rom offset 0x%x: %w", offset, err)
	}
	musicDataIndex, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("state data music_data_index: %w", err)
	}
	musicTrack, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("state data music_track: %w", err)
	}
	fx, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data fx: %w", err)
	}
	enemyPopulation, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data enemy_population: %w", err)
	}
	enemySet, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data enemy_set: %w", err)
	}
	layer2X, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("state data layer2 scroll x: %w", err)
	}
	layer2Y, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("state data layer2 scroll y: %w", err)
	}
	scroll, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data scroll: %w", err)
	}
	xRayBlock, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data x_ray_block: %w", err)
	}
	mainAsm, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data main_asm: %w", err)
	}
	plm, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data plm: %w", err)
	}
	bg, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data bg: %w", err)
	}
	setupAsm, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("state data setup_asm: %w", err)
	}

	return &model.StateData{
		LevelData:       addr.BankedAddr(levelData),
		TileSet:         tileSet,
		MusicDataIndex:  musicDataIndex,
		MusicTrack:      musicTrack,
		FX:              fx,
		EnemyPopulation: enemyPopulation,
		EnemySet:        enemySet,
		Layer2ScrollX:   layer2X,
		Layer2ScrollY:   layer2Y,
		Scroll:          scroll,
		XRayBlock:       xRayBlock,
		MainAsm:         mainAsm,
		Plm:             plm,
		Bg:              bg,
		SetupAsm:        setupAsm,
	}, nil
}

// AllowUnknownTileSetID, when set, accepts a tile_set byte outside the
// documented 0x00-0x1C range instead of raising ErrUnknownEnumTag. Some
// earlier ROM hack variants store tile_set as a raw byte rather than a
// closed enumeration; default to strict, as the spec prescribes, but leave
// the door open for callers who need to load such variants.
var AllowUnknownTileSetID = false

func decodeTileSetID(raw uint8) (model.TileSetId, error) {
	id, err := model.ParseTileSetId(raw)
	if err != nil {
		if AllowUnknownTileSetID {
			return model.TileSetId(raw), nil
		}
		return 0, err
	}
	return id, nil
}
