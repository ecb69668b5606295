package save_test

import (
	"encoding/binary"
	"testing"

	"github.com/gbakit/savekit/internal/format"
	"github.com/gbakit/savekit/internal/gbatext"
	"github.com/gbakit/savekit/pkg/types"
	"github.com/gbakit/savekit/pkg/variant"
)

// synthImage builds a minimal valid save image: two slots of 14 sectors
// with valid footers, slot 1 carrying the higher save counters. mutate
// runs against the trainer and world payloads of slot 1 before the
// checksums are sealed.
func synthImage(t *testing.T, cfg variant.Config, mutate func(trainer, world []byte)) []byte {
	t.Helper()
	image := make([]byte, format.SaveFileSize)

	trainer := make([]byte, format.SectorDataSize)
	world := make([]byte, format.SectorDataSize*cfg.Save.WorldSectors)
	if mutate != nil {
		mutate(trainer, world)
	}

	seal := func(phys int, id uint16, counter uint32, payload []byte) {
		base := phys * format.SectorSize
		copy(image[base:base+format.SectorDataSize], payload)
		sum := cfg.Checksum.Sum(image[base : base+format.SectorDataSize])
		foot := image[base+format.SectorSize-format.FooterSize:]
		binary.LittleEndian.PutUint16(foot[0:], id)
		binary.LittleEndian.PutUint16(foot[2:], sum)
		binary.LittleEndian.PutUint32(foot[4:], cfg.Signature)
		binary.LittleEndian.PutUint32(foot[8:], counter)
	}

	for slot := 0; slot < 2; slot++ {
		counter := uint32(2)
		if slot == 1 {
			counter = 1
		}
		for id := 0; id < format.SlotSectors; id++ {
			phys := slot*format.SlotSectors + id
			var payload []byte
			switch {
			case slot == 0 && id == 0:
				payload = trainer
			case slot == 0 && id >= 1 && id <= cfg.Save.WorldSectors:
				payload = world[(id-1)*format.SectorDataSize : id*format.SectorDataSize]
			default:
				payload = make([]byte, format.SectorDataSize)
			}
			seal(phys, uint16(id), counter, payload)
		}
	}
	return image
}

// synthRecord builds one roster record for cfg with distinct,
// recognizable field values.
func synthRecord(cfg variant.Config, personality, trainerID uint32, species uint16, level uint8) []byte {
	rec := make([]byte, cfg.RecordSize)
	lay := cfg.Record
	binary.LittleEndian.PutUint32(rec[lay.Personality:], personality)
	binary.LittleEndian.PutUint32(rec[lay.TrainerID:], trainerID)
	copy(rec[lay.Nickname:], gbatext.Encode("RUNT", lay.NicknameLen))
	copy(rec[lay.TrainerName:], gbatext.Encode("IVY", lay.TrainerNameLen))
	binary.LittleEndian.PutUint16(rec[lay.Species:], species)
	binary.LittleEndian.PutUint16(rec[lay.HeldItem:], 13)
	for i, off := range lay.Moves {
		binary.LittleEndian.PutUint16(rec[off:], uint16(100+i))
	}
	for i, off := range lay.PP {
		rec[off] = uint8(10 + i)
	}
	for i, off := range lay.EVs {
		rec[off] = uint8(4 * (i + 1))
	}
	if lay.IV.Packed {
		var word uint32
		for i := 0; i < types.StatCount; i++ {
			word |= uint32(20+i) << (5 * i)
		}
		binary.LittleEndian.PutUint32(rec[lay.IV.Word:], word)
	} else {
		for i, off := range lay.IV.Bytes {
			rec[off] = uint8(20 + i)
		}
	}
	rec[lay.Level] = level
	binary.LittleEndian.PutUint16(rec[lay.CurrentHP:], 37)
	for i, off := range lay.Stats {
		binary.LittleEndian.PutUint16(rec[off:], uint16(40+10*i))
	}
	return rec
}

// putRoster writes count and records into a world block.
func putRoster(world []byte, cfg variant.Config, records ...[]byte) {
	binary.LittleEndian.PutUint32(world[cfg.Save.RosterCount:], uint32(len(records)))
	for i, rec := range records {
		copy(world[cfg.Save.Roster+i*cfg.RecordSize:], rec)
	}
}

// putTrainer writes the player name and play time into a trainer block.
func putTrainer(trainer []byte, cfg variant.Config, name string, pt types.PlayTime) {
	lay := cfg.Save
	copy(trainer[lay.PlayerName:], gbatext.Encode(name, lay.PlayerNameLen))
	binary.LittleEndian.PutUint16(trainer[lay.PlayTimeHours:], pt.Hours)
	trainer[lay.PlayTimeMinutes] = pt.Minutes
	trainer[lay.PlayTimeSeconds] = pt.Seconds
	trainer[lay.PlayTimeFrames] = pt.Frames
}

// testMappings builds small species/item/move tables through the public
// JSON loader.
func testMappings(t *testing.T) variant.Mappings {
	t.Helper()
	speciesJSON := []byte(`{
		"277": {"name": "Treecko", "id_name": "SPECIES_TREECKO", "id": 252},
		"278": {"name": "Grovyle", "id_name": "SPECIES_GROVYLE", "id": 253},
		"999": {"name": "Glitchling", "id_name": "SPECIES_GLITCHLING", "id": null}
	}`)
	itemsJSON := []byte(`{
		"13": {"name": "Potion", "id_name": "ITEM_POTION", "id": 17}
	}`)
	movesJSON := []byte(`{
		"100": {"name": "Pound", "id_name": "MOVE_POUND", "id": 1},
		"101": {"name": "Scratch", "id_name": "MOVE_SCRATCH", "id": 10}
	}`)
	species, err := variant.ParseTable(speciesJSON)
	if err != nil {
		t.Fatalf("species table: %v", err)
	}
	items, err := variant.ParseTable(itemsJSON)
	if err != nil {
		t.Fatalf("items table: %v", err)
	}
	moves, err := variant.ParseTable(movesJSON)
	if err != nil {
		t.Fatalf("moves table: %v", err)
	}
	return variant.Mappings{Species: species, Items: items, Moves: moves}
}

// emeraldWithMappings is the stock layout plus the test tables.
func emeraldWithMappings(t *testing.T) variant.Config {
	cfg := variant.Emerald()
	cfg.Mappings = testMappings(t)
	return cfg
}
