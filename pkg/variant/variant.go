// Package variant declares the per-game layout and identifier mappings
// the codec operates through. A Config is purely declarative: decoders
// ask it for offsets and never assume a fixed global layout, so adding a
// game is writing one more config value, not one more code path.
package variant

import (
	"github.com/gbakit/savekit/internal/format"
	"github.com/gbakit/savekit/pkg/types"
)

// SaveLayout locates the top-level fields inside the assembled save
// blocks. Trainer fields live in the trainer block (logical sector 0);
// roster fields live in the world block (logical sectors 1..n).
type SaveLayout struct {
	// Trainer block.
	PlayerName      int `yaml:"player_name"`
	PlayerNameLen   int `yaml:"player_name_len"`
	PlayTimeHours   int `yaml:"play_time_hours"`
	PlayTimeMinutes int `yaml:"play_time_minutes"`
	PlayTimeSeconds int `yaml:"play_time_seconds"`
	PlayTimeFrames  int `yaml:"play_time_frames"`

	// World block.
	RosterCount  int `yaml:"roster_count"`
	Roster       int `yaml:"roster"`
	WorldSectors int `yaml:"world_sectors"` // logical sectors 1..WorldSectors form the world block
}

// IVLayout states how a variant stores the six individual values: either
// packed five bits apiece into one 32-bit word, or one byte per stat.
type IVLayout struct {
	Packed bool            `yaml:"packed"`
	Word   int             `yaml:"word"`  // packed word offset
	Bytes  [types.StatCount]int `yaml:"bytes"` // per-stat byte offsets when not packed
}

// AbilityLayout names the word and the two bits the ability slot is
// derived from. The slot-2 bit wins over the slot-1 bit; neither set
// means slot 0. No other pattern is meaningful.
type AbilityLayout struct {
	Word      int    `yaml:"word"`
	Slot1Mask uint32 `yaml:"slot1_mask"`
	Slot2Mask uint32 `yaml:"slot2_mask"`
}

// RecordLayout locates every modeled field inside one roster record.
// Array offsets are listed in canonical stat/slot order; on-disk
// reordering is expressed here, never in the codec.
type RecordLayout struct {
	Personality    int `yaml:"personality"`
	TrainerID      int `yaml:"trainer_id"`
	Nickname       int `yaml:"nickname"`
	NicknameLen    int `yaml:"nickname_len"`
	TrainerName    int `yaml:"trainer_name"`
	TrainerNameLen int `yaml:"trainer_name_len"`

	Species  int `yaml:"species"`   // u16
	HeldItem int `yaml:"held_item"` // u16

	Moves [types.MoveCount]int `yaml:"moves"` // u16 each
	PP    [types.MoveCount]int `yaml:"pp"`    // u8 each
	EVs   [types.StatCount]int `yaml:"evs"`   // u8 each
	IV    IVLayout             `yaml:"ivs"`

	Status    int `yaml:"status"`     // u32
	Level     int `yaml:"level"`      // u8
	CurrentHP int `yaml:"current_hp"` // u16

	Stats [types.StatCount]int `yaml:"stats"` // u16 each

	Ability AbilityLayout `yaml:"ability"`
}

// Checksum selects the section checksum algorithm a variant declares.
type Checksum uint8

const (
	// ChecksumFold32 is the stock fold-of-u32-sum sector checksum.
	ChecksumFold32 Checksum = iota
)

// Sum computes the checksum over a sector payload.
func (c Checksum) Sum(data []byte) uint16 {
	switch c {
	case ChecksumFold32:
		return format.FoldChecksum(data)
	default:
		return format.FoldChecksum(data)
	}
}

// Flags gate optional UI-facing behavior. They never gate codec
// correctness.
type Flags struct {
	FormPreview  bool `yaml:"form_preview"`  // alternate/boosted-form preview supported
	ShinyPreview bool `yaml:"shiny_preview"` // shiny palette preview supported
}

// Config is the immutable description of one game's layout. Instances
// are values; nothing mutates them after construction.
type Config struct {
	Name       string `yaml:"name"`
	Signature  uint32 `yaml:"signature"`
	RecordSize int    `yaml:"record_size"`
	MaxRoster  int    `yaml:"max_roster"`

	Save   SaveLayout   `yaml:"save"`
	Record RecordLayout `yaml:"record"`

	Checksum Checksum `yaml:"-"`
	Flags    Flags    `yaml:"flags"`

	Mappings Mappings `yaml:"-"`
}
