package variant

import "github.com/gbakit/savekit/pkg/types"

// Stock signature shared by the original release and the community
// variants built on its engine.
const emeraldSignature = 0x08012025

// Emerald returns the layout of the original release. The roster record
// is 100 bytes: an 80-byte core followed by the 20-byte battle extension.
func Emerald() Config {
	return Config{
		Name:       "Emerald",
		Signature:  emeraldSignature,
		RecordSize: 100,
		MaxRoster:  6,
		Save: SaveLayout{
			PlayerName:      0x00,
			PlayerNameLen:   8,
			PlayTimeHours:   0x0E,
			PlayTimeMinutes: 0x10,
			PlayTimeSeconds: 0x11,
			PlayTimeFrames:  0x12,
			RosterCount:     0x234,
			Roster:          0x238,
			WorldSectors:    4,
		},
		Record: RecordLayout{
			Personality:    0x00,
			TrainerID:      0x04,
			Nickname:       0x08,
			NicknameLen:    10,
			TrainerName:    0x14,
			TrainerNameLen: 7,
			Species:        0x20,
			HeldItem:       0x22,
			Moves:          [types.MoveCount]int{0x2C, 0x2E, 0x30, 0x32},
			PP:             [types.MoveCount]int{0x34, 0x35, 0x36, 0x37},
			EVs:            [types.StatCount]int{0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D},
			IV:             IVLayout{Packed: true, Word: 0x48},
			Status:         0x50,
			Level:          0x54,
			CurrentHP:      0x56,
			Stats:          [types.StatCount]int{0x58, 0x5A, 0x5C, 0x5E, 0x60, 0x62},
			Ability:        AbilityLayout{Word: 0x50, Slot1Mask: 0x4000_0000, Slot2Mask: 0x8000_0000},
		},
		Checksum: ChecksumFold32,
		Flags:    Flags{ShinyPreview: true},
	}
}

// Quetzal returns the layout of the Quetzal community build. It widens
// the roster record to 104 bytes, relocates the roster, and stores IVs
// one byte per stat instead of packed.
func Quetzal() Config {
	return Config{
		Name:       "Quetzal",
		Signature:  emeraldSignature,
		RecordSize: 104,
		MaxRoster:  6,
		Save: SaveLayout{
			PlayerName:      0x00,
			PlayerNameLen:   8,
			PlayTimeHours:   0x0E,
			PlayTimeMinutes: 0x10,
			PlayTimeSeconds: 0x11,
			PlayTimeFrames:  0x12,
			RosterCount:     0x6A4,
			Roster:          0x6A8,
			WorldSectors:    4,
		},
		Record: RecordLayout{
			Personality:    0x00,
			TrainerID:      0x04,
			Nickname:       0x08,
			NicknameLen:    10,
			TrainerName:    0x14,
			TrainerNameLen: 7,
			Species:        0x20,
			HeldItem:       0x22,
			Moves:          [types.MoveCount]int{0x2C, 0x2E, 0x30, 0x32},
			PP:             [types.MoveCount]int{0x34, 0x35, 0x36, 0x37},
			EVs:            [types.StatCount]int{0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D},
			IV:             IVLayout{Bytes: [types.StatCount]int{0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D}},
			Status:         0x54,
			Level:          0x58,
			CurrentHP:      0x5A,
			Stats:          [types.StatCount]int{0x5C, 0x5E, 0x60, 0x62, 0x64, 0x66},
			Ability:        AbilityLayout{Word: 0x54, Slot1Mask: 0x4000_0000, Slot2Mask: 0x8000_0000},
		},
		Checksum: ChecksumFold32,
		Flags:    Flags{FormPreview: true, ShinyPreview: true},
	}
}

// Builtin lists the variants compiled into this module, in detection
// preference order.
func Builtin() []Config {
	return []Config{Emerald(), Quetzal()}
}
