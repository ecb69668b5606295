package types

// Canonical stat order used by every array in this module, regardless of
// the byte order a particular game stores them in. Variant configs remap
// on-disk positions into this order.
const (
	StatHP = iota
	StatAttack
	StatDefense
	StatSpeed
	StatSpAttack
	StatSpDefense

	StatCount = 6
)

// MoveCount is the number of move slots in a roster entry.
const MoveCount = 4

// Fixed-length value arrays in canonical stat order.
type (
	Stats [StatCount]uint16
	EVs   [StatCount]uint8
	IVs   [StatCount]uint8
	Moves [MoveCount]uint16
	PP    [MoveCount]uint8
)

// StatName returns the display name for a canonical stat index.
func StatName(i int) string {
	switch i {
	case StatHP:
		return "HP"
	case StatAttack:
		return "Attack"
	case StatDefense:
		return "Defense"
	case StatSpeed:
		return "Speed"
	case StatSpAttack:
		return "Sp. Attack"
	case StatSpDefense:
		return "Sp. Defense"
	default:
		return "Unknown"
	}
}

// PlayTime is the elapsed play time stored in the trainer block.
type PlayTime struct {
	Hours   uint16 `json:"hours"`
	Minutes uint8  `json:"minutes"`
	Seconds uint8  `json:"seconds"`
	Frames  uint8  `json:"frames"`
}

// HPStat computes the HP stat from base stat, IV, EV and level using the
// third-generation formula.
func HPStat(base uint16, iv, ev, level uint8) uint16 {
	b, i, e, l := uint32(base), uint32(iv), uint32(ev), uint32(level)
	return uint16((2*b+i+e/4)*l/100 + l + 10)
}

// Stat computes a non-HP stat, applying the nature multiplier for the
// given canonical stat index.
func Stat(base uint16, iv, ev, level uint8, n Nature, stat int) uint16 {
	b, i, e, l := uint32(base), uint32(iv), uint32(ev), uint32(level)
	v := (2*b+i+e/4)*l/100 + 5
	switch stat {
	case n.Increased:
		return uint16(float32(v) * 1.1)
	case n.Decreased:
		return uint16(float32(v) * 0.9)
	default:
		return uint16(v)
	}
}

// ShinyValue combines the personality seed with the trainer id. Values
// below 8 mark the entry as shiny.
func ShinyValue(personality, trainerID uint32) uint16 {
	return uint16(personality>>16) ^ uint16(personality) ^
		uint16(trainerID>>16) ^ uint16(trainerID)
}

// IsShiny reports whether the personality/trainer-id pair is shiny.
func IsShiny(personality, trainerID uint32) bool {
	return ShinyValue(personality, trainerID) < 8
}
