package types

// MapEntry resolves a game-internal numeric id to its cross-game
// canonical identity. Entries come from externally built mapping tables;
// the codec never generates them at runtime.
type MapEntry struct {
	ID     int    `json:"id"`      // canonical id, -1 when unresolved
	IDName string `json:"id_name"` // machine name, e.g. "SPECIES_TREECKO"
	Name   string `json:"name"`    // display name
}

// UnknownEntry is the explicit fallback for ids absent from a mapping
// table. Reads degrade to this value; they never fail.
var UnknownEntry = MapEntry{ID: -1, IDName: "", Name: "???"}

// Known reports whether the entry carries a resolved canonical id.
func (m MapEntry) Known() bool { return m.ID >= 0 }
