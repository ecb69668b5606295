package save

import "github.com/gbakit/savekit/pkg/types"

// MoveSnapshot pairs a move slot's raw id, canonical identity, and
// remaining power points.
type MoveSnapshot struct {
	Raw       uint16         `json:"raw_id"`
	Canonical types.MapEntry `json:"canonical"`
	PP        uint8          `json:"pp"`
}

// EntrySnapshot is the plain, fully decoded form of one roster entry,
// used for JSON export and by the HTTP facade. Identifier fields carry
// both the raw id and the canonical identity so cross-game tooling never
// has to touch raw ids.
type EntrySnapshot struct {
	Slot        int            `json:"slot"`
	Personality uint32         `json:"personality"`
	TrainerID   uint32         `json:"trainer_id"`
	Nickname    string         `json:"nickname"`
	TrainerName string         `json:"trainer_name"`
	Species     uint16         `json:"species_raw"`
	SpeciesInfo types.MapEntry `json:"species"`
	HeldItem    uint16         `json:"held_item_raw"`
	HeldInfo    types.MapEntry `json:"held_item"`
	Level       uint8          `json:"level"`
	CurrentHP   uint16         `json:"current_hp"`
	Status      uint32         `json:"status"`
	Nature      types.Nature   `json:"nature"`
	AbilitySlot int            `json:"ability_slot"`
	Shiny       bool           `json:"is_shiny"`
	ShinyValue  uint16         `json:"shiny_value"`
	Stats       types.Stats    `json:"stats"`
	EVs         types.EVs      `json:"evs"`
	IVs         types.IVs      `json:"ivs"`
	Moves       []MoveSnapshot `json:"moves"`
}

// ContainerSnapshot is the plain form of a parsed save.
type ContainerSnapshot struct {
	Variant    string          `json:"variant"`
	ActiveSlot int             `json:"active_slot"`
	PlayerName string          `json:"player_name"`
	PlayTime   types.PlayTime  `json:"play_time"`
	Entries    []EntrySnapshot `json:"entries"`
}

// Snapshot decodes every field of an entry into its plain form.
func (e *Entry) Snapshot() (EntrySnapshot, error) {
	var (
		s   EntrySnapshot
		err error
	)
	s.Slot = e.Slot()
	if s.Personality, err = e.Personality(); err != nil {
		return s, err
	}
	if s.TrainerID, err = e.TrainerID(); err != nil {
		return s, err
	}
	if s.Nickname, err = e.Nickname(); err != nil {
		return s, err
	}
	if s.TrainerName, err = e.TrainerName(); err != nil {
		return s, err
	}
	if s.Species, err = e.RawSpecies(); err != nil {
		return s, err
	}
	s.SpeciesInfo = e.cfg.Mappings.Species.Lookup(s.Species)
	if s.HeldItem, err = e.RawHeldItem(); err != nil {
		return s, err
	}
	s.HeldInfo = e.cfg.Mappings.Items.Lookup(s.HeldItem)
	if s.Level, err = e.Level(); err != nil {
		return s, err
	}
	if s.CurrentHP, err = e.CurrentHP(); err != nil {
		return s, err
	}
	if s.Status, err = e.StatusFlags(); err != nil {
		return s, err
	}
	if s.Nature, err = e.Nature(); err != nil {
		return s, err
	}
	if s.AbilitySlot, err = e.AbilitySlot(); err != nil {
		return s, err
	}
	if s.ShinyValue, err = e.ShinyValue(); err != nil {
		return s, err
	}
	s.Shiny = s.ShinyValue < 8
	if s.Stats, err = e.Stats(); err != nil {
		return s, err
	}
	if s.EVs, err = e.EVs(); err != nil {
		return s, err
	}
	if s.IVs, err = e.IVs(); err != nil {
		return s, err
	}
	s.Moves = make([]MoveSnapshot, types.MoveCount)
	for i := range s.Moves {
		raw, err := e.RawMove(i)
		if err != nil {
			return s, err
		}
		pp, err := e.PPValue(i)
		if err != nil {
			return s, err
		}
		s.Moves[i] = MoveSnapshot{
			Raw:       raw,
			Canonical: e.cfg.Mappings.Moves.Lookup(raw),
			PP:        pp,
		}
	}
	return s, nil
}

// Snapshot decodes the container's aggregate state into its plain form.
func (c *Container) Snapshot() (ContainerSnapshot, error) {
	out := ContainerSnapshot{
		Variant:    c.cfg.Name,
		ActiveSlot: c.ActiveSlot(),
		PlayerName: c.playerName,
		PlayTime:   c.playTime,
		Entries:    make([]EntrySnapshot, 0, len(c.entries)),
	}
	for _, e := range c.entries {
		s, err := e.Snapshot()
		if err != nil {
			return out, err
		}
		out.Entries = append(out.Entries, s)
	}
	return out, nil
}
