package api

import (
	"fmt"

	"github.com/gbakit/savekit/pkg/save"
	"github.com/gbakit/savekit/pkg/types"
)

// uploadResponse is the body returned for a successful upload.
type uploadResponse struct {
	ID   string                 `json:"id"`
	Save save.ContainerSnapshot `json:"save"`
}

// editRequest carries a batch of field edits.
type editRequest struct {
	Edits []entryEdit `json:"edits"`
}

// entryEdit edits one roster entry. Only non-nil fields are applied.
// Identifier edits use canonical ids; raw variants exist for tooling
// that works below the mapping layer.
type entryEdit struct {
	Slot        int          `json:"slot"`
	Personality *uint32      `json:"personality,omitempty"`
	Nickname    *string      `json:"nickname,omitempty"`
	TrainerName *string      `json:"trainer_name,omitempty"`
	Level       *uint8       `json:"level,omitempty"`
	CurrentHP   *uint16      `json:"current_hp,omitempty"`
	Species     *int         `json:"species,omitempty"`
	RawSpecies  *uint16      `json:"species_raw,omitempty"`
	HeldItem    *int         `json:"held_item,omitempty"`
	RawHeldItem *uint16      `json:"held_item_raw,omitempty"`
	Stats       *types.Stats `json:"stats,omitempty"`
	EVs         *types.EVs   `json:"evs,omitempty"`
	IVs         *types.IVs   `json:"ivs,omitempty"`
	Moves       []moveEdit   `json:"moves,omitempty"`
}

type moveEdit struct {
	Slot      int     `json:"slot"`
	Canonical *int    `json:"canonical,omitempty"`
	Raw       *uint16 `json:"raw,omitempty"`
	PP        *uint8  `json:"pp,omitempty"`
}

// applyEdits applies a batch against the working roster. The first
// failing edit aborts the batch; entries edited before the failure keep
// their changes, which is fine because reconstruction is driven by an
// explicit follow-up request.
func applyEdits(entries []*save.Entry, edits []entryEdit) error {
	for _, ed := range edits {
		if ed.Slot < 0 || ed.Slot >= len(entries) {
			return fmt.Errorf("edit targets slot %d of %d", ed.Slot, len(entries))
		}
		if err := applyOne(entries[ed.Slot], ed); err != nil {
			return fmt.Errorf("slot %d: %w", ed.Slot, err)
		}
	}
	return nil
}

func applyOne(e *save.Entry, ed entryEdit) error {
	if ed.Personality != nil {
		if err := e.SetPersonality(*ed.Personality); err != nil {
			return err
		}
	}
	if ed.Nickname != nil {
		if err := e.SetNickname(*ed.Nickname); err != nil {
			return err
		}
	}
	if ed.TrainerName != nil {
		if err := e.SetTrainerName(*ed.TrainerName); err != nil {
			return err
		}
	}
	if ed.Level != nil {
		if err := e.SetLevel(*ed.Level); err != nil {
			return err
		}
	}
	if ed.CurrentHP != nil {
		if err := e.SetCurrentHP(*ed.CurrentHP); err != nil {
			return err
		}
	}
	if ed.Species != nil {
		if err := e.SetSpecies(*ed.Species); err != nil {
			return err
		}
	}
	if ed.RawSpecies != nil {
		if err := e.SetRawSpecies(*ed.RawSpecies); err != nil {
			return err
		}
	}
	if ed.HeldItem != nil {
		if err := e.SetHeldItem(*ed.HeldItem); err != nil {
			return err
		}
	}
	if ed.RawHeldItem != nil {
		if err := e.SetRawHeldItem(*ed.RawHeldItem); err != nil {
			return err
		}
	}
	if ed.Stats != nil {
		if err := e.SetStats(*ed.Stats); err != nil {
			return err
		}
	}
	if ed.EVs != nil {
		if err := e.SetEVs(*ed.EVs); err != nil {
			return err
		}
	}
	if ed.IVs != nil {
		if err := e.SetIVs(*ed.IVs); err != nil {
			return err
		}
	}
	for _, m := range ed.Moves {
		if m.Canonical != nil {
			if err := e.SetMove(m.Slot, *m.Canonical); err != nil {
				return err
			}
		}
		if m.Raw != nil {
			if err := e.SetRawMove(m.Slot, *m.Raw); err != nil {
				return err
			}
		}
		if m.PP != nil {
			if err := e.SetPPValue(m.Slot, *m.PP); err != nil {
				return err
			}
		}
	}
	return nil
}
