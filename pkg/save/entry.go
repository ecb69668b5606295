package save

import (
	"fmt"

	"github.com/gbakit/savekit/internal/buf"
	"github.com/gbakit/savekit/internal/gbatext"
	"github.com/gbakit/savekit/pkg/types"
	"github.com/gbakit/savekit/pkg/variant"
)

// Entry is the typed codec over one roster record. It owns a private
// copy of the record bytes: setters mutate only that copy, and only the
// bytes at the edited field's configured offset and width. Reconstruct
// writes the copy back into the image.
//
// Reads are independent per field; a bounds failure on one field leaves
// every other field readable. Nature and ability slot are derived views
// with no storage of their own: nature follows the personality seed and
// cannot be set directly, mirroring the game.
type Entry struct {
	cfg  variant.Config
	view buf.View
	data []byte
	slot int
}

// NewEntry creates an entry codec over a copy of record.
func NewEntry(record []byte, cfg variant.Config, slot int) (*Entry, error) {
	if len(record) < cfg.RecordSize {
		return nil, fmt.Errorf("record is %d bytes, %s needs %d: %w",
			len(record), cfg.Name, cfg.RecordSize, types.ErrOutOfBounds)
	}
	data := make([]byte, cfg.RecordSize)
	copy(data, record)
	view, err := buf.NewView(data, 0, len(data))
	if err != nil {
		return nil, err
	}
	return &Entry{cfg: cfg, view: view, data: data, slot: slot}, nil
}

// Slot returns the roster slot index the entry was decoded from.
func (e *Entry) Slot() int { return e.slot }

// RecordBytes returns a copy of the entry's current record bytes.
func (e *Entry) RecordBytes() []byte {
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out
}

// --- scalar fields -----------------------------------------------------------

// Personality returns the 32-bit personality seed.
func (e *Entry) Personality() (uint32, error) {
	return e.view.U32(e.cfg.Record.Personality)
}

// SetPersonality replaces the personality seed. Derived traits (nature,
// shininess) follow the new seed as a side effect.
func (e *Entry) SetPersonality(v uint32) error {
	return e.view.PutU32(e.cfg.Record.Personality, v)
}

// TrainerID returns the original trainer id.
func (e *Entry) TrainerID() (uint32, error) {
	return e.view.U32(e.cfg.Record.TrainerID)
}

// SetTrainerID replaces the original trainer id.
func (e *Entry) SetTrainerID(v uint32) error {
	return e.view.PutU32(e.cfg.Record.TrainerID, v)
}

// Level returns the current level.
func (e *Entry) Level() (uint8, error) {
	return e.view.U8(e.cfg.Record.Level)
}

// SetLevel replaces the current level.
func (e *Entry) SetLevel(v uint8) error {
	return e.view.PutU8(e.cfg.Record.Level, v)
}

// CurrentHP returns the current hit points.
func (e *Entry) CurrentHP() (uint16, error) {
	return e.view.U16(e.cfg.Record.CurrentHP)
}

// SetCurrentHP replaces the current hit points.
func (e *Entry) SetCurrentHP(v uint16) error {
	return e.view.PutU16(e.cfg.Record.CurrentHP, v)
}

// StatusFlags returns the raw status word.
func (e *Entry) StatusFlags() (uint32, error) {
	return e.view.U32(e.cfg.Record.Status)
}

// SetStatusFlags replaces the raw status word.
func (e *Entry) SetStatusFlags(v uint32) error {
	return e.view.PutU32(e.cfg.Record.Status, v)
}

// --- names -------------------------------------------------------------------

// Nickname returns the decoded nickname.
func (e *Entry) Nickname() (string, error) {
	b, err := e.view.Bytes(e.cfg.Record.Nickname, e.cfg.Record.NicknameLen)
	if err != nil {
		return "", err
	}
	return gbatext.Decode(b), nil
}

// SetNickname re-encodes and stores the nickname, truncated to the
// field width.
func (e *Entry) SetNickname(s string) error {
	field := gbatext.Encode(s, e.cfg.Record.NicknameLen)
	return e.view.SetBytes(e.cfg.Record.Nickname, field)
}

// TrainerName returns the decoded original trainer name.
func (e *Entry) TrainerName() (string, error) {
	b, err := e.view.Bytes(e.cfg.Record.TrainerName, e.cfg.Record.TrainerNameLen)
	if err != nil {
		return "", err
	}
	return gbatext.Decode(b), nil
}

// SetTrainerName re-encodes and stores the original trainer name.
func (e *Entry) SetTrainerName(s string) error {
	field := gbatext.Encode(s, e.cfg.Record.TrainerNameLen)
	return e.view.SetBytes(e.cfg.Record.TrainerName, field)
}

// --- derived views -----------------------------------------------------------

// Nature derives the nature from the personality seed. There is no
// SetNature: changing nature means changing the seed.
func (e *Entry) Nature() (types.Nature, error) {
	p, err := e.Personality()
	if err != nil {
		return types.Nature{}, err
	}
	return types.NatureOf(p), nil
}

// AbilitySlot derives the ability slot from the variant's declared bits:
// the slot-2 bit wins, else the slot-1 bit, else slot 0. Every bit
// pattern resolves to exactly one of 0, 1, 2.
func (e *Entry) AbilitySlot() (int, error) {
	word, err := e.view.U32(e.cfg.Record.Ability.Word)
	if err != nil {
		return 0, err
	}
	switch {
	case word&e.cfg.Record.Ability.Slot2Mask != 0:
		return 2, nil
	case word&e.cfg.Record.Ability.Slot1Mask != 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// ShinyValue derives the shiny value from seed and trainer id.
func (e *Entry) ShinyValue() (uint16, error) {
	p, err := e.Personality()
	if err != nil {
		return 0, err
	}
	tid, err := e.TrainerID()
	if err != nil {
		return 0, err
	}
	return types.ShinyValue(p, tid), nil
}

// IsShiny reports whether the entry is shiny.
func (e *Entry) IsShiny() (bool, error) {
	v, err := e.ShinyValue()
	return v < 8, err
}

// --- stat arrays -------------------------------------------------------------

// Stat returns the computed stat at canonical index i.
func (e *Entry) Stat(i int) (uint16, error) {
	if err := checkStatIndex(i); err != nil {
		return 0, err
	}
	return e.view.U16(e.cfg.Record.Stats[i])
}

// SetStat writes exactly the two bytes of the stat at canonical index i.
func (e *Entry) SetStat(i int, v uint16) error {
	if err := checkStatIndex(i); err != nil {
		return err
	}
	return e.view.PutU16(e.cfg.Record.Stats[i], v)
}

// Stats returns all six stats in canonical order.
func (e *Entry) Stats() (types.Stats, error) {
	var out types.Stats
	for i := range out {
		v, err := e.Stat(i)
		if err != nil {
			return types.Stats{}, err
		}
		out[i] = v
	}
	return out, nil
}

// SetStats sets each stat at its own offset. The offsets need not be
// contiguous, so this is element-wise, never one bulk write.
func (e *Entry) SetStats(s types.Stats) error {
	for i, v := range s {
		if err := e.SetStat(i, v); err != nil {
			return err
		}
	}
	return nil
}

// EV returns the effort value at canonical index i.
func (e *Entry) EV(i int) (uint8, error) {
	if err := checkStatIndex(i); err != nil {
		return 0, err
	}
	return e.view.U8(e.cfg.Record.EVs[i])
}

// SetEV writes exactly the one byte of the effort value at index i.
func (e *Entry) SetEV(i int, v uint8) error {
	if err := checkStatIndex(i); err != nil {
		return err
	}
	return e.view.PutU8(e.cfg.Record.EVs[i], v)
}

// EVs returns all six effort values in canonical order.
func (e *Entry) EVs() (types.EVs, error) {
	var out types.EVs
	for i := range out {
		v, err := e.EV(i)
		if err != nil {
			return types.EVs{}, err
		}
		out[i] = v
	}
	return out, nil
}

// SetEVs sets each effort value at its own offset.
func (e *Entry) SetEVs(evs types.EVs) error {
	for i, v := range evs {
		if err := e.SetEV(i, v); err != nil {
			return err
		}
	}
	return nil
}

// IV returns the individual value at canonical index i, honoring the
// variant's packing.
func (e *Entry) IV(i int) (uint8, error) {
	if err := checkStatIndex(i); err != nil {
		return 0, err
	}
	iv := e.cfg.Record.IV
	if iv.Packed {
		word, err := e.view.U32(iv.Word)
		if err != nil {
			return 0, err
		}
		return uint8(word >> (5 * i) & 0x1F), nil
	}
	return e.view.U8(iv.Bytes[i])
}

// SetIV writes the individual value at index i. For packed layouts the
// owning field is the whole 32-bit word; for byte layouts it is one byte.
func (e *Entry) SetIV(i int, v uint8) error {
	if err := checkStatIndex(i); err != nil {
		return err
	}
	iv := e.cfg.Record.IV
	if iv.Packed {
		if v > 0x1F {
			return fmt.Errorf("iv %d out of range (packed max 31)", v)
		}
		word, err := e.view.U32(iv.Word)
		if err != nil {
			return err
		}
		shift := 5 * i
		word = word&^(uint32(0x1F)<<shift) | uint32(v)<<shift
		return e.view.PutU32(iv.Word, word)
	}
	return e.view.PutU8(iv.Bytes[i], v)
}

// IVs returns all six individual values in canonical order.
func (e *Entry) IVs() (types.IVs, error) {
	var out types.IVs
	for i := range out {
		v, err := e.IV(i)
		if err != nil {
			return types.IVs{}, err
		}
		out[i] = v
	}
	return out, nil
}

// SetIVs sets each individual value.
func (e *Entry) SetIVs(ivs types.IVs) error {
	for i, v := range ivs {
		if err := e.SetIV(i, v); err != nil {
			return err
		}
	}
	return nil
}

// --- moves -------------------------------------------------------------------

// RawMove returns the game-internal move id in slot i.
func (e *Entry) RawMove(i int) (uint16, error) {
	if err := checkMoveIndex(i); err != nil {
		return 0, err
	}
	return e.view.U16(e.cfg.Record.Moves[i])
}

// Move resolves the move in slot i to its canonical identity, falling
// back to the unknown sentinel for unmapped ids.
func (e *Entry) Move(i int) (types.MapEntry, error) {
	raw, err := e.RawMove(i)
	if err != nil {
		return types.MapEntry{}, err
	}
	return e.cfg.Mappings.Moves.Lookup(raw), nil
}

// SetRawMove stores a game-internal move id in slot i.
func (e *Entry) SetRawMove(i int, raw uint16) error {
	if err := checkMoveIndex(i); err != nil {
		return err
	}
	return e.view.PutU16(e.cfg.Record.Moves[i], raw)
}

// SetMove stores the move with the given canonical id in slot i. It
// fails when this variant has no in-game id for it; it never writes 0.
func (e *Entry) SetMove(i int, canonical int) error {
	raw, ok := e.cfg.Mappings.Moves.Inverse(canonical)
	if !ok {
		return fmt.Errorf("move canonical id %d: %w", canonical, types.ErrUnmappedID)
	}
	return e.SetRawMove(i, raw)
}

// PPValue returns the remaining power points for move slot i.
func (e *Entry) PPValue(i int) (uint8, error) {
	if err := checkMoveIndex(i); err != nil {
		return 0, err
	}
	return e.view.U8(e.cfg.Record.PP[i])
}

// SetPPValue replaces the power points for move slot i.
func (e *Entry) SetPPValue(i int, v uint8) error {
	if err := checkMoveIndex(i); err != nil {
		return err
	}
	return e.view.PutU8(e.cfg.Record.PP[i], v)
}

// --- species and item --------------------------------------------------------

// RawSpecies returns the game-internal species id, used for byte-accurate
// reconstruction.
func (e *Entry) RawSpecies() (uint16, error) {
	return e.view.U16(e.cfg.Record.Species)
}

// Species resolves the species to its canonical identity.
func (e *Entry) Species() (types.MapEntry, error) {
	raw, err := e.RawSpecies()
	if err != nil {
		return types.MapEntry{}, err
	}
	return e.cfg.Mappings.Species.Lookup(raw), nil
}

// SetRawSpecies stores a game-internal species id.
func (e *Entry) SetRawSpecies(raw uint16) error {
	return e.view.PutU16(e.cfg.Record.Species, raw)
}

// SetSpecies stores the species with the given canonical id, failing
// when this variant has no in-game id for it.
func (e *Entry) SetSpecies(canonical int) error {
	raw, ok := e.cfg.Mappings.Species.Inverse(canonical)
	if !ok {
		return fmt.Errorf("species canonical id %d: %w", canonical, types.ErrUnmappedID)
	}
	return e.SetRawSpecies(raw)
}

// RawHeldItem returns the game-internal held item id.
func (e *Entry) RawHeldItem() (uint16, error) {
	return e.view.U16(e.cfg.Record.HeldItem)
}

// HeldItem resolves the held item to its canonical identity.
func (e *Entry) HeldItem() (types.MapEntry, error) {
	raw, err := e.RawHeldItem()
	if err != nil {
		return types.MapEntry{}, err
	}
	return e.cfg.Mappings.Items.Lookup(raw), nil
}

// SetRawHeldItem stores a game-internal held item id.
func (e *Entry) SetRawHeldItem(raw uint16) error {
	return e.view.PutU16(e.cfg.Record.HeldItem, raw)
}

// SetHeldItem stores the item with the given canonical id, failing when
// this variant has no in-game id for it.
func (e *Entry) SetHeldItem(canonical int) error {
	raw, ok := e.cfg.Mappings.Items.Inverse(canonical)
	if !ok {
		return fmt.Errorf("item canonical id %d: %w", canonical, types.ErrUnmappedID)
	}
	return e.SetRawHeldItem(raw)
}

func checkStatIndex(i int) error {
	if i < 0 || i >= types.StatCount {
		return fmt.Errorf("stat index %d: %w", i, types.ErrOutOfBounds)
	}
	return nil
}

func checkMoveIndex(i int) error {
	if i < 0 || i >= types.MoveCount {
		return fmt.Errorf("move slot %d: %w", i, types.ErrOutOfBounds)
	}
	return nil
}
