package save

import (
	"github.com/gbakit/savekit/pkg/types"
	"github.com/gbakit/savekit/pkg/variant"
)

// Container owns one parsed save image. It keeps a private copy of the
// raw bytes, the physical location of every logical sector in the active
// slot, and the decoded roster. Containers are read-only after Parse;
// edits happen on entries and land in a new buffer via Reconstruct.
type Container struct {
	cfg        variant.Config
	raw        []byte
	activeSlot int            // 0 or 1
	counters   [2]uint32      // save-counter sums per slot
	sectorMap  map[uint16]int // logical sector id -> physical sector index
	trainer    []byte         // assembled trainer block
	world      []byte         // assembled world block
	entries    []*Entry
	playerName string
	playTime   types.PlayTime
}

// Variant returns the config the container was parsed with.
func (c *Container) Variant() variant.Config { return c.cfg }

// Entries returns the decoded roster, one entry per occupied slot.
// Entries own copies of their record bytes; editing them does not touch
// the container.
func (c *Container) Entries() []*Entry { return c.entries }

// PlayerName returns the decoded player name.
func (c *Container) PlayerName() string { return c.playerName }

// PlayTime returns the decoded elapsed play time.
func (c *Container) PlayTime() types.PlayTime { return c.playTime }

// ActiveSlot returns the 1-based save slot the container exposes.
func (c *Container) ActiveSlot() int { return c.activeSlot + 1 }

// SaveCounter returns the save-counter sum of the active slot.
func (c *Container) SaveCounter() uint32 { return c.counters[c.activeSlot] }

// Raw returns a copy of the underlying image, for diffing against a
// reconstructed buffer.
func (c *Container) Raw() []byte {
	out := make([]byte, len(c.raw))
	copy(out, c.raw)
	return out
}
