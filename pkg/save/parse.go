package save

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gbakit/savekit/internal/buf"
	"github.com/gbakit/savekit/internal/format"
	"github.com/gbakit/savekit/internal/gbatext"
	"github.com/gbakit/savekit/internal/mmfile"
	"github.com/gbakit/savekit/pkg/types"
	"github.com/gbakit/savekit/pkg/variant"
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// ForceSlot pins the save slot (1 or 2) instead of selecting by the
	// slots' save counters. Zero selects automatically.
	ForceSlot int
}

// Parse decodes a save image using the given variant layout. The input
// bytes are copied; the caller's buffer is never retained or mutated.
func Parse(data []byte, cfg variant.Config, opts ParseOptions) (*Container, error) {
	if len(data) < format.SaveFileSize {
		return nil, fmt.Errorf("save image is %d bytes, need %d: %w",
			len(data), format.SaveFileSize, types.ErrNotSave)
	}

	c := &Container{
		cfg:       cfg,
		raw:       make([]byte, len(data)),
		sectorMap: make(map[uint16]int),
	}
	copy(c.raw, data)

	footers, valid := scanSectors(c.raw, cfg)
	if valid == 0 {
		return nil, fmt.Errorf("no sector carries signature %#08x: %w",
			cfg.Signature, types.ErrNotSave)
	}

	for slot := 0; slot < 2; slot++ {
		for i := slot * format.SlotSectors; i < (slot+1)*format.SlotSectors; i++ {
			if footers[i] != nil {
				c.counters[slot] += footers[i].Counter
			}
		}
	}
	switch opts.ForceSlot {
	case 0:
		// The slot whose counters sum higher was written last; ties keep
		// slot 1, matching the game.
		if c.counters[1] > c.counters[0] {
			c.activeSlot = 1
		}
	case 1, 2:
		c.activeSlot = opts.ForceSlot - 1
	default:
		return nil, fmt.Errorf("force slot %d: must be 1 or 2: %w",
			opts.ForceSlot, types.ErrNotSave)
	}

	for i := c.activeSlot * format.SlotSectors; i < (c.activeSlot+1)*format.SlotSectors; i++ {
		if footers[i] == nil {
			continue
		}
		c.sectorMap[footers[i].ID] = i
	}

	if err := c.assembleBlocks(); err != nil {
		return nil, err
	}
	if err := c.decodeTrainer(); err != nil {
		return nil, err
	}
	if err := c.decodeRoster(); err != nil {
		return nil, err
	}

	Logger().Debug("parsed save image",
		zap.String("variant", cfg.Name),
		zap.Int("slot", c.ActiveSlot()),
		zap.Int("roster", len(c.entries)))
	return c, nil
}

// ParseFile maps the file at path and parses it.
func ParseFile(path string, cfg variant.Config, opts ParseOptions) (*Container, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open save %s: %w", path, err)
	}
	defer cleanup()
	return Parse(data, cfg, opts)
}

// Detect returns the first built-in variant whose signature appears in
// the image's sector footers. Variants sharing a signature are
// indistinguishable here; callers that know better should select
// explicitly.
func Detect(data []byte) (variant.Config, error) {
	for _, cfg := range variant.Builtin() {
		if _, n := scanSectors(data, cfg); n > 0 {
			return cfg, nil
		}
	}
	return variant.Config{}, fmt.Errorf("detect: %w", types.ErrNotSave)
}

// scanSectors parses every sector footer, returning nil slots for
// sectors whose signature or checksum does not hold.
func scanSectors(image []byte, cfg variant.Config) ([]*format.Footer, int) {
	footers := make([]*format.Footer, format.SectorCount)
	valid := 0
	for i := 0; i < format.SectorCount; i++ {
		f, err := format.ParseFooter(image, i, cfg.Signature)
		if err != nil {
			if !errors.Is(err, format.ErrSignatureMismatch) {
				return footers, valid
			}
			continue
		}
		payload, ok := buf.Slice(image, i*format.SectorSize, format.SectorDataSize)
		if !ok {
			continue
		}
		if sum := cfg.Checksum.Sum(payload); sum != f.Checksum {
			Logger().Warn("sector checksum mismatch",
				zap.Int("sector", i),
				zap.Uint16("stored", f.Checksum),
				zap.Uint16("computed", sum))
			continue
		}
		fc := f
		footers[i] = &fc
		valid++
	}
	return footers, valid
}

// assembleBlocks copies the active slot's sector payloads into the
// contiguous trainer and world blocks, using the logical ids from the
// footers. A missing trainer sector is fatal; missing world sectors
// leave zeroed gaps so a partially valid roster region still decodes.
func (c *Container) assembleBlocks() error {
	phys, ok := c.sectorMap[0]
	if !ok {
		return fmt.Errorf("trainer block (logical sector 0): %w", types.ErrSectorMissing)
	}
	c.trainer = make([]byte, format.SectorDataSize)
	copy(c.trainer, c.raw[phys*format.SectorSize:])

	c.world = make([]byte, format.SectorDataSize*c.cfg.Save.WorldSectors)
	for id := 1; id <= c.cfg.Save.WorldSectors; id++ {
		phys, ok := c.sectorMap[uint16(id)]
		if !ok {
			Logger().Warn("world sector missing", zap.Int("logical", id))
			continue
		}
		dst := c.world[(id-1)*format.SectorDataSize:]
		copy(dst[:format.SectorDataSize], c.raw[phys*format.SectorSize:])
	}
	return nil
}

func (c *Container) decodeTrainer() error {
	v, err := buf.NewView(c.trainer, 0, len(c.trainer))
	if err != nil {
		return err
	}
	lay := c.cfg.Save

	name, err := v.Bytes(lay.PlayerName, lay.PlayerNameLen)
	if err != nil {
		return fmt.Errorf("player name: %w", err)
	}
	c.playerName = gbatext.Decode(name)

	if c.playTime.Hours, err = v.U16(lay.PlayTimeHours); err != nil {
		return fmt.Errorf("play time: %w", err)
	}
	if c.playTime.Minutes, err = v.U8(lay.PlayTimeMinutes); err != nil {
		return fmt.Errorf("play time: %w", err)
	}
	if c.playTime.Seconds, err = v.U8(lay.PlayTimeSeconds); err != nil {
		return fmt.Errorf("play time: %w", err)
	}
	if c.playTime.Frames, err = v.U8(lay.PlayTimeFrames); err != nil {
		return fmt.Errorf("play time: %w", err)
	}
	return nil
}

// decodeRoster reads the explicit roster-count field and decodes that
// many records. The count is never inferred from non-zero bytes:
// trailing slots may hold stale data from a previously larger roster.
func (c *Container) decodeRoster() error {
	v, err := buf.NewView(c.world, 0, len(c.world))
	if err != nil {
		return err
	}
	lay := c.cfg.Save

	count32, err := v.U32(lay.RosterCount)
	if err != nil {
		return fmt.Errorf("roster count: %w", err)
	}
	count := int(count32)
	if count > c.cfg.MaxRoster {
		return fmt.Errorf("roster count %d exceeds maximum %d: %w",
			count, c.cfg.MaxRoster, types.ErrRosterCount)
	}

	if _, err := buf.CheckArrayBounds(len(c.world), lay.Roster, count, c.cfg.RecordSize); err != nil {
		return fmt.Errorf("roster region: %w: %w", err, types.ErrNotSave)
	}

	c.entries = make([]*Entry, 0, count)
	for i := 0; i < count; i++ {
		record, err := v.Bytes(lay.Roster+i*c.cfg.RecordSize, c.cfg.RecordSize)
		if err != nil {
			return fmt.Errorf("roster slot %d: %w", i, err)
		}
		e, err := NewEntry(record, c.cfg, i)
		if err != nil {
			return fmt.Errorf("roster slot %d: %w", i, err)
		}
		c.entries = append(c.entries, e)
	}
	return nil
}
