package save

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/gbakit/savekit/internal/format"
	"github.com/gbakit/savekit/pkg/types"
)

// Reconstruct serializes the given roster back into a copy of the
// container's original image and returns the new bytes. Every byte the
// codec does not model (reserved regions, the inactive slot, sector
// footers other than the recomputed checksums) is preserved verbatim.
//
// entries may be the container's own (possibly edited) entries or a
// shorter list; it must not exceed the variant maximum. The container is
// never mutated: on any failure the in-progress clone is discarded and
// no partial buffer escapes.
func Reconstruct(c *Container, entries []*Entry) ([]byte, error) {
	if len(entries) > c.cfg.MaxRoster {
		return nil, fmt.Errorf("%d entries exceed maximum %d: %w: %w",
			len(entries), c.cfg.MaxRoster, types.ErrRosterCount, types.ErrReconstruct)
	}

	clone := make([]byte, len(c.raw))
	copy(clone, c.raw)

	lay := c.cfg.Save

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(entries)))
	if err := c.writeWorld(clone, lay.RosterCount, count[:]); err != nil {
		return nil, fmt.Errorf("roster count: %w: %w", err, types.ErrReconstruct)
	}

	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("entry %d is nil: %w", i, types.ErrReconstruct)
		}
		record := e.RecordBytes()
		if len(record) != c.cfg.RecordSize {
			return nil, fmt.Errorf("entry %d record is %d bytes, want %d: %w",
				i, len(record), c.cfg.RecordSize, types.ErrReconstruct)
		}
		if err := c.writeWorld(clone, lay.Roster+i*c.cfg.RecordSize, record); err != nil {
			return nil, fmt.Errorf("entry %d: %w: %w", i, err, types.ErrReconstruct)
		}
	}

	if err := c.rechecksum(clone); err != nil {
		return nil, fmt.Errorf("%w: %w", err, types.ErrReconstruct)
	}

	Logger().Debug("reconstructed save image",
		zap.String("variant", c.cfg.Name),
		zap.Int("roster", len(entries)))
	return clone, nil
}

// writeWorld writes data at a world-block logical offset, routing each
// chunk into the physical sector holding that part of the block. Chunks
// may span sector payload boundaries.
func (c *Container) writeWorld(image []byte, logical int, data []byte) error {
	if logical < 0 {
		return fmt.Errorf("negative world offset %d: %w", logical, types.ErrOutOfBounds)
	}
	for len(data) > 0 {
		id := 1 + logical/format.SectorDataSize
		within := logical % format.SectorDataSize
		if id > c.cfg.Save.WorldSectors {
			return fmt.Errorf("world offset %d beyond sector %d: %w",
				logical, c.cfg.Save.WorldSectors, types.ErrOutOfBounds)
		}
		phys, ok := c.sectorMap[uint16(id)]
		if !ok {
			return fmt.Errorf("world sector %d: %w", id, types.ErrSectorMissing)
		}
		n := format.SectorDataSize - within
		if n > len(data) {
			n = len(data)
		}
		copy(image[phys*format.SectorSize+within:], data[:n])
		data = data[n:]
		logical += n
	}
	return nil
}

// rechecksum recomputes the declared checksum for every mapped sector of
// the active slot and writes it into the footer.
func (c *Container) rechecksum(image []byte) error {
	for _, phys := range c.sectorMap {
		payload := image[phys*format.SectorSize : phys*format.SectorSize+format.SectorDataSize]
		if err := format.WriteChecksum(image, phys, c.cfg.Checksum.Sum(payload)); err != nil {
			return err
		}
	}
	return nil
}
