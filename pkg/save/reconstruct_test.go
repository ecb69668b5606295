package save_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gbakit/savekit/internal/format"
	"github.com/gbakit/savekit/pkg/save"
	"github.com/gbakit/savekit/pkg/types"
	"github.com/gbakit/savekit/pkg/variant"
)

func TestReconstructIdentity(t *testing.T) {
	cfg := emeraldWithMappings(t)
	rec0 := synthRecord(cfg, 0x12345678, 0xABCD1234, 277, 36)
	rec1 := synthRecord(cfg, 50, 99, 278, 5)
	image := synthImage(t, cfg, func(trainer, world []byte) {
		putTrainer(trainer, cfg, "IVY", types.PlayTime{Hours: 1})
		putRoster(world, cfg, rec0, rec1)
	})

	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := save.Reconstruct(c, c.Entries())
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if !bytes.Equal(out, image) {
		for i := range out {
			if out[i] != image[i] {
				t.Fatalf("round trip differs first at byte %#x: %#x -> %#x", i, image[i], out[i])
			}
		}
	}
}

func TestReconstructEditLocality(t *testing.T) {
	cfg := variant.Emerald()
	rec := synthRecord(cfg, 1, 2, 277, 36)
	image := synthImage(t, cfg, func(trainer, world []byte) {
		putRoster(world, cfg, rec)
	})

	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entries := c.Entries()
	if err := entries[0].SetLevel(99); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	out, err := save.Reconstruct(c, entries)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	// The roster lives in logical world sector 1, physical sector 1 in
	// this image. The only bytes allowed to differ are the level byte and
	// that sector's footer checksum.
	levelOff := 1*format.SectorSize + cfg.Save.Roster + cfg.Record.Level
	checksumOff := 1*format.SectorSize + format.SectorSize - format.FooterSize + 2
	for i := range out {
		if out[i] == image[i] {
			continue
		}
		if i != levelOff && i != checksumOff && i != checksumOff+1 {
			t.Errorf("byte %#x changed (%#x -> %#x), edit must stay local", i, image[i], out[i])
		}
	}
	if out[levelOff] != 99 {
		t.Errorf("level byte = %d, want 99", out[levelOff])
	}

	// The rewritten sector still checksums clean.
	payload := out[1*format.SectorSize : 1*format.SectorSize+format.SectorDataSize]
	stored := binary.LittleEndian.Uint16(out[checksumOff:])
	if sum := cfg.Checksum.Sum(payload); sum != stored {
		t.Errorf("checksum = %#x, stored %#x", sum, stored)
	}

	// The source container is untouched.
	if !bytes.Equal(c.Raw(), image) {
		t.Error("Reconstruct mutated the container")
	}
}

func TestReconstructShorterRoster(t *testing.T) {
	cfg := variant.Emerald()
	rec0 := synthRecord(cfg, 1, 2, 277, 36)
	rec1 := synthRecord(cfg, 3, 4, 278, 12)
	image := synthImage(t, cfg, func(trainer, world []byte) {
		putRoster(world, cfg, rec0, rec1)
	})

	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := save.Reconstruct(c, c.Entries()[:1])
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	countOff := 1*format.SectorSize + cfg.Save.RosterCount
	if got := binary.LittleEndian.Uint32(out[countOff:]); got != 1 {
		t.Errorf("roster count = %d, want 1", got)
	}
	// The dropped slot's bytes stay as they were; only the count marks it
	// unused.
	recOff := 1*format.SectorSize + cfg.Save.Roster + cfg.RecordSize
	if !bytes.Equal(out[recOff:recOff+cfg.RecordSize], image[recOff:recOff+cfg.RecordSize]) {
		t.Error("stale record bytes were rewritten")
	}

	c2, err := save.Parse(out, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got := len(c2.Entries()); got != 1 {
		t.Errorf("reparsed roster = %d entries, want 1", got)
	}
}

func TestReconstructTooManyEntries(t *testing.T) {
	cfg := variant.Emerald()
	image := synthImage(t, cfg, nil)
	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	over := make([]*save.Entry, cfg.MaxRoster+1)
	for i := range over {
		e, err := save.NewEntry(synthRecord(cfg, uint32(i), 0, 277, 1), cfg, i)
		if err != nil {
			t.Fatalf("NewEntry: %v", err)
		}
		over[i] = e
	}
	_, err = save.Reconstruct(c, over)
	if !errors.Is(err, types.ErrRosterCount) {
		t.Fatalf("err = %v, want ErrRosterCount", err)
	}
	if !errors.Is(err, types.ErrReconstruct) {
		t.Fatalf("err = %v, want ErrReconstruct", err)
	}
}

func TestReconstructNilEntry(t *testing.T) {
	cfg := variant.Emerald()
	image := synthImage(t, cfg, nil)
	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = save.Reconstruct(c, []*save.Entry{nil})
	if !errors.Is(err, types.ErrReconstruct) {
		t.Fatalf("err = %v, want ErrReconstruct", err)
	}
}

func TestReconstructForeignRecordSize(t *testing.T) {
	emerald := variant.Emerald()
	image := synthImage(t, emerald, nil)
	c, err := save.Parse(image, emerald, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// A record built for a wider variant cannot land in this image.
	quetzal := variant.Quetzal()
	e, err := save.NewEntry(synthRecord(quetzal, 1, 2, 277, 10), quetzal, 0)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	_, err = save.Reconstruct(c, []*save.Entry{e})
	if !errors.Is(err, types.ErrReconstruct) {
		t.Fatalf("err = %v, want ErrReconstruct", err)
	}
}

func TestReconstructQuetzalFullRoster(t *testing.T) {
	cfg := variant.Quetzal()
	// Fill all six widened slots at the relocated roster offset.
	recs := make([][]byte, cfg.MaxRoster)
	for i := range recs {
		recs[i] = synthRecord(cfg, uint32(1000+i), 77, 277, uint8(10+i))
	}
	image := synthImage(t, cfg, func(trainer, world []byte) {
		putRoster(world, cfg, recs...)
	})

	c, err := save.Parse(image, cfg, save.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(c.Entries()); got != cfg.MaxRoster {
		t.Fatalf("roster = %d entries, want %d", got, cfg.MaxRoster)
	}
	out, err := save.Reconstruct(c, c.Entries())
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if !bytes.Equal(out, image) {
		t.Error("round trip differs")
	}
}
