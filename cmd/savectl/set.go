package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gbakit/savekit/pkg/save"
	"github.com/gbakit/savekit/pkg/types"
)

func setCmd() *cli.Command {
	var (
		entry       int
		level       int
		currentHP   int
		personality string
		nickname    string
		speciesRaw  int
		species     int
		item        int
		evSpecs     []string
		ivSpecs     []string
		statSpecs   []string
		moveSpecs   []string
		out         string
	)
	return &cli.Command{
		Name:      "set",
		Usage:     "Edit one roster entry and write the save back",
		ArgsUsage: "<save file>",
		Flags: append(commonFlags(),
			&cli.IntFlag{Name: "entry", Usage: "roster position (1-based)", Value: 1, Destination: &entry},
			&cli.IntFlag{Name: "level", Value: -1, Destination: &level},
			&cli.IntFlag{Name: "current-hp", Value: -1, Destination: &currentHP},
			&cli.StringFlag{Name: "personality", Usage: "new personality seed (decimal or 0x hex)", Destination: &personality},
			&cli.StringFlag{Name: "nickname", Destination: &nickname},
			&cli.IntFlag{Name: "species-raw", Value: -1, Destination: &speciesRaw},
			&cli.IntFlag{Name: "species", Usage: "canonical species id", Value: -1, Destination: &species},
			&cli.IntFlag{Name: "item", Usage: "canonical held item id", Value: -1, Destination: &item},
			&cli.StringSliceFlag{Name: "ev", Usage: "stat=value, e.g. --ev hp=252", Destination: &evSpecs},
			&cli.StringSliceFlag{Name: "iv", Usage: "stat=value, e.g. --iv speed=31", Destination: &ivSpecs},
			&cli.StringSliceFlag{Name: "stat", Usage: "stat=value, raw computed stat", Destination: &statSpecs},
			&cli.StringSliceFlag{Name: "move", Usage: "slot=canonical id, e.g. --move 1=89", Destination: &moveSpecs},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path (default: overwrite input)", Destination: &out},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := setupLogging(); err != nil {
				return err
			}
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: savectl set <save file>")
			}
			c, err := loadContainer(path)
			if err != nil {
				return err
			}
			entries := c.Entries()
			if entry < 1 || entry > len(entries) {
				return fmt.Errorf("entry %d: roster has %d members", entry, len(entries))
			}
			e := entries[entry-1]

			if level >= 0 {
				if err := e.SetLevel(uint8(level)); err != nil {
					return err
				}
			}
			if currentHP >= 0 {
				if err := e.SetCurrentHP(uint16(currentHP)); err != nil {
					return err
				}
			}
			if personality != "" {
				seed, err := strconv.ParseUint(personality, 0, 32)
				if err != nil {
					return fmt.Errorf("personality %q: %w", personality, err)
				}
				if err := e.SetPersonality(uint32(seed)); err != nil {
					return err
				}
			}
			if nickname != "" {
				if err := e.SetNickname(nickname); err != nil {
					return err
				}
			}
			if speciesRaw >= 0 {
				if err := e.SetRawSpecies(uint16(speciesRaw)); err != nil {
					return err
				}
			}
			if species >= 0 {
				if err := e.SetSpecies(species); err != nil {
					return err
				}
			}
			if item >= 0 {
				if err := e.SetHeldItem(item); err != nil {
					return err
				}
			}
			if err := applyStatSpecs(evSpecs, func(i int, v uint64) error { return e.SetEV(i, uint8(v)) }); err != nil {
				return err
			}
			if err := applyStatSpecs(ivSpecs, func(i int, v uint64) error { return e.SetIV(i, uint8(v)) }); err != nil {
				return err
			}
			if err := applyStatSpecs(statSpecs, func(i int, v uint64) error { return e.SetStat(i, uint16(v)) }); err != nil {
				return err
			}
			for _, spec := range moveSpecs {
				slot, v, err := splitSpec(spec)
				if err != nil {
					return err
				}
				n, err := strconv.Atoi(slot)
				if err != nil || n < 1 || n > types.MoveCount {
					return fmt.Errorf("move slot %q: want 1..%d", slot, types.MoveCount)
				}
				id, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("move id %q: %w", v, err)
				}
				if err := e.SetMove(n-1, id); err != nil {
					return err
				}
			}

			data, err := save.Reconstruct(c, entries)
			if err != nil {
				return err
			}
			if out == "" {
				out = path
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
}

var statNames = map[string]int{
	"hp":        types.StatHP,
	"attack":    types.StatAttack,
	"atk":       types.StatAttack,
	"defense":   types.StatDefense,
	"def":       types.StatDefense,
	"speed":     types.StatSpeed,
	"spe":       types.StatSpeed,
	"spattack":  types.StatSpAttack,
	"spa":       types.StatSpAttack,
	"spdefense": types.StatSpDefense,
	"spd":       types.StatSpDefense,
}

func applyStatSpecs(specs []string, set func(i int, v uint64) error) error {
	for _, spec := range specs {
		name, val, err := splitSpec(spec)
		if err != nil {
			return err
		}
		idx, ok := statNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown stat %q", name)
		}
		v, err := strconv.ParseUint(val, 10, 16)
		if err != nil {
			return fmt.Errorf("value %q: %w", val, err)
		}
		if err := set(idx, v); err != nil {
			return err
		}
	}
	return nil
}

func splitSpec(spec string) (string, string, error) {
	k, v, ok := strings.Cut(spec, "=")
	if !ok {
		return "", "", fmt.Errorf("malformed spec %q: want key=value", spec)
	}
	return k, v, nil
}
