package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gbakit/savekit/pkg/types"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print a summary of a save file",
		ArgsUsage: "<save file>",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := setupLogging(); err != nil {
				return err
			}
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: savectl info <save file>")
			}
			c, err := loadContainer(path)
			if err != nil {
				return err
			}
			pt := c.PlayTime()
			fmt.Printf("Variant:   %s\n", c.Variant().Name)
			fmt.Printf("Slot:      %d (counter %d)\n", c.ActiveSlot(), c.SaveCounter())
			fmt.Printf("Player:    %s\n", c.PlayerName())
			fmt.Printf("Play time: %d:%02d:%02d\n", pt.Hours, pt.Minutes, pt.Seconds)
			fmt.Printf("Roster:    %d\n", len(c.Entries()))
			return nil
		},
	}
}

func partyCmd() *cli.Command {
	return &cli.Command{
		Name:      "party",
		Usage:     "List the roster of a save file",
		ArgsUsage: "<save file>",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := setupLogging(); err != nil {
				return err
			}
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: savectl party <save file>")
			}
			c, err := loadContainer(path)
			if err != nil {
				return err
			}
			for _, e := range c.Entries() {
				s, err := e.Snapshot()
				if err != nil {
					fmt.Fprintf(os.Stderr, "slot %d: %v\n", e.Slot(), err)
					continue
				}
				shiny := ""
				if s.Shiny {
					shiny = " ★"
				}
				fmt.Printf("%d. %s (%s)%s  Lv.%d  %s  HP %d/%d\n",
					s.Slot+1, s.Nickname, s.SpeciesInfo.Name, shiny,
					s.Level, s.Nature.Name, s.CurrentHP, s.Stats[types.StatHP])
			}
			return nil
		},
	}
}
