package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

func exportCmd() *cli.Command {
	var out string
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the decoded save state as JSON",
		ArgsUsage: "<save file>",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (default stdout)",
				Destination: &out,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := setupLogging(); err != nil {
				return err
			}
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: savectl export <save file>")
			}
			c, err := loadContainer(path)
			if err != nil {
				return err
			}
			snap, err := c.Snapshot()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
}
