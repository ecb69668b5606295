package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Re-parse and summarize a save file whenever the emulator writes it",
		ArgsUsage: "<save file>",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := setupLogging()
			if err != nil {
				return err
			}
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: savectl watch <save file>")
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// Watch the directory: emulators commonly replace the file,
			// which drops a watch set on the file itself.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}

			printSummary(path)
			target := filepath.Clean(path)
			var last time.Time
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != target {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					// Emulators flush in bursts; debounce.
					if time.Since(last) < 500*time.Millisecond {
						continue
					}
					last = time.Now()
					log.Debug("save file changed", zap.String("event", event.Op.String()))
					printSummary(path)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Warn("watch error", zap.Error(err))
				}
			}
		},
	}
}

func printSummary(path string) {
	c, err := loadContainer(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	pt := c.PlayTime()
	fmt.Printf("[%s] %s  %d:%02d:%02d  roster %d (slot %d)\n",
		time.Now().Format("15:04:05"), c.PlayerName(),
		pt.Hours, pt.Minutes, pt.Seconds, len(c.Entries()), c.ActiveSlot())
}
