package main

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/gbakit/savekit/pkg/save"
	"github.com/gbakit/savekit/pkg/variant"
)

var (
	variantName string
	variantFile string
	forceSlot   int
	verbose     bool
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "variant",
			Usage:       "game variant name (built-in)",
			Destination: &variantName,
		},
		&cli.StringFlag{
			Name:        "variant-file",
			Usage:       "YAML variant description for unsupported builds",
			Destination: &variantFile,
		},
		&cli.IntFlag{
			Name:        "slot",
			Usage:       "force save slot (1 or 2, 0 = auto)",
			Destination: &forceSlot,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "enable debug logging",
			Destination: &verbose,
		},
	}
}

// setupLogging installs a development logger when asked; the library
// default is a nop logger.
func setupLogging() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	save.SetLogger(log)
	return log, nil
}

// resolveVariant picks the layout from the flags, or auto-detects from
// the image when neither flag is set.
func resolveVariant(image []byte) (variant.Config, error) {
	if variantFile != "" {
		return variant.LoadFile(variantFile)
	}
	if variantName != "" {
		for _, v := range variant.Builtin() {
			if v.Name == variantName {
				return v, nil
			}
		}
		return variant.Config{}, fmt.Errorf("unknown variant %q", variantName)
	}
	return save.Detect(image)
}

// loadContainer reads, detects, and parses the save at path.
func loadContainer(path string) (*save.Container, error) {
	data, err := readSave(path)
	if err != nil {
		return nil, err
	}
	cfg, err := resolveVariant(data)
	if err != nil {
		return nil, err
	}
	return save.Parse(data, cfg, save.ParseOptions{ForceSlot: forceSlot})
}
