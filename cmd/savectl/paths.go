package main

import (
	"fmt"
	"os"
)

// readSave reads a save image into a private buffer. The CLI rewrites
// files in place, so the mmap path the library offers is not used here.
func readSave(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", path, err)
	}
	return data, nil
}
