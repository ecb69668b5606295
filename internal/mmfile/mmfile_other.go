//go:build !unix

package mmfile

import "os"

// Map falls back to reading the whole file on platforms without mmap
// support. Save images are at most a few hundred KiB, so this is fine.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
