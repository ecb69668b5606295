// Package buf provides the bounds-checked byte substrate every decoder
// and encoder in this module reads and writes through.
package buf

import (
	"encoding/binary"
	"fmt"

	"github.com/gbakit/savekit/pkg/types"
)

// View is a bounds-checked, little-endian accessor over a contiguous
// region of a backing buffer. The window (offset and length) is fixed at
// construction; only the underlying bytes mutate. Every accessor fails
// with types.ErrOutOfBounds when offset+width exceeds the view length,
// never a clamped or truncated access.
type View struct {
	data []byte
}

// NewView creates a view over b[off:off+n].
func NewView(b []byte, off, n int) (View, error) {
	s, ok := Slice(b, off, n)
	if !ok {
		return View{}, fmt.Errorf("view: window off=%d len=%d over %d bytes: %w",
			off, n, len(b), types.ErrOutOfBounds)
	}
	return View{data: s}, nil
}

// Len returns the view length in bytes.
func (v View) Len() int { return len(v.data) }

func (v View) check(off, width int) error {
	if !Has(v.data, off, width) {
		return fmt.Errorf("view: off=%d width=%d len=%d: %w",
			off, width, len(v.data), types.ErrOutOfBounds)
	}
	return nil
}

// U8 reads an unsigned byte at off.
func (v View) U8(off int) (uint8, error) {
	if err := v.check(off, 1); err != nil {
		return 0, err
	}
	return v.data[off], nil
}

// U16 reads a little-endian uint16 at off.
func (v View) U16(off int) (uint16, error) {
	if err := v.check(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(v.data[off:]), nil
}

// U32 reads a little-endian uint32 at off.
func (v View) U32(off int) (uint32, error) {
	if err := v.check(off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(v.data[off:]), nil
}

// PutU8 writes an unsigned byte at off.
func (v View) PutU8(off int, val uint8) error {
	if err := v.check(off, 1); err != nil {
		return err
	}
	v.data[off] = val
	return nil
}

// PutU16 writes a little-endian uint16 at off.
func (v View) PutU16(off int, val uint16) error {
	if err := v.check(off, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(v.data[off:], val)
	return nil
}

// PutU32 writes a little-endian uint32 at off.
func (v View) PutU32(off int, val uint32) error {
	if err := v.check(off, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(v.data[off:], val)
	return nil
}

// Bytes returns the sub-range [off:off+n] of the backing storage without
// copying. Writes through the returned slice alias the view; callers that
// want isolation must copy. Mutation through SetBytes is preferred.
func (v View) Bytes(off, n int) ([]byte, error) {
	s, ok := Slice(v.data, off, n)
	if !ok {
		return nil, fmt.Errorf("view: bytes off=%d n=%d len=%d: %w",
			off, n, len(v.data), types.ErrOutOfBounds)
	}
	return s, nil
}

// SetBytes copies src into the view at off. The copy-in keeps unrelated
// records that share a backing buffer from aliasing each other.
func (v View) SetBytes(off int, src []byte) error {
	dst, ok := Slice(v.data, off, len(src))
	if !ok {
		return fmt.Errorf("view: set bytes off=%d n=%d len=%d: %w",
			off, len(src), len(v.data), types.ErrOutOfBounds)
	}
	copy(dst, src)
	return nil
}
