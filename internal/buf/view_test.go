package buf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gbakit/savekit/pkg/types"
)

func TestViewReads(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	v, err := NewView(b, 0, len(b))
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}

	if got, _ := v.U8(2); got != 0x03 {
		t.Errorf("U8(2) = %#x", got)
	}
	if got, _ := v.U16(1); got != 0x0302 {
		t.Errorf("U16(1) = %#x", got)
	}
	if got, _ := v.U32(4); got != 0x08070605 {
		t.Errorf("U32(4) = %#x", got)
	}
}

func TestViewBoundsAtEdges(t *testing.T) {
	v, err := NewView(make([]byte, 8), 0, 8)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}

	if _, err := v.U32(4); err != nil {
		t.Errorf("U32 at last valid offset: %v", err)
	}
	if _, err := v.U32(5); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("U32(5) over 8 bytes: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := v.U16(7); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("U16(7) over 8 bytes: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := v.U8(8); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("U8(8) over 8 bytes: err = %v, want ErrOutOfBounds", err)
	}
	if err := v.PutU32(5, 0); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("PutU32(5): err = %v, want ErrOutOfBounds", err)
	}
	if _, err := v.U8(-1); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("U8(-1): err = %v, want ErrOutOfBounds", err)
	}
}

func TestViewWindow(t *testing.T) {
	b := []byte{0, 0, 0xAA, 0xBB, 0, 0}
	v, err := NewView(b, 2, 2)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	if got, _ := v.U16(0); got != 0xBBAA {
		t.Errorf("windowed U16(0) = %#x", got)
	}
	if _, err := v.U8(2); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("read past window: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := NewView(b, 4, 3); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("oversized window: err = %v, want ErrOutOfBounds", err)
	}
}

func TestViewWriteLocality(t *testing.T) {
	b := make([]byte, 8)
	v, _ := NewView(b, 0, 8)

	if err := v.PutU16(3, 0xBEEF); err != nil {
		t.Fatalf("PutU16: %v", err)
	}
	want := []byte{0, 0, 0, 0xEF, 0xBE, 0, 0, 0}
	if !bytes.Equal(b, want) {
		t.Errorf("buffer = % x, want % x", b, want)
	}
}

func TestViewSetBytesCopiesIn(t *testing.T) {
	b := make([]byte, 8)
	v, _ := NewView(b, 0, 8)

	src := []byte{1, 2, 3}
	if err := v.SetBytes(2, src); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	src[0] = 0xFF
	if b[2] != 1 {
		t.Errorf("SetBytes aliased its source: b[2] = %d", b[2])
	}
	if err := v.SetBytes(6, src); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("SetBytes past end: err = %v, want ErrOutOfBounds", err)
	}
}

func TestViewBytesAliases(t *testing.T) {
	b := make([]byte, 4)
	v, _ := NewView(b, 0, 4)

	s, err := v.Bytes(1, 2)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	s[0] = 7
	if b[1] != 7 {
		t.Error("Bytes must alias the backing storage")
	}
	if _, err := v.Bytes(3, 2); !errors.Is(err, types.ErrOutOfBounds) {
		t.Errorf("Bytes past end: err = %v, want ErrOutOfBounds", err)
	}
}
