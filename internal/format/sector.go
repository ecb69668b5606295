package format

import (
	"encoding/binary"
	"fmt"
)

// Footer captures the per-sector bookkeeping the game writes at the tail
// of every 4 KiB sector.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x000   2    Logical sector id (position within the save block)
//	 0x002   2    Checksum over the first SectorDataSize payload bytes
//	 0x004   4    Game signature magic
//	 0x008   4    Save counter (incremented on every in-game save)
//
// All fields are little-endian.
type Footer struct {
	ID        uint16
	Checksum  uint16
	Signature uint32
	Counter   uint32
}

// FooterOffset returns the absolute file offset of sector i's footer.
func FooterOffset(i int) int {
	return i*SectorSize + SectorSize - FooterSize
}

// ParseFooter extracts the footer of sector i from a full save image and
// verifies its signature against the variant's magic.
func ParseFooter(image []byte, i int, signature uint32) (Footer, error) {
	off := FooterOffset(i)
	if off < 0 || off+FooterSize > len(image) {
		return Footer{}, fmt.Errorf("sector %d footer: %w", i, ErrTruncated)
	}
	b := image[off : off+FooterSize]
	f := Footer{
		ID:        binary.LittleEndian.Uint16(b[footerIDOffset:]),
		Checksum:  binary.LittleEndian.Uint16(b[footerChecksumOffset:]),
		Signature: binary.LittleEndian.Uint32(b[footerSignatureOffset:]),
		Counter:   binary.LittleEndian.Uint32(b[footerCounterOffset:]),
	}
	if f.Signature != signature {
		return f, fmt.Errorf("sector %d footer: got %#08x want %#08x: %w",
			i, f.Signature, signature, ErrSignatureMismatch)
	}
	return f, nil
}

// WriteChecksum stores a freshly computed checksum into sector i's footer.
func WriteChecksum(image []byte, i int, sum uint16) error {
	off := FooterOffset(i) + footerChecksumOffset
	if off < 0 || off+2 > len(image) {
		return fmt.Errorf("sector %d checksum: %w", i, ErrTruncated)
	}
	binary.LittleEndian.PutUint16(image[off:], sum)
	return nil
}

// FoldChecksum computes the stock sector checksum: the payload is summed
// as little-endian uint32 words, then the halves of the 32-bit sum are
// folded into 16 bits. Trailing bytes short of a full word are ignored,
// matching the game.
func FoldChecksum(data []byte) uint16 {
	var sum uint32
	for i := 0; i+4 <= len(data); i += 4 {
		sum += binary.LittleEndian.Uint32(data[i:])
	}
	return uint16(sum>>16 + sum&0xFFFF)
}
