// Package format describes the on-flash layout shared by the supported
// games: a 128 KiB flash image divided into 4 KiB sectors, each carrying
// a 12-byte footer at its tail. Game variants relocate fields inside the
// sector payloads; the sector frame itself is common.
package format

const (
	// SectorSize is the size of one flash sector.
	SectorSize = 4096
	// SectorDataSize is the checksummed payload size of a sector.
	SectorDataSize = 3968
	// SectorCount is the number of sectors in a save file.
	SectorCount = 32
	// SlotSectors is the number of sectors belonging to one save slot.
	SlotSectors = 14
	// SaveFileSize is the minimum size of a supported save file.
	SaveFileSize = SectorSize * SectorCount

	// FooterSize is the size of the per-sector footer.
	FooterSize = 12

	// Footer field offsets, relative to the footer start.
	footerIDOffset        = 0
	footerChecksumOffset  = 2
	footerSignatureOffset = 4
	footerCounterOffset   = 8
)
