package variant

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/gbakit/savekit/pkg/types"
)

// Table maps game-internal numeric ids to canonical identities, with the
// inverse index for write-by-canonical-id. Tables are append-only data
// produced offline; the codec only ever reads them.
type Table struct {
	byRaw       map[uint16]types.MapEntry
	byCanonical map[int]uint16
}

// Lookup resolves a raw id. Unmapped ids resolve to types.UnknownEntry,
// never an error, so partially recognized variants stay usable.
func (t Table) Lookup(raw uint16) types.MapEntry {
	if e, ok := t.byRaw[raw]; ok {
		return e
	}
	return types.UnknownEntry
}

// Inverse resolves a canonical id back to the raw id this game uses.
// ok is false when the game has no representation for it.
func (t Table) Inverse(canonical int) (uint16, bool) {
	raw, ok := t.byCanonical[canonical]
	return raw, ok
}

// Len returns the number of mapped raw ids.
func (t Table) Len() int { return len(t.byRaw) }

// Mappings bundles the three identifier tables a variant carries.
type Mappings struct {
	Species Table
	Items   Table
	Moves   Table
}

// tableEntry is the wire shape of one mapping row: the canonical id may
// be null when the offline build failed to resolve the constant name, in
// which case the raw id is kept with the name as a placeholder.
type tableEntry struct {
	Name   string `json:"name"`
	IDName string `json:"id_name"`
	ID     *int   `json:"id"`
}

// ParseTable decodes one mapping table from its JSON form: an object
// keyed by stringified raw ids.
func ParseTable(data []byte) (Table, error) {
	var rows map[string]tableEntry
	if err := json.Unmarshal(data, &rows); err != nil {
		return Table{}, fmt.Errorf("mapping table: %w", err)
	}
	t := Table{
		byRaw:       make(map[uint16]types.MapEntry, len(rows)),
		byCanonical: make(map[int]uint16, len(rows)),
	}
	for key, row := range rows {
		raw, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return Table{}, fmt.Errorf("mapping table: raw id %q: %w", key, err)
		}
		entry := types.MapEntry{ID: -1, IDName: row.IDName, Name: row.Name}
		if row.ID != nil {
			entry.ID = *row.ID
		}
		t.byRaw[uint16(raw)] = entry
		if entry.ID >= 0 {
			if _, dup := t.byCanonical[entry.ID]; !dup {
				t.byCanonical[entry.ID] = uint16(raw)
			}
		}
	}
	return t, nil
}

// LoadTable reads and parses one mapping table file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("mapping table %s: %w", path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return Table{}, fmt.Errorf("mapping table %s: %w", path, err)
	}
	return t, nil
}
