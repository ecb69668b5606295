package variant

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a user-supplied variant: the config
// fields plus paths to the three mapping table files, resolved relative
// to the variant file itself. Offset-discovery tooling emits these for
// community builds this module has no compiled-in layout for.
type fileConfig struct {
	Config   `yaml:",inline"`
	Mappings struct {
		Species string `yaml:"species"`
		Items   string `yaml:"items"`
		Moves   string `yaml:"moves"`
	} `yaml:"mappings"`
}

// LoadFile reads a variant description from a YAML file and loads any
// referenced mapping tables. Missing mapping references leave the
// corresponding table empty; every id then resolves to the unknown
// sentinel and writes-by-canonical-id fail, which keeps the codec usable
// for raw-id work.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("variant file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("variant file %s: %w", path, err)
	}
	if fc.RecordSize <= 0 {
		return Config{}, fmt.Errorf("variant file %s: record_size must be positive", path)
	}
	if fc.MaxRoster <= 0 {
		return Config{}, fmt.Errorf("variant file %s: max_roster must be positive", path)
	}
	if fc.Save.WorldSectors <= 0 {
		return Config{}, fmt.Errorf("variant file %s: save.world_sectors must be positive", path)
	}
	fc.Config.Checksum = ChecksumFold32

	dir := filepath.Dir(path)
	load := func(ref string, dst *Table) error {
		if ref == "" {
			return nil
		}
		t, err := LoadTable(filepath.Join(dir, ref))
		if err != nil {
			return err
		}
		*dst = t
		return nil
	}
	if err := load(fc.Mappings.Species, &fc.Config.Mappings.Species); err != nil {
		return Config{}, err
	}
	if err := load(fc.Mappings.Items, &fc.Config.Mappings.Items); err != nil {
		return Config{}, err
	}
	if err := load(fc.Mappings.Moves, &fc.Config.Mappings.Moves); err != nil {
		return Config{}, err
	}
	return fc.Config, nil
}
