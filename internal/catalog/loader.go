package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spicysmp_store/internal/models"
)

// catalogFile is the on-disk YAML shape. A file replaces the built-in
// tables wholesale; sections left out of the file are simply empty.
type catalogFile struct {
	Ranks      []models.Rank     `yaml:"ranks"`
	Keys       []models.Key      `yaml:"keys"`
	Currencies []models.Currency `yaml:"currencies"`
}

// Load reads a catalog from a YAML file and validates it. An empty path
// returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	c, err := New(f.Ranks, f.Keys, f.Currencies)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}
