package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/models"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
	if cat.Size() == 0 {
		t.Fatal("default catalog is empty")
	}

	for _, r := range cat.Ranks() {
		if len(r.Durations) == 0 {
			t.Fatalf("rank %q has no durations", r.ID)
		}
		for i := 1; i < len(r.Durations); i++ {
			if r.Durations[i].Days <= r.Durations[i-1].Days {
				t.Fatalf("rank %q durations not ascending", r.ID)
			}
		}
	}
	for _, section := range []models.KeySection{models.SectionSMP, models.SectionLifesteal} {
		for _, k := range cat.Keys(section) {
			if k.Price < 0 {
				t.Fatalf("key %q has negative price", k.ID)
			}
			if k.IsFree && k.Price != 0 {
				t.Fatalf("free key %q has non-zero price", k.ID)
			}
		}
	}
	for _, c := range cat.Currencies() {
		if c.MinQuantity <= 0 {
			t.Fatalf("currency %q has non-positive minimum", c.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	p, err := cat.Lookup("pro")
	if err != nil {
		t.Fatalf("lookup pro: %v", err)
	}
	if _, ok := p.(models.Rank); !ok {
		t.Fatalf("pro should be a rank, got %T", p)
	}

	if _, err := cat.Lookup("nonexistent"); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Fatalf("lookup of unknown id must return ErrProductNotFound, got %v", err)
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	rank := models.Rank{
		ID: "test", Name: "TEST",
		Durations: []models.Duration{{Days: 30, Price: 10}},
	}

	if _, err := catalog.New([]models.Rank{rank, rank}, nil, nil); err == nil {
		t.Fatal("duplicate ids must be rejected")
	}

	bad := rank
	bad.Durations = []models.Duration{{Days: 60, Price: 20}, {Days: 30, Price: 10}}
	if _, err := catalog.New([]models.Rank{bad, rank}, nil, nil); err == nil {
		t.Fatal("unsorted durations must be rejected")
	}

	bad = rank
	bad.Durations = nil
	if _, err := catalog.New([]models.Rank{bad}, nil, nil); err == nil {
		t.Fatal("empty duration list must be rejected")
	}

	if _, err := catalog.New(nil, nil, []models.Currency{{ID: "c", Name: "C", Rate: 1}}); err == nil {
		t.Fatal("zero minimum quantity must be rejected")
	}

	if _, err := catalog.New(nil, []models.Key{{ID: "k", Name: "K", Price: 1, IsFree: true}}, nil); err == nil {
		t.Fatal("free key with non-zero price must be rejected")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
ranks:
  - id: starter
    name: STARTER RANK
    tier: starter
    durations:
      - days: 30
        price: 10
      - days: 60
        price: 18
keys:
  - id: basic-key
    name: Basic Key
    price: 5
    section: smp
currencies:
  - id: gems
    name: Gems
    rate: 3
    unit: Gem
    min_quantity: 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Size() != 3 {
		t.Fatalf("loaded catalog size: got %d, want 3", cat.Size())
	}

	p, err := cat.Lookup("gems")
	if err != nil {
		t.Fatal(err)
	}
	gems, ok := p.(models.Currency)
	if !ok {
		t.Fatalf("gems should be a currency, got %T", p)
	}
	if gems.Rate != 3 || gems.MinQuantity != 50 {
		t.Fatalf("gems: rate=%d min=%d", gems.Rate, gems.MinQuantity)
	}

	// A file replaces the built-in tables entirely.
	if _, err := cat.Lookup("pro"); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Fatalf("built-in products must not leak into a loaded catalog, got %v", err)
	}
}

func TestLoadEmptyPathFallsBackToDefault(t *testing.T) {
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cat.Lookup("purple-key"); err != nil {
		t.Fatalf("default catalog expected: %v", err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("ranks: [{id: broken, name: B, durations: []}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.Load(path); err == nil {
		t.Fatal("catalog with empty duration list must fail validation")
	}

	if _, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing catalog file must be an error")
	}
}
