package catalog

import (
	"errors"
	"fmt"

	"spicysmp_store/internal/models"
)

// ErrProductNotFound is returned by Lookup for an unknown product id. The
// consuming view renders a terminal not-found state; there is no fuzzy match.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the full set of purchasable products. It is built once at
// startup and never mutated afterwards, so it is safe to share across
// goroutines without locking.
type Catalog struct {
	ranks      []models.Rank
	keys       []models.Key
	currencies []models.Currency
	byID       map[string]models.Product
}

// New assembles a catalog from product lists and validates its invariants.
func New(ranks []models.Rank, keys []models.Key, currencies []models.Currency) (*Catalog, error) {
	c := &Catalog{
		ranks:      ranks,
		keys:       keys,
		currencies: currencies,
		byID:       make(map[string]models.Product, len(ranks)+len(keys)+len(currencies)),
	}

	index := func(p models.Product) error {
		id := p.ProductID()
		if id == "" {
			return fmt.Errorf("product %q has no id", p.DisplayName())
		}
		if _, dup := c.byID[id]; dup {
			return fmt.Errorf("duplicate product id %q", id)
		}
		c.byID[id] = p
		return nil
	}

	for _, r := range ranks {
		if len(r.Durations) == 0 {
			return nil, fmt.Errorf("rank %q has no durations", r.ID)
		}
		for i, d := range r.Durations {
			if d.Price < 0 {
				return nil, fmt.Errorf("rank %q duration %d has negative price", r.ID, d.Days)
			}
			if i > 0 && d.Days <= r.Durations[i-1].Days {
				return nil, fmt.Errorf("rank %q durations not ascending", r.ID)
			}
		}
		if err := index(r); err != nil {
			return nil, err
		}
	}
	for _, k := range keys {
		if k.Price < 0 {
			return nil, fmt.Errorf("key %q has negative price", k.ID)
		}
		if k.IsFree && k.Price != 0 {
			return nil, fmt.Errorf("free key %q has non-zero price", k.ID)
		}
		if err := index(k); err != nil {
			return nil, err
		}
	}
	for _, cur := range currencies {
		if cur.MinQuantity <= 0 {
			return nil, fmt.Errorf("currency %q must have a positive minimum quantity", cur.ID)
		}
		if cur.Rate <= 0 {
			return nil, fmt.Errorf("currency %q must have a positive rate", cur.ID)
		}
		if err := index(cur); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Lookup resolves a product by its exact id.
func (c *Catalog) Lookup(id string) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	return p, nil
}

// Ranks returns the rank listing in store order.
func (c *Catalog) Ranks() []models.Rank { return c.ranks }

// Keys returns the crate keys belonging to one storefront section,
// in store order.
func (c *Catalog) Keys(section models.KeySection) []models.Key {
	var out []models.Key
	for _, k := range c.keys {
		if k.Section == section {
			out = append(out, k)
		}
	}
	return out
}

// Currencies returns the currency listing in store order.
func (c *Catalog) Currencies() []models.Currency { return c.currencies }

// Size reports the total number of products.
func (c *Catalog) Size() int { return len(c.byID) }
