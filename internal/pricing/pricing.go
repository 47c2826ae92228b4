package pricing

import (
	"fmt"
	"math"
	"time"

	"spicysmp_store/internal/models"
)

// Keys can be bought in small batches only; ranks and currencies have
// their own quantity rules.
const (
	MinKeyQuantity = 1
	MaxKeyQuantity = 5
)

// Policy is the store-wide discount window: Rate off every non-free
// price while the wall clock has not passed End. It is a pure predicate
// over time so callers inject the clock and tests can sit on the boundary.
type Policy struct {
	Rate float64   // e.g. 0.10 for 10% off
	End  time.Time // last instant (inclusive) the discount applies
}

// Active reports whether the discount applies at the given instant.
func (p Policy) Active(now time.Time) bool {
	return !now.After(p.End)
}

// Discounted applies the policy rate to a price, rounding half away
// from zero to the nearest rupee. The 60-day PRO duration (₹55) quotes
// ₹50 under the 10% window, not ₹49.
func (p Policy) Discounted(price int) int {
	return int(math.Round(float64(price) * (1 - p.Rate)))
}

// Selection is the purchase configuration for a product: a duration
// index for ranks, a quantity for keys and currencies.
type Selection struct {
	DurationIndex int
	Quantity      int
}

// Quote is the displayed pricing for one configured purchase.
type Quote struct {
	Original   int    `json:"original"`
	Final      int    `json:"final"`
	Free       bool   `json:"free"`
	Discounted bool   `json:"discounted"`
	Descriptor string `json:"descriptor"` // "30 Days", "3x", "250 Coins"
	Quantity   int    `json:"quantity"`   // effective quantity after clamping
}

// Normalize clamps a selection into the valid range for the product.
// Key quantities are clamped to [1,5] (free keys pin to 1), currency
// quantities are raised to the product minimum. A rank duration index
// outside its duration list is an error, not a clamp: the UI never
// offers an invalid index, so receiving one means a bad request.
func Normalize(p models.Product, sel Selection) (Selection, error) {
	switch v := p.(type) {
	case models.Rank:
		if sel.DurationIndex < 0 || sel.DurationIndex >= len(v.Durations) {
			return Selection{}, fmt.Errorf("duration index %d out of range for %q", sel.DurationIndex, v.ID)
		}
		sel.Quantity = 1
	case models.Key:
		if v.IsFree {
			sel.Quantity = 1
			break
		}
		if sel.Quantity < MinKeyQuantity {
			sel.Quantity = MinKeyQuantity
		}
		if sel.Quantity > MaxKeyQuantity {
			sel.Quantity = MaxKeyQuantity
		}
	case models.Currency:
		if sel.Quantity < v.MinQuantity {
			sel.Quantity = v.MinQuantity
		}
	default:
		return Selection{}, fmt.Errorf("unknown product type %T", p)
	}
	return sel, nil
}

// QuoteFor computes the displayed original and final price for a product
// under the given selection and instant. The selection is normalized
// first; callers that already normalized pay nothing extra.
func QuoteFor(p models.Product, sel Selection, policy Policy, now time.Time) (Quote, error) {
	sel, err := Normalize(p, sel)
	if err != nil {
		return Quote{}, err
	}

	var q Quote
	q.Quantity = sel.Quantity

	switch v := p.(type) {
	case models.Rank:
		d := v.Durations[sel.DurationIndex]
		q.Original = d.Price
		q.Descriptor = fmt.Sprintf("%d Days", d.Days)
	case models.Key:
		if v.IsFree {
			q.Free = true
			q.Descriptor = "1x"
			return q, nil
		}
		q.Original = v.Price * sel.Quantity
		q.Descriptor = fmt.Sprintf("%dx", sel.Quantity)
	case models.Currency:
		q.Original = v.Rate * sel.Quantity
		q.Descriptor = fmt.Sprintf("%d %ss", sel.Quantity, v.Unit)
	}

	q.Final = q.Original
	if policy.Active(now) {
		q.Final = policy.Discounted(q.Original)
		q.Discounted = q.Final < q.Original
	}
	return q, nil
}
