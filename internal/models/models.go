package models

import "time"

// Product is the tagged union of everything purchasable in the store.
// Exactly three types implement it: Rank, Key and Currency. Consumers
// must type-switch over all three; the unexported method seals the set.
type Product interface {
	ProductID() string
	DisplayName() string
	product()
}

// Duration is one purchasable rank period.
type Duration struct {
	Days  int `json:"days" yaml:"days"`
	Price int `json:"price" yaml:"price"`
}

// Rank is a duration-limited status granting in-game perks.
type Rank struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	KitName     string     `json:"kit_name" yaml:"kit_name"`
	Tier        string     `json:"tier" yaml:"tier"`
	Durations   []Duration `json:"durations" yaml:"durations"`
	Perks       []string   `json:"perks" yaml:"perks"`
	KitItems    []string   `json:"kit_items" yaml:"kit_items"`
	CustomName  bool       `json:"custom_name" yaml:"custom_name"`
	BuyLink     string     `json:"buy_link,omitempty" yaml:"buy_link"`
}

func (r Rank) ProductID() string   { return r.ID }
func (r Rank) DisplayName() string { return r.Name }
func (Rank) product()              {}

// KeySection identifies which storefront a crate key belongs to.
type KeySection string

const (
	SectionSMP       KeySection = "smp"
	SectionLifesteal KeySection = "lifesteal"
)

// Key is a single-use crate key redeemed in-game for randomized rewards.
type Key struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Price       int        `json:"price" yaml:"price"`
	IsFree      bool       `json:"is_free" yaml:"is_free"`
	Rewards     []string   `json:"rewards" yaml:"rewards"`
	Section     KeySection `json:"section" yaml:"section"`
	BuyLink     string     `json:"buy_link,omitempty" yaml:"buy_link"`
}

func (k Key) ProductID() string   { return k.ID }
func (k Key) DisplayName() string { return k.Name }
func (Key) product()              {}

// Currency is a purchasable quantity of an in-game fungible resource.
// Rate is the price in rupees for one unit.
type Currency struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Rate        int    `json:"rate" yaml:"rate"`
	Unit        string `json:"unit" yaml:"unit"`
	MinQuantity int    `json:"min_quantity" yaml:"min_quantity"`
	BuyLink     string `json:"buy_link,omitempty" yaml:"buy_link"`
}

func (c Currency) ProductID() string   { return c.ID }
func (c Currency) DisplayName() string { return c.Name }
func (Currency) product()              {}

// OrderRequest carries one checkout form submission. It is built from
// form state at submit time, sent once and discarded; nothing persists it.
type OrderRequest struct {
	ProductID         string
	MinecraftUsername string
	CustomName        string
	TransferID        string
	DurationIndex     int
	Quantity          int

	ScreenshotName string
	Screenshot     []byte
}

// OrderReceipt is returned to the client after a successful submission.
type OrderReceipt struct {
	Reference   string    `json:"reference"`
	Product     string    `json:"product"`
	Descriptor  string    `json:"descriptor"`
	PricePaid   int       `json:"price_paid"`
	SubmittedAt time.Time `json:"submitted_at"`
}
