package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitMode identifies the allocation strategy used for a bill.
type SplitMode string

const (
	SplitModeEqual    SplitMode = "EQUAL"
	SplitModeItemized SplitMode = "ITEMIZED"
)

// Valid reports whether the mode is one of the known strategies.
func (m SplitMode) Valid() bool {
	return m == SplitModeEqual || m == SplitModeItemized
}

// DefaultIcon is assigned to participants created without an avatar.
const DefaultIcon = "head1"

// Item is a single priced line on a bill (e.g. a dish).
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Valid reports whether the item counts toward totals. Items with an empty
// name or non-positive price are excluded before allocation.
func (i Item) Valid() bool {
	return i.Name != "" && i.Price.IsPositive()
}

// Participant is a person whose share of a bill is computed. Owed is
// write-once: zero during bill construction, set by an allocator at
// assembly time. In ITEMIZED mode Items holds the lines this participant
// selected; in EQUAL mode it is empty.
type Participant struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Owed  decimal.Decimal `json:"price"`
	Icon  string          `json:"icon"`
	Items []Item          `json:"foods"`
}

// Bill is the finalized record of a shared expense with resolved per-person
// amounts. Once assembled and persisted it is never mutated.
type Bill struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Items          []Item          `json:"items"`
	Participants   []Participant   `json:"participants"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	SplitMode      SplitMode       `json:"split_mode"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ValidItems filters out items with empty names or non-positive prices.
func ValidItems(items []Item) []Item {
	valid := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Valid() {
			valid = append(valid, item)
		}
	}
	return valid
}

// Subtotal sums the prices of the given items.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}
	return sum
}
