package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitbuddy/splitbuddy/pkg/money"
)

// Mode defines the type of split strategy
type Mode string

const (
	ModeEqual    Mode = "EQUAL"
	ModeItemized Mode = "ITEMIZED"
)

// Item is a valid priced line handed to a strategy. Invalid items must be
// filtered out by the caller before allocation.
type Item struct {
	ID    string
	Price decimal.Decimal
}

// Participant carries the inputs a strategy needs for one person. Items
// lists the ids of the lines this participant selected (ITEMIZED only).
type Participant struct {
	ID    string
	Items []string
}

// Result is the resolved amount owed by a single participant, tax included.
type Result struct {
	ParticipantID string
	Owed          decimal.Decimal
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes the amount owed by each participant
	Calculate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) ([]Result, error)

	// Mode returns the mode identifier for this strategy
	Mode() Mode

	// Validate checks if the inputs are valid for this strategy
	Validate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) error
}

// Factory creates split strategies based on the requested mode
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the mode
func (f *Factory) Create(mode Mode) (Strategy, error) {
	switch mode {
	case ModeEqual:
		return &EqualStrategy{}, nil
	case ModeItemized:
		return &ItemizedStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplitMode, mode)
	}
}

// CreateFromString creates a strategy from a string mode (useful for API requests)
func (f *Factory) CreateFromString(mode string) (Strategy, error) {
	return f.Create(Mode(mode))
}

var (
	ErrEmptyParticipants = errors.New("at least one participant is required")
	ErrNoValidItems      = errors.New("at least one valid item is required")
	ErrInvalidTaxRate    = errors.New("tax rate must be at least 0 and below 100")
	ErrUnassignedItem    = errors.New("item is not assigned to any participant")
	ErrUnknownSplitMode  = errors.New("unknown split mode")
)

// Shares computes the per-payer share of every item: price divided by the
// number of participants who selected it. Returns ErrUnassignedItem when an
// item has no payers. Shares are exact, unrounded decimals; callers round
// only at the display boundary.
func Shares(items []Item, participants []Participant) (map[string]decimal.Decimal, error) {
	payers := payerCounts(items, participants)

	shares := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		n := payers[item.ID]
		if n == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnassignedItem, item.ID)
		}
		shares[item.ID] = item.Price.Div(decimal.NewFromInt(int64(n)))
	}
	return shares, nil
}

// payerCounts tallies, per item id, how many participants selected it.
// Selections referencing unknown item ids are ignored.
func payerCounts(items []Item, participants []Participant) map[string]int {
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	counts := make(map[string]int, len(items))
	for _, p := range participants {
		for _, id := range selectionSet(p) {
			if known[id] {
				counts[id]++
			}
		}
	}
	return counts
}

// selectionSet deduplicates a participant's selected item ids; selections
// are a set even when the transport repeats an id.
func selectionSet(p Participant) []string {
	seen := make(map[string]bool, len(p.Items))
	ids := make([]string, 0, len(p.Items))
	for _, id := range p.Items {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func validateCommon(participants []Participant, taxRatePercent decimal.Decimal) error {
	if len(participants) == 0 {
		return ErrEmptyParticipants
	}
	if !money.ValidTaxRate(taxRatePercent) {
		return ErrInvalidTaxRate
	}
	return nil
}
