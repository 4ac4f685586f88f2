package split

import (
	"github.com/shopspring/decimal"

	"github.com/splitbuddy/splitbuddy/pkg/money"
)

// =============================================================================
// ITEMIZED SPLIT STRATEGY
// Attributes each item's cost to the participants who selected it, with tax
// applied in proportion to each participant's consumption
// =============================================================================

// ItemizedStrategy implements the Strategy interface for itemized splits
type ItemizedStrategy struct{}

// Mode returns the split mode identifier
func (s *ItemizedStrategy) Mode() Mode {
	return ModeItemized
}

// Validate checks if the inputs are valid for an itemized split. Every item
// must have at least one payer; the assembler checks this first and the
// strategy re-asserts it.
func (s *ItemizedStrategy) Validate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) error {
	if err := validateCommon(participants, taxRatePercent); err != nil {
		return err
	}
	_, err := Shares(items, participants)
	return err
}

// Calculate splits each item equally among its payers, then scales every
// participant's pre-tax running total by 1 + rate/100. Shares accumulate as
// exact decimals; only the final owed amount is rounded. A participant who
// selected nothing owes zero.
func (s *ItemizedStrategy) Calculate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) ([]Result, error) {
	if err := validateCommon(participants, taxRatePercent); err != nil {
		return nil, err
	}

	shares, err := Shares(items, participants)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	subtotals := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		sum := decimal.Zero
		for _, id := range selectionSet(p) {
			if known[id] {
				sum = sum.Add(shares[id])
			}
		}
		subtotals[p.ID] = sum
	}

	mult := money.TaxMultiplier(taxRatePercent)
	results := make([]Result, len(participants))
	for i, p := range participants {
		results[i] = Result{
			ParticipantID: p.ID,
			Owed:          money.Round(subtotals[p.ID].Mul(mult)),
		}
	}

	return results, nil
}
