package split

import (
	"github.com/shopspring/decimal"

	"github.com/splitbuddy/splitbuddy/pkg/money"
)

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the whole bill, tax included, evenly among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Mode returns the split mode identifier
func (s *EqualStrategy) Mode() Mode {
	return ModeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) error {
	return validateCommon(participants, taxRatePercent)
}

// Calculate divides the taxed total evenly among all participants. Every
// participant receives the identical amount; with no items everyone owes
// zero, which is not an error.
func (s *EqualStrategy) Calculate(items []Item, participants []Participant, taxRatePercent decimal.Decimal) ([]Result, error) {
	if err := s.Validate(items, participants, taxRatePercent); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}

	total := subtotal.Mul(money.TaxMultiplier(taxRatePercent))
	perPerson := money.Round(total.Div(decimal.NewFromInt(int64(len(participants)))))

	results := make([]Result, len(participants))
	for i, p := range participants {
		results[i] = Result{
			ParticipantID: p.ID,
			Owed:          perPerson,
		}
	}

	return results, nil
}
