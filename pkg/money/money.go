// Package money provides the rounding and formatting rules shared by every
// component that touches currency amounts. Amounts are decimal end to end;
// rounding happens only at the display/summation boundary.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	// perParticipantSlack is the rounding slack allowed per participant when
	// checking that a breakdown conserves the billed total.
	perParticipantSlack = decimal.RequireFromString("0.005")

	printer = message.NewPrinter(language.English)
)

// Round rounds an amount to two decimal places (cents).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TaxMultiplier returns 1 + rate/100 for a percentage tax rate.
func TaxMultiplier(ratePercent decimal.Decimal) decimal.Decimal {
	return one.Add(ratePercent.Div(hundred))
}

// ValidTaxRate reports whether a percentage rate is in [0, 100).
func ValidTaxRate(ratePercent decimal.Decimal) bool {
	return !ratePercent.IsNegative() && ratePercent.LessThan(hundred)
}

// WithinTolerance reports whether two amounts agree within the rounding
// slack for the given participant count (0.005 per participant).
func WithinTolerance(a, b decimal.Decimal, participants int) bool {
	slack := perParticipantSlack.Mul(decimal.NewFromInt(int64(participants)))
	return a.Sub(b).Abs().LessThanOrEqual(slack)
}

// Format renders an amount with two decimals and thousands separators,
// e.g. "1,234.50".
func Format(d decimal.Decimal) string {
	f, _ := Round(d).Float64()
	return printer.Sprintf("%.2f", f)
}
