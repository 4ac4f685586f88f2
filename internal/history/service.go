// Package history re-derives display-ready totals from persisted bills. It
// is a read-only consumer of the bill records: summaries are recomputed from
// stored data on every call and never written back.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitbuddy/splitbuddy/internal/bill"
	"github.com/splitbuddy/splitbuddy/internal/bill/split"
	"github.com/splitbuddy/splitbuddy/pkg/money"
)

// ErrInconsistentBillData indicates that recomputing a persisted bill's
// totals disagrees with the stored per-person amounts beyond the rounding
// tolerance. This points at corrupted data; it is surfaced rather than
// silently displaying mismatched numbers, and never auto-repaired.
var ErrInconsistentBillData = errors.New("stored bill data is inconsistent with recomputed totals")

// taxLineName labels the synthetic display line carrying the tax amount.
const taxLineName = "Tax"

// BillReader is the read-only slice of the bill store the aggregator needs.
type BillReader interface {
	GetBillByID(ctx context.Context, id string) (*bill.Bill, error)
	ListBills(ctx context.Context) ([]*bill.Bill, error)
}

// Line is one display row of a summary: the bill's items plus the synthetic
// Tax line. The Tax line is a presentation convenience, not a stored item.
type Line struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ItemShare is an item a participant selected together with their share of
// its price, recomputed from the stored payer sets for display.
type ItemShare struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Share decimal.Decimal `json:"share"`
}

// PersonSummary is one participant's row in the breakdown.
type PersonSummary struct {
	Name   string          `json:"name"`
	Icon   string          `json:"icon"`
	Amount decimal.Decimal `json:"amount"`
	Items  []ItemShare     `json:"items,omitempty"`
}

// Summary is the display-ready view of a persisted bill.
type Summary struct {
	BillID     string          `json:"bill_id"`
	Title      string          `json:"title"`
	Date       time.Time       `json:"date"`
	SplitMode  bill.SplitMode  `json:"split_mode"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Lines      []Line          `json:"lines"`
	Breakdown  []PersonSummary `json:"breakdown"`
}

// Service aggregates persisted bills into summaries
type Service struct {
	bills BillReader
}

// NewService creates a new history service over a bill reader
func NewService(bills BillReader) *Service {
	return &Service{bills: bills}
}

// Summarize fetches a bill and derives its summary
func (s *Service) Summarize(ctx context.Context, id string) (*Summary, error) {
	b, err := s.bills.GetBillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, bill.ErrBillNotFound
	}
	return SummarizeBill(b)
}

// List derives summaries for all persisted bills, newest first. A bill that
// fails its consistency check aborts the listing so the caller never sees a
// partially wrong history.
func (s *Service) List(ctx context.Context) ([]*Summary, error) {
	bills, err := s.bills.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*Summary, len(bills))
	for i, b := range bills {
		summary, err := SummarizeBill(b)
		if err != nil {
			return nil, err
		}
		summaries[i] = summary
	}
	return summaries, nil
}

// SummarizeBill derives the display totals for one persisted bill. It is a
// pure function of the stored record: calling it twice yields identical
// output. Recomputed totals are cross-checked against the stored per-person
// amounts as a read-time consistency check.
func SummarizeBill(b *bill.Bill) (*Summary, error) {
	switch b.SplitMode {
	case bill.SplitModeEqual:
		return summarizeEqual(b)
	case bill.SplitModeItemized:
		return summarizeItemized(b)
	default:
		return nil, fmt.Errorf("%w: %s", split.ErrUnknownSplitMode, b.SplitMode)
	}
}

// summarizeEqual recomputes the grand total from the stored items and tax
// rate rather than trusting any stored total, then checks every stored owed
// amount against the even division.
func summarizeEqual(b *bill.Bill) (*Summary, error) {
	subtotal := bill.Subtotal(b.Items)
	grandTotal := subtotal.Mul(money.TaxMultiplier(b.TaxRatePercent))
	taxAmount := grandTotal.Sub(subtotal)

	n := len(b.Participants)
	if n == 0 {
		return nil, fmt.Errorf("%w: bill %s has no participants", ErrInconsistentBillData, b.ID)
	}
	perPerson := money.Round(grandTotal.Div(decimal.NewFromInt(int64(n))))

	breakdown := make([]PersonSummary, n)
	for i, p := range b.Participants {
		if !money.WithinTolerance(p.Owed, perPerson, n) {
			return nil, fmt.Errorf("%w: bill %s participant %q owes %s, recomputed %s",
				ErrInconsistentBillData, b.ID, p.Name, p.Owed, perPerson)
		}
		breakdown[i] = PersonSummary{
			Name:   p.Name,
			Icon:   p.Icon,
			Amount: p.Owed,
		}
	}

	return &Summary{
		BillID:     b.ID,
		Title:      b.Title,
		Date:       b.CreatedAt,
		SplitMode:  b.SplitMode,
		GrandTotal: money.Round(grandTotal),
		TaxAmount:  money.Round(taxAmount),
		Lines:      displayLines(b.Items, taxAmount),
		Breakdown:  breakdown,
	}, nil
}

// summarizeItemized takes the grand total from the stored owed amounts and
// recomputes each participant's per-item shares from the stored payer sets,
// for display only. Recomputed owed amounts are checked against the stored
// ones.
func summarizeItemized(b *bill.Bill) (*Summary, error) {
	items := toSplitItems(b.Items)
	participants := toSplitParticipants(b.Participants)

	shares, err := split.Shares(items, participants)
	if err != nil {
		return nil, fmt.Errorf("%w: bill %s: %v", ErrInconsistentBillData, b.ID, err)
	}

	mult := money.TaxMultiplier(b.TaxRatePercent)
	n := len(b.Participants)

	grandTotal := decimal.Zero
	breakdown := make([]PersonSummary, n)
	for i, p := range b.Participants {
		pretax := decimal.Zero
		itemShares := make([]ItemShare, len(p.Items))
		for j, item := range p.Items {
			share := shares[item.ID]
			pretax = pretax.Add(share)
			itemShares[j] = ItemShare{
				ID:    item.ID,
				Name:  item.Name,
				Price: item.Price,
				Share: money.Round(share),
			}
		}

		recomputed := money.Round(pretax.Mul(mult))
		if !money.WithinTolerance(p.Owed, recomputed, n) {
			return nil, fmt.Errorf("%w: bill %s participant %q owes %s, recomputed %s",
				ErrInconsistentBillData, b.ID, p.Name, p.Owed, recomputed)
		}

		grandTotal = grandTotal.Add(p.Owed)
		breakdown[i] = PersonSummary{
			Name:   p.Name,
			Icon:   p.Icon,
			Amount: p.Owed,
			Items:  itemShares,
		}
	}

	taxAmount := grandTotal.Sub(bill.Subtotal(b.Items))

	return &Summary{
		BillID:     b.ID,
		Title:      b.Title,
		Date:       b.CreatedAt,
		SplitMode:  b.SplitMode,
		GrandTotal: grandTotal,
		TaxAmount:  money.Round(taxAmount),
		Lines:      displayLines(b.Items, taxAmount),
		Breakdown:  breakdown,
	}, nil
}

// displayLines renders the stored items plus the synthetic Tax line.
func displayLines(items []bill.Item, taxAmount decimal.Decimal) []Line {
	lines := make([]Line, 0, len(items)+1)
	for _, item := range items {
		lines = append(lines, Line{Name: item.Name, Amount: item.Price})
	}
	return append(lines, Line{Name: taxLineName, Amount: money.Round(taxAmount)})
}

func toSplitItems(items []bill.Item) []split.Item {
	out := make([]split.Item, len(items))
	for i, item := range items {
		out[i] = split.Item{ID: item.ID, Price: item.Price}
	}
	return out
}

// toSplitParticipants rebuilds the payer sets from the frozen item copies
// stored with each participant.
func toSplitParticipants(participants []bill.Participant) []split.Participant {
	out := make([]split.Participant, len(participants))
	for i, p := range participants {
		ids := make([]string, len(p.Items))
		for j, item := range p.Items {
			ids[j] = item.ID
		}
		out[i] = split.Participant{ID: p.ID, Items: ids}
	}
	return out
}
