package bill

import (
	"github.com/shopspring/decimal"
)

// ItemPayload represents one priced line in a create request. The id is
// optional; the server assigns one when it is missing. Itemized requests
// must carry ids so participant selections can reference them.
type ItemPayload struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ParticipantPayload represents one person in a create request.
// SelectedItems lists the item ids this person consumed (ITEMIZED only).
type ParticipantPayload struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon,omitempty"`
	SelectedItems []string `json:"selected_items,omitempty"`
}

// CreateBillRequest represents the request to assemble and persist a bill
type CreateBillRequest struct {
	Title          string               `json:"title"`
	TaxRatePercent decimal.Decimal      `json:"tax_rate_percent"`
	SplitMode      string               `json:"split_mode"` // EQUAL, ITEMIZED
	Items          []ItemPayload        `json:"items"`
	Participants   []ParticipantPayload `json:"participants"`
}

// ItemResponse mirrors the persisted item record shape
type ItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ParticipantResponse mirrors the persisted participant record shape: price
// is the resolved amount owed, foods the items this person selected.
type ParticipantResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Price string         `json:"price"`
	Icon  string         `json:"icon"`
	Foods []ItemResponse `json:"foods"`
}

// BillResponse represents the response for a persisted bill
type BillResponse struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Date           string                `json:"date"`
	TaxRatePercent string                `json:"tax_rate_percent"`
	IsEqually      bool                  `json:"is_equally"`
	Items          []ItemResponse        `json:"items"`
	Participants   []ParticipantResponse `json:"participants"`
}

func toItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
		}
	}
	return out
}

// ToResponse converts a Bill to its transport representation
func (b *Bill) ToResponse() *BillResponse {
	participants := make([]ParticipantResponse, len(b.Participants))
	for i, p := range b.Participants {
		participants[i] = ParticipantResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Owed.StringFixed(2),
			Icon:  p.Icon,
			Foods: toItemResponses(p.Items),
		}
	}

	return &BillResponse{
		ID:             b.ID,
		Title:          b.Title,
		Date:           b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		TaxRatePercent: b.TaxRatePercent.String(),
		IsEqually:      b.SplitMode == SplitModeEqual,
		Items:          toItemResponses(b.Items),
		Participants:   participants,
	}
}
