package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitbuddy/splitbuddy/internal/bill/split"
)

// Common errors
var (
	ErrBillNotFound         = errors.New("bill not found")
	ErrDuplicateParticipant = errors.New("participant names must be unique")
)

// Store is the persistence boundary for finalized bills. The engine needs
// only insert, read and delete; bills are never updated in place.
type Store interface {
	CreateBill(ctx context.Context, b *Bill) error
	GetBillByID(ctx context.Context, id string) (*Bill, error)
	ListBills(ctx context.Context) ([]*Bill, error)
	DeleteBill(ctx context.Context, id string) error
}

// Service handles bill assembly and lifecycle
type Service struct {
	store        Store
	splitFactory *split.Factory
}

// NewService creates a new bill service with dependencies injected
func NewService(store Store, splitFactory *split.Factory) *Service {
	return &Service{
		store:        store,
		splitFactory: splitFactory,
	}
}

// Assemble validates a draft bill and resolves per-person amounts using the
// allocator for the requested split mode. It is pure: on success it returns
// the finalized bill, and persisting it is the caller's step.
//
// Validation is fail-fast, first violation wins:
//  1. participants non-empty
//  2. participant names unique
//  3. at least one valid item
//  4. tax rate in [0, 100)
//  5. (ITEMIZED) every valid item selected by at least one participant
func (s *Service) Assemble(req *CreateBillRequest) (*Bill, error) {
	if len(req.Participants) == 0 {
		return nil, split.ErrEmptyParticipants
	}

	names := make(map[string]bool, len(req.Participants))
	for _, p := range req.Participants {
		if names[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParticipant, p.Name)
		}
		names[p.Name] = true
	}

	items := buildItems(req.Items)
	valid := ValidItems(items)
	if len(valid) == 0 {
		return nil, split.ErrNoValidItems
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitMode)
	if err != nil {
		return nil, err
	}

	participants := buildParticipants(req.Participants)

	splitItems := toSplitItems(valid)
	splitParticipants := make([]split.Participant, len(participants))
	for i, p := range participants {
		splitParticipants[i] = split.Participant{
			ID:    p.ID,
			Items: req.Participants[i].SelectedItems,
		}
	}

	if err := strategy.Validate(splitItems, splitParticipants, req.TaxRatePercent); err != nil {
		return nil, err
	}

	results, err := strategy.Calculate(splitItems, splitParticipants, req.TaxRatePercent)
	if err != nil {
		return nil, err
	}

	owed := make(map[string]split.Result, len(results))
	for _, r := range results {
		owed[r.ParticipantID] = r
	}

	itemsByID := make(map[string]Item, len(valid))
	for _, item := range valid {
		itemsByID[item.ID] = item
	}

	frozen := make([]Participant, len(participants))
	for i, p := range participants {
		p.Owed = owed[p.ID].Owed
		if strategy.Mode() == split.ModeItemized {
			p.Items = selectedItems(req.Participants[i].SelectedItems, itemsByID)
		}
		frozen[i] = p
	}

	return &Bill{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Items:          valid,
		Participants:   frozen,
		TaxRatePercent: req.TaxRatePercent,
		SplitMode:      SplitMode(strategy.Mode()),
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// CreateBill assembles a bill from the request and hands it to the store
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	b, err := s.Assemble(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateBill(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBillByID retrieves a persisted bill
func (s *Service) GetBillByID(ctx context.Context, id string) (*Bill, error) {
	b, err := s.store.GetBillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// ListBills retrieves all persisted bills sorted by date, newest first
func (s *Service) ListBills(ctx context.Context) ([]*Bill, error) {
	return s.store.ListBills(ctx)
}

// DeleteBill removes a persisted bill record
func (s *Service) DeleteBill(ctx context.Context, id string) error {
	b, err := s.store.GetBillByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBillNotFound
	}
	return s.store.DeleteBill(ctx, id)
}

// buildItems copies request items, assigning ids where missing
func buildItems(payloads []ItemPayload) []Item {
	items := make([]Item, len(payloads))
	for i, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		items[i] = Item{ID: id, Name: p.Name, Price: p.Price}
	}
	return items
}

// buildParticipants copies request participants, assigning ids and the
// default avatar where missing. Owed stays zero until allocation.
func buildParticipants(payloads []ParticipantPayload) []Participant {
	participants := make([]Participant, len(payloads))
	for i, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		icon := p.Icon
		if icon == "" {
			icon = DefaultIcon
		}
		participants[i] = Participant{ID: id, Name: p.Name, Icon: icon}
	}
	return participants
}

// selectedItems resolves a participant's selection to frozen item copies,
// dropping references to invalid or unknown items.
func selectedItems(ids []string, itemsByID map[string]Item) []Item {
	selected := make([]Item, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if item, ok := itemsByID[id]; ok {
			selected = append(selected, item)
		}
	}
	return selected
}

func toSplitItems(items []Item) []split.Item {
	out := make([]split.Item, len(items))
	for i, item := range items {
		out[i] = split.Item{ID: item.ID, Price: item.Price}
	}
	return out
}
