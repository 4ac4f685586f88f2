package bill

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitbuddy/splitbuddy/internal/bill/split"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	bills map[string]*Bill
}

func newFakeStore() *fakeStore {
	return &fakeStore{bills: make(map[string]*Bill)}
}

func (f *fakeStore) CreateBill(_ context.Context, b *Bill) error {
	f.bills[b.ID] = b
	return nil
}

func (f *fakeStore) GetBillByID(_ context.Context, id string) (*Bill, error) {
	return f.bills[id], nil
}

func (f *fakeStore) ListBills(_ context.Context) ([]*Bill, error) {
	out := make([]*Bill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeStore) DeleteBill(_ context.Context, id string) error {
	delete(f.bills, id)
	return nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return NewService(store, split.NewFactory()), store
}

func equalRequest() *CreateBillRequest {
	return &CreateBillRequest{
		Title:          "Dinner",
		TaxRatePercent: d("10"),
		SplitMode:      "EQUAL",
		Items: []ItemPayload{
			{Name: "Pizza", Price: d("20.00")},
			{Name: "Soda", Price: d("5.00")},
		},
		Participants: []ParticipantPayload{
			{Name: "Alice"},
			{Name: "Bob"},
		},
	}
}

func itemizedRequest() *CreateBillRequest {
	return &CreateBillRequest{
		Title:          "Dinner",
		TaxRatePercent: d("10"),
		SplitMode:      "ITEMIZED",
		Items: []ItemPayload{
			{ID: "pizza", Name: "Pizza", Price: d("20.00")},
			{ID: "soda", Name: "Soda", Price: d("5.00")},
		},
		Participants: []ParticipantPayload{
			{Name: "Alice", SelectedItems: []string{"pizza"}},
			{Name: "Bob", SelectedItems: []string{"soda"}},
		},
	}
}

func TestService_Assemble_Equal(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Assemble(equalRequest())
	require.NoError(t, err)

	assert.Equal(t, SplitModeEqual, b.SplitMode)
	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	require.Len(t, b.Participants, 2)
	for _, p := range b.Participants {
		assert.True(t, p.Owed.Equal(d("13.75")), "%s owes %s", p.Name, p.Owed)
		assert.Equal(t, DefaultIcon, p.Icon)
		assert.Empty(t, p.Items)
	}
}

func TestService_Assemble_Itemized(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Assemble(itemizedRequest())
	require.NoError(t, err)

	assert.Equal(t, SplitModeItemized, b.SplitMode)
	require.Len(t, b.Participants, 2)

	alice, bob := b.Participants[0], b.Participants[1]
	assert.True(t, alice.Owed.Equal(d("22.00")), "alice owes %s", alice.Owed)
	assert.True(t, bob.Owed.Equal(d("5.50")), "bob owes %s", bob.Owed)

	// Frozen copies of the selections travel with the participants.
	require.Len(t, alice.Items, 1)
	assert.Equal(t, "Pizza", alice.Items[0].Name)
	require.Len(t, bob.Items, 1)
	assert.Equal(t, "Soda", bob.Items[0].Name)
}

func TestService_Assemble_ValidationSequence(t *testing.T) {
	svc, _ := newTestService()

	t.Run("empty participants wins over everything", func(t *testing.T) {
		req := equalRequest()
		req.Participants = nil
		req.Items = nil
		req.TaxRatePercent = d("200")

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrEmptyParticipants)
	})

	t.Run("duplicate names reported with the name", func(t *testing.T) {
		req := equalRequest()
		req.Participants = []ParticipantPayload{{Name: "Alice"}, {Name: "Alice"}}

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
		assert.Contains(t, err.Error(), "Alice")
	})

	t.Run("no valid items", func(t *testing.T) {
		req := equalRequest()
		req.Items = []ItemPayload{
			{Name: "", Price: d("5.00")},
			{Name: "Water", Price: d("0")},
		}

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrNoValidItems)
	})

	t.Run("no valid items checked before tax rate", func(t *testing.T) {
		req := equalRequest()
		req.Items = nil
		req.TaxRatePercent = d("200")

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrNoValidItems)
	})

	t.Run("invalid tax rate", func(t *testing.T) {
		req := equalRequest()
		req.TaxRatePercent = d("100")

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrInvalidTaxRate)
	})

	t.Run("unknown split mode", func(t *testing.T) {
		req := equalRequest()
		req.SplitMode = "THIRDS"

		_, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrUnknownSplitMode)
	})

	t.Run("unassigned item yields no bill", func(t *testing.T) {
		req := itemizedRequest()
		req.Participants[1].SelectedItems = []string{"pizza"}

		b, err := svc.Assemble(req)
		assert.ErrorIs(t, err, split.ErrUnassignedItem)
		assert.Nil(t, b)
	})
}

func TestService_Assemble_ExcludesInvalidItems(t *testing.T) {
	svc, _ := newTestService()

	req := equalRequest()
	req.Items = append(req.Items,
		ItemPayload{Name: "", Price: d("100.00")},
		ItemPayload{Name: "Freebie", Price: d("0")},
	)

	b, err := svc.Assemble(req)
	require.NoError(t, err)

	// Only Pizza and Soda count; per person stays (25 * 1.10) / 2.
	require.Len(t, b.Items, 2)
	for _, p := range b.Participants {
		assert.True(t, p.Owed.Equal(d("13.75")))
	}
}

func TestService_Assemble_ExcludesInvalidItemsItemized(t *testing.T) {
	svc, _ := newTestService()

	req := itemizedRequest()
	req.Items = append(req.Items, ItemPayload{ID: "freebie", Name: "Freebie", Price: d("0")})
	req.Participants[0].SelectedItems = append(req.Participants[0].SelectedItems, "freebie")

	b, err := svc.Assemble(req)
	require.NoError(t, err)

	// The invalid line contributes nothing and no frozen copy of it is kept.
	require.Len(t, b.Items, 2)
	alice := b.Participants[0]
	assert.True(t, alice.Owed.Equal(d("22.00")))
	require.Len(t, alice.Items, 1)
	assert.Equal(t, "Pizza", alice.Items[0].Name)
}

func TestService_Assemble_Conservation(t *testing.T) {
	svc, _ := newTestService()

	req := itemizedRequest()
	req.Participants = append(req.Participants, ParticipantPayload{
		Name:          "Carol",
		SelectedItems: []string{"pizza"},
	})

	b, err := svc.Assemble(req)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, p := range b.Participants {
		sum = sum.Add(p.Owed)
	}
	// 25.00 * 1.10 = 27.50 conserved within 0.005 per participant.
	slack := d("0.005").Mul(decimal.NewFromInt(3))
	assert.True(t, sum.Sub(d("27.50")).Abs().LessThanOrEqual(slack), "sum = %s", sum)
}

func TestService_CreateBill_Persists(t *testing.T) {
	svc, store := newTestService()

	b, err := svc.CreateBill(context.Background(), equalRequest())
	require.NoError(t, err)
	assert.Contains(t, store.bills, b.ID)

	got, err := svc.GetBillByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestService_CreateBill_InvalidDraftNotPersisted(t *testing.T) {
	svc, store := newTestService()

	req := itemizedRequest()
	req.Participants[0].SelectedItems = nil
	req.Participants[1].SelectedItems = nil

	_, err := svc.CreateBill(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, store.bills)
}

func TestService_GetAndDelete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetBillByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)

	err = svc.DeleteBill(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestItemValid(t *testing.T) {
	assert.True(t, Item{Name: "Pizza", Price: d("1.00")}.Valid())
	assert.False(t, Item{Name: "", Price: d("1.00")}.Valid())
	assert.False(t, Item{Name: "Pizza", Price: d("0")}.Valid())
	assert.False(t, Item{Name: "Pizza", Price: d("-2.00")}.Valid())
}
