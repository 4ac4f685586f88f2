package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemizedStrategy_Calculate(t *testing.T) {
	s := &ItemizedStrategy{}

	pizza := Item{ID: "pizza", Price: d("20.00")}
	soda := Item{ID: "soda", Price: d("5.00")}

	t.Run("disjoint selections with proportional tax", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza"}},
			{ID: "b", Items: []string{"soda"}},
		}

		results, err := s.Calculate([]Item{pizza, soda}, participants, d("10"))
		require.NoError(t, err)
		require.Len(t, results, 2)

		// A: 20.00 * 1.10 = 22.00, B: 5.00 * 1.10 = 5.50.
		assert.True(t, results[0].Owed.Equal(d("22.00")), "a owes %s", results[0].Owed)
		assert.True(t, results[1].Owed.Equal(d("5.50")), "b owes %s", results[1].Owed)
	})

	t.Run("shared item splits equally among its payers", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza"}},
			{ID: "b", Items: []string{"pizza", "soda"}},
		}

		results, err := s.Calculate([]Item{pizza, soda}, participants, d("10"))
		require.NoError(t, err)

		// Pizza is 10.00 each; pre-tax A=10.00, B=15.00.
		assert.True(t, results[0].Owed.Equal(d("11.00")), "a owes %s", results[0].Owed)
		assert.True(t, results[1].Owed.Equal(d("16.50")), "b owes %s", results[1].Owed)
	})

	t.Run("unassigned item is rejected", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza"}},
			{ID: "b", Items: []string{"pizza"}},
		}

		_, err := s.Calculate([]Item{pizza, soda}, participants, d("10"))
		assert.ErrorIs(t, err, ErrUnassignedItem)
		assert.Contains(t, err.Error(), "soda")
	})

	t.Run("processing order does not change the outcome", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"soda", "pizza"}},
			{ID: "b", Items: []string{"pizza"}},
		}

		forward, err := s.Calculate([]Item{pizza, soda}, participants, d("10"))
		require.NoError(t, err)
		backward, err := s.Calculate([]Item{soda, pizza}, participants, d("10"))
		require.NoError(t, err)

		for i := range forward {
			assert.True(t, forward[i].Owed.Equal(backward[i].Owed))
		}
	})

	t.Run("duplicate selections count once", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza", "pizza"}},
			{ID: "b", Items: []string{"pizza", "soda"}},
		}

		results, err := s.Calculate([]Item{pizza, soda}, participants, d("0"))
		require.NoError(t, err)
		assert.True(t, results[0].Owed.Equal(d("10.00")))
		assert.True(t, results[1].Owed.Equal(d("15.00")))
	})

	t.Run("non-terminating shares round only at the end", func(t *testing.T) {
		steak := Item{ID: "steak", Price: d("10.00")}
		participants := []Participant{
			{ID: "a", Items: []string{"steak"}},
			{ID: "b", Items: []string{"steak"}},
			{ID: "c", Items: []string{"steak"}},
		}

		results, err := s.Calculate([]Item{steak}, participants, d("0"))
		require.NoError(t, err)

		sum := decimal.Zero
		for _, r := range results {
			assert.True(t, r.Owed.Equal(d("3.33")))
			sum = sum.Add(r.Owed)
		}
		slack := d("0.005").Mul(decimal.NewFromInt(3))
		assert.True(t, sum.Sub(d("10.00")).Abs().LessThanOrEqual(slack))
	})

	t.Run("zero participants is rejected", func(t *testing.T) {
		_, err := s.Calculate([]Item{pizza}, nil, d("10"))
		assert.ErrorIs(t, err, ErrEmptyParticipants)
	})
}

func TestShares(t *testing.T) {
	pizza := Item{ID: "pizza", Price: d("20.00")}
	soda := Item{ID: "soda", Price: d("5.00")}

	t.Run("shares sum back to the item price", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza", "soda"}},
			{ID: "b", Items: []string{"pizza"}},
			{ID: "c", Items: []string{"pizza"}},
		}

		shares, err := Shares([]Item{pizza, soda}, participants)
		require.NoError(t, err)

		// Pre-tax fairness: share * payers reconstructs the price. The
		// 20/3 share is non-terminating, so allow the last decimal place
		// of the division precision.
		diff := shares["pizza"].Mul(decimal.NewFromInt(3)).Sub(pizza.Price).Abs()
		assert.True(t, diff.LessThanOrEqual(d("0.0000000000000001")), "diff = %s", diff)
		assert.True(t, shares["soda"].Equal(soda.Price))
	})

	t.Run("selections of unknown items are ignored", func(t *testing.T) {
		participants := []Participant{
			{ID: "a", Items: []string{"pizza", "ghost"}},
		}

		shares, err := Shares([]Item{pizza}, participants)
		require.NoError(t, err)
		require.Len(t, shares, 1)
		assert.True(t, shares["pizza"].Equal(pizza.Price))
	})

	t.Run("orphaned item reports its id", func(t *testing.T) {
		_, err := Shares([]Item{pizza}, []Participant{{ID: "a"}})
		assert.ErrorIs(t, err, ErrUnassignedItem)
		assert.Contains(t, err.Error(), "pizza")
	})
}
