package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(name string, priceCents int64) Item {
	return Item{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: priceCents,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Parallel()

	t.Run("adding N times appends N entries and scales the total", func(t *testing.T) {
		t.Parallel()

		cart := NewCart("alice")
		item := testItem("Round Widget", 299)

		for i := 0; i < 3; i++ {
			cart.AddItem(item)
		}

		assert.Len(t, cart.Items, 3)
		assert.Equal(t, int64(897), cart.TotalCents)
		assert.Equal(t, cart.ComputeTotalCents(), cart.TotalCents)
	})

	t.Run("mixed items keep total in lock-step", func(t *testing.T) {
		t.Parallel()

		cart := NewCart("alice")
		round := testItem("Round Widget", 299)
		square := testItem("Square Widget", 199)

		cart.AddItem(round)
		cart.AddItem(square)
		cart.AddItem(round)

		assert.Len(t, cart.Items, 3)
		assert.Equal(t, int64(797), cart.TotalCents)
		assert.Equal(t, cart.ComputeTotalCents(), cart.TotalCents)
	})
}

func TestCartRemoveItem(t *testing.T) {
	t.Parallel()

	t.Run("removes exactly one occurrence among duplicates", func(t *testing.T) {
		t.Parallel()

		cart := NewCart("alice")
		item := testItem("Round Widget", 299)
		for i := 0; i < 3; i++ {
			cart.AddItem(item)
		}

		require.NoError(t, cart.RemoveItem(item))

		assert.Len(t, cart.Items, 2)
		assert.Equal(t, int64(598), cart.TotalCents)
		assert.Equal(t, cart.ComputeTotalCents(), cart.TotalCents)
	})

	t.Run("removing an item never added fails and leaves cart unchanged", func(t *testing.T) {
		t.Parallel()

		cart := NewCart("alice")
		present := testItem("Round Widget", 299)
		absent := testItem("Square Widget", 199)
		cart.AddItem(present)

		err := cart.RemoveItem(absent)

		assert.ErrorIs(t, err, ErrItemNotInCart)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, int64(299), cart.TotalCents)
	})

	t.Run("removing from an empty cart fails", func(t *testing.T) {
		t.Parallel()

		cart := NewCart("alice")

		err := cart.RemoveItem(testItem("Round Widget", 299))

		assert.ErrorIs(t, err, ErrItemNotInCart)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.TotalCents)
	})
}

func TestCartAddRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	// Add three units at 2.99, remove one: total 5.98 with two entries.
	cart := NewCart("alice")
	item := testItem("Round Widget", 299)
	for i := 0; i < 3; i++ {
		cart.AddItem(item)
	}

	require.NoError(t, cart.RemoveItem(item))

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(598), cart.TotalCents)
}
