package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_MergesByName(t *testing.T) {
	carts := NewCartStore()

	carts.Add("user-1", AddPayload{Name: "Truffle Box", Price: 28, Quantity: 1})
	carts.Add("user-1", AddPayload{Name: "Truffle Box", Price: 28, Quantity: 2})

	items := carts.Items("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(84), carts.Subtotal("user-1"))

	carts.Remove("user-1", items[0].ID)
	assert.Equal(t, int64(0), carts.Subtotal("user-1"))
}

func TestAdd_RepeatedSameName_AccumulatesIntoOneLine(t *testing.T) {
	carts := NewCartStore()

	total := 0
	for _, q := range []int{1, 4, 2, 1} {
		carts.Add("user-1", AddPayload{Name: "Lavender Honey", Price: 24, Quantity: q})
		total += q
	}

	items := carts.Items("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, total, items[0].Quantity)
	assert.Equal(t, total, carts.TotalItems("user-1"))
}

func TestAdd_MergesByProductID(t *testing.T) {
	carts := NewCartStore()

	// Two distinct catalog products that happen to share a display name
	// must stay separate lines.
	carts.Add("user-1", AddPayload{ProductID: 7, Name: "Dark Bar", Price: 14, Quantity: 1})
	carts.Add("user-1", AddPayload{ProductID: 9, Name: "Dark Bar", Price: 18, Quantity: 1})
	require.Len(t, carts.Items("user-1"), 2)

	// Same product merges regardless of quantity.
	carts.Add("user-1", AddPayload{ProductID: 7, Name: "Dark Bar", Price: 14, Quantity: 2})
	items := carts.Items("user-1")
	require.Len(t, items, 2)

	for _, line := range items {
		if line.ProductID == 7 {
			assert.Equal(t, 3, line.Quantity)
		}
	}
}

func TestAdd_LineIDsAreOpaqueAndUnique(t *testing.T) {
	carts := NewCartStore()

	// Display names with spaces or slashes must not leak into IDs;
	// lines are addressed by URL path segment.
	a := carts.Add("user-1", AddPayload{Name: "Citrus Noir", Price: 26, Quantity: 1})
	b := carts.Add("user-1", AddPayload{Name: "Dark/Milk Duo", Price: 20, Quantity: 1})

	assert.NotEqual(t, a.ID, b.ID)
	for _, id := range []string{a.ID, b.ID} {
		assert.NotContains(t, id, " ")
		assert.NotContains(t, id, "/")
	}
}

func TestAdd_QuantityDefaultsToOne(t *testing.T) {
	carts := NewCartStore()

	carts.Add("user-1", AddPayload{Name: "Aztec Ember", Price: 12})

	items := carts.Items("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_BelowOneIsIgnored(t *testing.T) {
	carts := NewCartStore()
	line := carts.Add("user-1", AddPayload{Name: "Citrus Noir", Price: 26, Quantity: 2})

	updated, found := carts.UpdateQuantity("user-1", line.ID, 0)
	require.True(t, found)
	assert.Equal(t, 2, updated.Quantity)

	updated, found = carts.UpdateQuantity("user-1", line.ID, -3)
	require.True(t, found)
	assert.Equal(t, 2, updated.Quantity)

	updated, found = carts.UpdateQuantity("user-1", line.ID, 5)
	require.True(t, found)
	assert.Equal(t, 5, updated.Quantity)
}

func TestUpdateQuantity_AbsentLine(t *testing.T) {
	carts := NewCartStore()

	_, found := carts.UpdateQuantity("user-1", "missing", 3)
	assert.False(t, found)
}

func TestRemove_AbsentLineIsNoOp(t *testing.T) {
	carts := NewCartStore()
	carts.Add("user-1", AddPayload{Name: "Amber Opera", Price: 42, Quantity: 1})

	carts.Remove("user-1", "missing")
	assert.Len(t, carts.Items("user-1"), 1)
}

func TestSubtotal_TracksEveryMutation(t *testing.T) {
	carts := NewCartStore()

	a := carts.Add("user-1", AddPayload{Name: "Midnight Sea Salt", Price: 18, Quantity: 2})
	carts.Add("user-1", AddPayload{Name: "Cacao Cold Brew", Price: 10, Quantity: 1})
	assert.Equal(t, int64(46), carts.Subtotal("user-1"))

	carts.UpdateQuantity("user-1", a.ID, 1)
	assert.Equal(t, int64(28), carts.Subtotal("user-1"))

	carts.Remove("user-1", a.ID)
	assert.Equal(t, int64(10), carts.Subtotal("user-1"))
}

func TestClear_EmptiesEverything(t *testing.T) {
	carts := NewCartStore()
	carts.Add("user-1", AddPayload{Name: "Rosewood Gateau", Price: 38, Quantity: 2})

	carts.Clear("user-1")

	assert.Empty(t, carts.Items("user-1"))
	assert.Equal(t, int64(0), carts.Subtotal("user-1"))
	assert.Equal(t, 0, carts.TotalItems("user-1"))
}

func TestCarts_AreIsolatedPerShopper(t *testing.T) {
	carts := NewCartStore()

	carts.Add("user-1", AddPayload{Name: "Andes Dawn", Price: 14, Quantity: 1})
	carts.Add("user-2", AddPayload{Name: "Andes Dawn", Price: 14, Quantity: 5})

	assert.Equal(t, 1, carts.TotalItems("user-1"))
	assert.Equal(t, 5, carts.TotalItems("user-2"))

	carts.Clear("user-1")
	assert.Equal(t, 5, carts.TotalItems("user-2"))
}

func TestItems_ReturnsACopy(t *testing.T) {
	carts := NewCartStore()
	carts.Add("user-1", AddPayload{Name: "Ivory Pistachio", Price: 16, Quantity: 1})

	items := carts.Items("user-1")
	items[0].Quantity = 99

	assert.Equal(t, 1, carts.Items("user-1")[0].Quantity)
}
