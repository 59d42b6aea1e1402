package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	margherita = Pizza{ID: 1, Name: "Margherita", Cost: 9.99, Category: CategoryVeg, Available: true}
	veggie     = Pizza{ID: 7, Name: "Veggie Supreme", Cost: 5.50, Category: CategoryVeg, Available: true}
)

func TestCartAddItem(t *testing.T) {
	cart := NewCart()

	cart.AddItem(margherita)
	cart.AddItem(margherita)

	items := cart.Items()
	require.Len(t, items, 1, "repeat adds must collapse into one item")
	assert.Equal(t, margherita.ID, items[0].Pizza.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(margherita)
	cart.AddItem(margherita)

	cart.RemoveItem(margherita.ID)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	cart.RemoveItem(margherita.ID)
	assert.Empty(t, cart.Items(), "removing the last unit drops the item, never a zero quantity")
}

func TestCartRemoveAbsentItemIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(margherita)

	cart.RemoveItem(999)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartTotalCost(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, "0.00", cart.TotalCost().StringFixed(2), "empty cart totals zero")

	// 9.99 x 2 + 5.50 x 1 must be exactly 25.48, not a float approximation
	cart.AddItem(margherita)
	cart.AddItem(margherita)
	cart.AddItem(veggie)

	assert.Equal(t, "25.48", cart.TotalCost().StringFixed(2))
	assert.Equal(t, 3, cart.TotalItemCount())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(margherita)
	cart.AddItem(veggie)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.Equal(t, "0.00", cart.TotalCost().StringFixed(2))
}

func TestCartCheckout(t *testing.T) {
	cart := NewCart()
	cart.AddItem(veggie)
	cart.AddItem(margherita)
	cart.AddItem(veggie)

	req := cart.Checkout(42)

	require.NotNil(t, req.TotalAmount)
	assert.Equal(t, uint(42), req.UserID)
	require.Len(t, req.Items, 2)

	// Insertion order is preserved
	assert.Equal(t, veggie.ID, req.Items[0].PizzaID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, margherita.ID, req.Items[1].PizzaID)
	assert.Equal(t, 1, req.Items[1].Quantity)

	assert.InDelta(t, 20.99, *req.TotalAmount, 0.0001)
}
