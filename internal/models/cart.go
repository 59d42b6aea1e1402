package models

import (
	"github.com/shopspring/decimal"
)

// CartItem pairs a catalog entry with the quantity the customer wants.
// There is at most one CartItem per pizza id in a cart.
type CartItem struct {
	Pizza    Pizza `json:"pizza"`
	Quantity int   `json:"quantity"`
}

// Cart aggregates the items a single session has picked pending checkout.
// It is owned by exactly one session and is not safe for concurrent use;
// the item slice never holds an entry with quantity below 1.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts a pizza in the cart. A repeat add of the same pizza id
// increments the existing item's quantity instead of appending a duplicate.
func (c *Cart) AddItem(pizza Pizza) {
	for i := range c.items {
		if c.items[i].Pizza.ID == pizza.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Pizza: pizza, Quantity: 1})
}

// RemoveItem decrements the quantity for a pizza id, dropping the item entirely
// when the quantity would fall below 1. Removing an id that is not in the cart
// is a no-op.
func (c *Cart) RemoveItem(pizzaID int) {
	for i := range c.items {
		if c.items[i].Pizza.ID == pizzaID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			} else {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	}
}

// TotalCost sums cost x quantity over all items using decimal arithmetic, so
// totals formatted to two decimal places never drift the way float sums do.
// An empty cart totals zero.
func (c *Cart) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		line := decimal.NewFromFloat(item.Pizza.Cost).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// TotalItemCount is the sum of quantities across all items
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the cart contents in insertion order
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}

// Checkout builds the order payload for the cart's current contents.
// Item order follows insertion order and each line snapshots the catalog
// name and cost at this moment.
func (c *Cart) Checkout(userID uint) OrderRequest {
	items := make([]OrderItemRequest, 0, len(c.items))
	for _, item := range c.items {
		cost := item.Pizza.Cost
		items = append(items, OrderItemRequest{
			PizzaID:  item.Pizza.ID,
			Name:     item.Pizza.Name,
			Cost:     &cost,
			Quantity: item.Quantity,
		})
	}
	total := c.TotalCost().InexactFloat64()
	return OrderRequest{
		UserID:      userID,
		Items:       items,
		TotalAmount: &total,
	}
}
