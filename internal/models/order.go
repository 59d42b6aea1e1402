package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is a point-in-time snapshot of a catalog entry at checkout.
// Name and cost are copied from the cart, not re-fetched, so historical orders
// stay stable if the catalog changes later.
type OrderItem struct {
	PizzaID  int     `json:"pizzaId"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

// OrderItems is persisted as a single JSON column so the submitted item sequence
// round-trips verbatim, order included.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported column type for order items: %T", value)
	}
}

// Order is an immutable record of a completed checkout. There are no update or
// cancel operations; the row is written exactly once.
type Order struct {
	ID          uint       `gorm:"primaryKey" json:"orderId"`
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Items       OrderItems `gorm:"type:json;not null" json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// OrderItemRequest is one line of a checkout payload. Cost is a pointer so a
// missing value can be told apart from a legitimate 0.
type OrderItemRequest struct {
	PizzaID  int      `json:"pizzaId"`
	Name     string   `json:"name"`
	Cost     *float64 `json:"cost"`
	Quantity int      `json:"quantity"`
}

// OrderRequest is the checkout payload submitted by a client. TotalAmount is a
// pointer for the same null-vs-zero reason as OrderItemRequest.Cost.
type OrderRequest struct {
	UserID      uint               `json:"userId"`
	Items       []OrderItemRequest `json:"items"`
	TotalAmount *float64           `json:"totalAmount"`
}

// Snapshot converts the validated request items into the persisted snapshot form.
// Callers must have run the request through the order validator first.
func (r *OrderRequest) Snapshot() OrderItems {
	items := make(OrderItems, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			PizzaID:  item.PizzaID,
			Name:     item.Name,
			Cost:     *item.Cost,
			Quantity: item.Quantity,
		})
	}
	return items
}
