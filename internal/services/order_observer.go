package services

import (
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LogOrderObserver writes a human-readable summary of each placed order.
// The summary is observability only; it has no bearing on order correctness.
type LogOrderObserver struct {
	log *logrus.Logger
}

// NewLogOrderObserver creates an observer that logs through the given logger
func NewLogOrderObserver(logger *logrus.Logger) *LogOrderObserver {
	return &LogOrderObserver{log: logger}
}

func (o *LogOrderObserver) OrderPlaced(order *models.Order) {
	o.log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"user_id":      order.UserID,
		"total_amount": decimal.NewFromFloat(order.TotalAmount).StringFixed(2),
		"item_count":   len(order.Items),
		"created_at":   order.CreatedAt,
	}).Info("New order saved to database")

	for i, item := range order.Items {
		cost := decimal.NewFromFloat(item.Cost)
		subtotal := cost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		o.log.WithFields(logrus.Fields{
			"order_id": order.ID,
			"line":     i + 1,
			"pizza_id": item.PizzaID,
			"name":     item.Name,
			"quantity": item.Quantity,
			"cost":     cost.StringFixed(2),
			"subtotal": subtotal.StringFixed(2),
		}).Info("Order item")
	}
}
