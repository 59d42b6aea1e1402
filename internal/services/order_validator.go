package services

import (
	"fmt"

	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/shopspring/decimal"
)

// ValidationError reports the first shape violation found in a checkout payload.
// Controllers map it to a 400 response; it never reaches the persistence layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateOrderRequest checks a checkout payload field by field in a fixed
// sequence, short-circuiting on the first violation so error messages are
// deterministic. A zero totalAmount or item cost is legal; only an absent
// value (JSON null or missing key) is rejected.
func ValidateOrderRequest(req *models.OrderRequest) error {
	if req.UserID == 0 {
		return &ValidationError{Message: "userId is required"}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Message: "items must be a non-empty array"}
	}
	if req.TotalAmount == nil {
		return &ValidationError{Message: "totalAmount is required"}
	}
	for i, item := range req.Items {
		if item.PizzaID == 0 {
			return &ValidationError{Message: fmt.Sprintf("Item at index %d is missing pizzaId", i)}
		}
		if item.Name == "" {
			return &ValidationError{Message: fmt.Sprintf("Item at index %d is missing name", i)}
		}
		if item.Cost == nil {
			return &ValidationError{Message: fmt.Sprintf("Item at index %d is missing cost", i)}
		}
		if item.Quantity < 1 {
			return &ValidationError{Message: fmt.Sprintf("Item at index %d has invalid quantity", i)}
		}
	}
	return nil
}

// VerifyOrderTotal recomputes the order total from the item snapshots and
// rejects the payload when the client-supplied totalAmount disagrees at two
// decimal places. The client total is never trusted as-is.
func VerifyOrderTotal(req *models.OrderRequest) error {
	sum := decimal.Zero
	for _, item := range req.Items {
		line := decimal.NewFromFloat(*item.Cost).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	claimed := decimal.NewFromFloat(*req.TotalAmount)
	if !sum.Round(2).Equal(claimed.Round(2)) {
		return &ValidationError{Message: fmt.Sprintf(
			"totalAmount %s does not match the item total %s",
			claimed.StringFixed(2), sum.StringFixed(2))}
	}
	return nil
}
