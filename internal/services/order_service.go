package services

import (
	"context"
	"errors"
	"time"

	"github.com/ovenline/pizza-order-api/internal/models"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when an order references a user id that does not
// exist. It is a referential-integrity failure, distinct from shape validation.
var ErrUserNotFound = errors.New("user not found")

// OrderObserver is notified after an order has been durably written.
// Observers are fire-and-forget: they must not fail the order.
type OrderObserver interface {
	OrderPlaced(order *models.Order)
}

// OrderService handles order placement and retrieval
type OrderService interface {
	// PlaceOrder validates the payload, verifies the referenced user exists and
	// writes exactly one order row, returning the stored order with its
	// generated identifier and creation timestamp
	PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error)
	// GetOrdersByUser returns a user's prior orders, oldest first
	GetOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type orderService struct {
	db           *gorm.DB
	queryTimeout time.Duration
	observers    []OrderObserver
}

// NewOrderService creates a new instance of OrderService. queryTimeout bounds
// how long a request may wait on the connection pool plus statement execution,
// so a saturated pool surfaces as an error instead of queueing indefinitely.
func NewOrderService(db *gorm.DB, queryTimeout time.Duration, observers ...OrderObserver) OrderService {
	return &orderService{db: db, queryTimeout: queryTimeout, observers: observers}
}

func (s *orderService) PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error) {
	if err := ValidateOrderRequest(req); err != nil {
		return nil, err
	}
	if err := VerifyOrderTotal(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var user models.User
	if err := s.db.WithContext(ctx).Select("id").First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Single-row insert: atomic by construction, no transaction needed
	order := &models.Order{
		UserID:      req.UserID,
		Items:       req.Snapshot(),
		TotalAmount: *req.TotalAmount,
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}

	for _, observer := range s.observers {
		observer.OrderPlaced(order)
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var user models.User
	if err := s.db.WithContext(ctx).Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var orders []models.Order
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
