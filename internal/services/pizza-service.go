package services

import (
	"github.com/ovenline/pizza-order-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides read access to the pizza catalog. The catalog is
// static reference data; the application never creates or mutates entries
// at runtime outside of startup seeding.
type PizzaService interface {
	// GetAllPizzas retrieves catalog entries, optionally filtered by category
	GetAllPizzas(category string) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id int) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(category string) ([]models.Pizza, error) {
	query := s.db
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var pizzas []models.Pizza
	if err := query.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}
