package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/ovenline/pizza-order-api/internal/services"
)

// PizzaController handles HTTP requests for the read-only pizza catalog
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *controller {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get the pizza catalog with optional category filtering
// @Tags pizzas
// @Accept json
// @Produce json
// @Param category query string false "Filter by category (veg, non-veg, special)"
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	category := ctx.Query("category")

	pizzas, err := c.service.GetAllPizzas(category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, existId := ctx.Params.Get("id")
	if !existId {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID"))
		return
	}

	pizzaId, err := strconv.Atoi(id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return
	}

	pizza, err := c.service.GetPizzaByID(pizzaId)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"))
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}
