package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/ovenline/pizza-order-api/internal/services"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// PlaceOrder accepts a checkout payload and persists it as an order
	PlaceOrder(c *gin.Context)
	// GetOrdersByUser lists a user's prior orders
	GetOrdersByUser(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// PlaceOrder godoc
// @Summary Place a new pizza order
// @Description Validate a checkout payload, verify the user exists and persist the order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "Order payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (oc *orderController) PlaceOrder(ctx *gin.Context) {
	var req models.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	// The session token decides whose orders may be placed, not the payload
	if !authorizedForUser(ctx, req.UserID) {
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden,
			"You can only place orders for your own account"))
		return
	}

	order, err := oc.service.PlaceOrder(ctx.Request.Context(), &req)
	if err != nil {
		switch e := err.(type) {
		case *services.ValidationError:
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, e.Message))
		default:
			if err == services.ErrUserNotFound {
				ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrUserNotFound, "User not found"))
				return
			}
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
				"Failed to place order"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrdersByUser godoc
// @Summary List orders for a user
// @Description Return the user's prior orders, oldest first
// @Tags orders
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{userId} [get]
func (oc *orderController) GetOrdersByUser(ctx *gin.Context) {
	id, existId := ctx.Params.Get("userId")
	if !existId {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid user ID"))
		return
	}

	userId, err := strconv.Atoi(id)
	if err != nil || userId < 1 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid user ID format"))
		return
	}

	if !authorizedForUser(ctx, uint(userId)) {
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden,
			"You can only view your own orders"))
		return
	}

	orders, err := oc.service.GetOrdersByUser(ctx.Request.Context(), uint(userId))
	if err != nil {
		if err == services.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrUserNotFound, "User not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"Failed to retrieve orders"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

// authorizedForUser checks that the authenticated user id from the session
// token matches the user the request acts on
func authorizedForUser(ctx *gin.Context, userID uint) bool {
	authenticated, exists := ctx.Get("userID")
	if !exists {
		return false
	}
	id, ok := authenticated.(uint)
	return ok && id == userID
}
