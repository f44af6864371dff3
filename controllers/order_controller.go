package controllers

import (
	"net/http"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// PlaceOrder handles POST /orders
func (oc *OrderController) PlaceOrder(ctx *gin.Context) {
	var req models.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if _, svcErr := oc.orderService.PlaceOrder(ctx.Request.Context(), &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully!"})
}

// GetOrder handles GET /orders/:id
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// ListOrders handles GET /orders
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
