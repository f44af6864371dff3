package controllers

import (
	"net/http"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests for customers.
type CustomerController struct {
	customerService services.CustomerService
	orderService    services.OrderService
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(cs services.CustomerService, os services.OrderService) *CustomerController {
	return &CustomerController{customerService: cs, orderService: os}
}

// CreateCustomer handles POST /customers
func (cc *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req models.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if _, svcErr := cc.customerService.Create(ctx.Request.Context(), &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Customer and account created successfully!"})
}

// GetCustomer handles GET /customers/:id
func (cc *CustomerController) GetCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	customer, svcErr := cc.customerService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /customers
func (cc *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, svcErr := cc.customerService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// UpdateCustomer handles PUT /customers/:id
func (cc *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if svcErr := cc.customerService.Update(ctx.Request.Context(), id, &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully!"})
}

// DeleteCustomer handles DELETE /customers/:id
func (cc *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if svcErr := cc.customerService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully!"})
}

// GetOrderHistory handles GET /customers/:id/orders
func (cc *CustomerController) GetOrderHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	orders, svcErr := cc.orderService.GetCustomerOrderHistory(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
