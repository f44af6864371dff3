package controllers

import (
	"net/http"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for products.
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{productService: svc}
}

// CreateProduct handles POST /products
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if _, svcErr := pc.productService.Create(ctx.Request.Context(), &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product created successfully!"})
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, svcErr := pc.productService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListProducts handles GET /products
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// UpdateProduct handles PUT /products/:id
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if svcErr := pc.productService.Update(ctx.Request.Context(), id, &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!"})
}

// DeleteProduct handles DELETE /products/:id
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if svcErr := pc.productService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}
