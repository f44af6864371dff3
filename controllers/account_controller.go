package controllers

import (
	"net/http"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
)

// AccountController handles HTTP requests for customer accounts.
type AccountController struct {
	accountService services.AccountService
}

// NewAccountController creates a new AccountController.
func NewAccountController(svc services.AccountService) *AccountController {
	return &AccountController{accountService: svc}
}

// CreateAccount handles POST /customer_accounts
func (ac *AccountController) CreateAccount(ctx *gin.Context) {
	var req models.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	account, svcErr := ac.accountService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Customer account created successfully!", "id": account.ID})
}

// GetAccount handles GET /customer_accounts/:id
func (ac *AccountController) GetAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	account, svcErr := ac.accountService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, account)
}

// ListAccounts handles GET /customer_accounts
func (ac *AccountController) ListAccounts(ctx *gin.Context) {
	accounts, svcErr := ac.accountService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, accounts)
}

// UpdateAccount handles PUT /customer_accounts/:id
func (ac *AccountController) UpdateAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req models.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if svcErr := ac.accountService.Update(ctx.Request.Context(), id, &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer account updated successfully!"})
}
