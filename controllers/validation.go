package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrorDetails expands a ShouldBindJSON error into one message per
// violated constraint, so a response reports every invalid field at once.
func bindingErrorDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", field))
		case "email":
			details = append(details, fmt.Sprintf("%s must be a valid email address", field))
		case "len":
			details = append(details, fmt.Sprintf("%s must be exactly %s characters", field, fe.Param()))
		case "numeric":
			details = append(details, fmt.Sprintf("%s must contain only digits", field))
		case "min":
			if fe.Kind().String() == "string" {
				details = append(details, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
			} else {
				details = append(details, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			}
		case "gte":
			details = append(details, fmt.Sprintf("%s must be %s or greater", field, fe.Param()))
		case "datetime":
			details = append(details, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
		default:
			details = append(details, fmt.Sprintf("%s failed validation on %s", field, fe.Tag()))
		}
	}
	return details
}

// respondBindingError renders a 400 listing all violated constraints.
func respondBindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": bindingErrorDetails(err),
	})
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
