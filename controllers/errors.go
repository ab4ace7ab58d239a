package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

// statusForCode maps data-source error codes to HTTP statuses
var statusForCode = map[string]int{
	store.CodeNotFound:           http.StatusNotFound,
	store.CodeDuplicate:          http.StatusConflict,
	store.CodeInvalidCredentials: http.StatusUnauthorized,
	store.CodeDemoCredentials:    http.StatusUnauthorized,
	store.CodeCategoryInUse:      http.StatusConflict,
	store.CodeEmptyCart:          http.StatusBadRequest,
	store.CodeInvalidStatus:      http.StatusBadRequest,
	store.CodeInternal:           http.StatusInternalServerError,
}

// respondError writes the error envelope for a failed operation. Store
// errors keep their code and message; validation errors become
// VALIDATION_ERROR; anything else is a generic internal failure.
func respondError(c *gin.Context, err error) {
	var ae *middleware.AuthError
	if errors.As(err, &ae) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			},
		})
		return
	}

	var ve *state.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": ve.Message,
				"field":   ve.Field,
			},
		})
		return
	}

	var se *store.Error
	if errors.As(err, &se) {
		status, ok := statusForCode[se.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    se.Code,
				"message": se.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Operation failed",
		},
	})
}

// respondBindError writes the envelope for a failed request binding
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}
