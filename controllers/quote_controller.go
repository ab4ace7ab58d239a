package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

// QuoteController handles guest quote requests and the admin inbox
type QuoteController struct {
	App *state.Store
}

// CreateQuoteRequestBody represents the request body for a quote request
type CreateQuoteRequestBody struct {
	ProductID   string `json:"product_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
	Quantity    int    `json:"quantity" binding:"omitempty,gte=1"`
	Message     string `json:"message"`
}

// Create handles POST /api/v1/quotes - open to guests. The product name is
// snapshotted at submission time.
func (qc *QuoteController) Create(c *gin.Context) {
	var req CreateQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, ok := qc.App.Product(req.ProductID, middleware.IsAdminRequest(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	input := store.QuoteInput{
		ProductID:   product.ID,
		ProductName: product.Name,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Quantity:    quantity,
	}
	if req.ClientPhone != "" {
		phone := req.ClientPhone
		input.ClientPhone = &phone
	}
	if req.Message != "" {
		message := req.Message
		input.Message = &message
	}

	quote, err := qc.App.Source().CreateQuoteRequest(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    quote,
	})
}

// List handles GET /api/v1/quotes (admin only) - all quote requests
func (qc *QuoteController) List(c *gin.Context) {
	quotes, err := qc.App.Source().ListQuoteRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quotes,
	})
}
