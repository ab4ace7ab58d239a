package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/state"
)

// CartTokenHeader identifies a guest cart across requests. Authenticated
// requests use the session token as the cart key instead.
const CartTokenHeader = "X-Cart-Token"

// CartController handles the per-session cart and checkout
type CartController struct {
	App *state.Store
}

// AddCartItemRequest represents the request body for adding a product
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents the request body for a quantity change
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents the checkout contact form
type CheckoutRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	Notes       string `json:"notes"`
}

// cartToken returns the cart key for this request: the session token when
// authenticated, the guest cart header otherwise. A first-time guest gets a
// fresh token echoed back in the response header.
func (cc *CartController) cartToken(c *gin.Context) string {
	if token := middleware.SessionToken(c); token != "" {
		return token
	}
	if token := c.GetHeader(CartTokenHeader); token != "" {
		return token
	}
	token := uuid.NewString()
	c.Header(CartTokenHeader, token)
	return token
}

// Get handles GET /api/v1/cart - current lines and derived total
func (cc *CartController) Get(c *gin.Context) {
	token := cc.cartToken(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": cc.App.Cart(token),
			"total": cc.App.CartTotal(token),
		},
	})
}

// AddItem handles POST /api/v1/cart/items - adds one unit of a product
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, ok := cc.App.Product(req.ProductID, middleware.IsAdminRequest(c))
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

	token := cc.cartToken(c)
	cc.App.AddToCart(token, product)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": cc.App.Cart(token),
			"total": cc.App.CartTotal(token),
		},
	})
}

// UpdateItem handles PUT /api/v1/cart/items/:productId - sets a line's
// quantity; zero or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token := cc.cartToken(c)
	cc.App.UpdateCartQuantity(token, c.Param("productId"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": cc.App.Cart(token),
			"total": cc.App.CartTotal(token),
		},
	})
}

// RemoveItem handles DELETE /api/v1/cart/items/:productId
func (cc *CartController) RemoveItem(c *gin.Context) {
	token := cc.cartToken(c)
	cc.App.RemoveFromCart(token, c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": cc.App.Cart(token),
			"total": cc.App.CartTotal(token),
		},
	})
}

// Clear handles DELETE /api/v1/cart
func (cc *CartController) Clear(c *gin.Context) {
	cc.App.ClearCart(cc.cartToken(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}

// Checkout handles POST /api/v1/cart/checkout - converts the cart into a
// persisted order. The cart is cleared only on success.
func (cc *CartController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := cc.App.Checkout(c.Request.Context(), cc.cartToken(c), state.ContactInfo{
		Name:  req.ClientName,
		Phone: req.ClientPhone,
		Email: req.ClientEmail,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}
