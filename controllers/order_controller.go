package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/state"
)

// OrderController handles the admin order back-office
type OrderController struct {
	App *state.Store
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles GET /api/v1/orders (admin only) - all orders, newest first
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.App.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// UpdateStatus handles PUT /api/v1/orders/:id/status (admin only). Any known
// status may be set from any current status; only unknown labels are
// rejected.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := oc.App.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
