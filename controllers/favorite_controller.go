package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/state"
)

// FavoriteController handles per-user product favorites (authenticated)
type FavoriteController struct {
	App *state.Store
}

// AddFavoriteRequest represents the request body for adding a favorite
type AddFavoriteRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// List handles GET /api/v1/favorites - the user's favorited product IDs
func (fc *FavoriteController) List(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ids, err := fc.App.Source().ListFavorites(c.Request.Context(), sess.User.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ids,
	})
}

// Add handles POST /api/v1/favorites
func (fc *FavoriteController) Add(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, ok := fc.App.Product(req.ProductID, sess.IsAdmin()); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	if err := fc.App.Source().AddFavorite(c.Request.Context(), sess.User.ID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Added to favorites",
	})
}

// Remove handles DELETE /api/v1/favorites/:productId
func (fc *FavoriteController) Remove(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := fc.App.Source().RemoveFavorite(c.Request.Context(), sess.User.ID, c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Removed from favorites",
	})
}
