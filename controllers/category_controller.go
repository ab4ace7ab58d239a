package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

// CategoryController handles category listing and admin CRUD
type CategoryController struct {
	App *state.Store
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"omitempty,url"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Image       *string `json:"image" binding:"omitempty,url"`
}

// List handles GET /api/v1/categories - all categories with derived counts
func (cc *CategoryController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cc.App.Categories(),
	})
}

// Create handles POST /api/v1/categories (admin only)
func (cc *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := cc.App.AddCategory(c.Request.Context(), store.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

// Update handles PUT /api/v1/categories/:id (admin only)
func (cc *CategoryController) Update(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := cc.App.UpdateCategory(c.Request.Context(), c.Param("id"), store.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
	})
}

// Delete handles DELETE /api/v1/categories/:id (admin only)
func (cc *CategoryController) Delete(c *gin.Context) {
	if err := cc.App.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted",
	})
}
