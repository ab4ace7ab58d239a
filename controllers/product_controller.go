package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

// ProductController handles catalog listing and admin CRUD
type ProductController struct {
	App *state.Store
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image" binding:"omitempty,url"`
	InStock     *bool   `json:"in_stock"`
	Visible     *bool   `json:"visible"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Unit        *string  `json:"unit"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image" binding:"omitempty,url"`
	InStock     *bool    `json:"in_stock"`
	Visible     *bool    `json:"visible"`
}

// List handles GET /api/v1/products - the filtered product list. Query
// params: "category" (name or "all") and "q" (search). Hidden products are
// only included for admin sessions.
func (pc *ProductController) List(c *gin.Context) {
	filter := state.Filter{
		Category: c.DefaultQuery("category", "all"),
		Query:    c.Query("q"),
		Admin:    middleware.IsAdminRequest(c),
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pc.App.FilteredProducts(filter),
	})
}

// Create handles POST /api/v1/products (admin only)
func (pc *ProductController) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	// New products default to in stock and visible
	inStock, visible := true, true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	if req.Visible != nil {
		visible = *req.Visible
	}

	product, err := pc.App.AddProduct(c.Request.Context(), store.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Image:       req.Image,
		InStock:     inStock,
		Visible:     visible,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// Update handles PUT /api/v1/products/:id (admin only). Fields absent from
// the body are preserved unchanged.
func (pc *ProductController) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := pc.App.UpdateProduct(c.Request.Context(), c.Param("id"), store.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Image:       req.Image,
		InStock:     req.InStock,
		Visible:     req.Visible,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// Delete handles DELETE /api/v1/products/:id (admin only)
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.App.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
