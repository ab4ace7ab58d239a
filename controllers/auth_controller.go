package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/session"
)

// AuthController handles login, registration, logout and identity
type AuthController struct {
	Resolver *session.Resolver
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sess, err := ac.Resolver.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": sess.Token,
			"user":  sess.User,
		},
	})
}

// Register handles POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sess, err := ac.Resolver.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"token": sess.Token,
			"user":  sess.User,
		},
	})
}

// Logout handles POST /api/v1/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		ac.Resolver.Logout(token)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// Me handles GET /api/v1/auth/me - returns the current identity and role flags
func (ac *AuthController) Me(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user":      sess.User,
			"is_admin":  sess.IsAdmin(),
			"is_client": sess.IsClient(),
		},
	})
}
