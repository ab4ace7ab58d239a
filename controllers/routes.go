package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/middleware"
	"github.com/youssefmarket/storefront-api/services"
	"github.com/youssefmarket/storefront-api/session"
	"github.com/youssefmarket/storefront-api/state"
)

// Deps carries the shared application objects the controllers work against
type Deps struct {
	App      *state.Store
	Resolver *session.Resolver
	Images   services.ImageService
}

// RegisterRoutes wires every API route onto the router. Admin routes sit
// behind RequireAdmin; favorites behind RequireAuth; everything else is open
// to guests.
func RegisterRoutes(router *gin.Engine, deps Deps) {
	auth := &AuthController{Resolver: deps.Resolver}
	categories := &CategoryController{App: deps.App}
	products := &ProductController{App: deps.App}
	cart := &CartController{App: deps.App}
	orders := &OrderController{App: deps.App}
	favorites := &FavoriteController{App: deps.App}
	quotes := &QuoteController{App: deps.App}
	uploads := &UploadController{Images: deps.Images}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ResolveSession(deps.Resolver))
	{
		v1.POST("/auth/login", auth.Login)
		v1.POST("/auth/register", auth.Register)
		v1.POST("/auth/logout", auth.Logout)
		v1.GET("/auth/me", middleware.RequireAuth(), auth.Me)

		v1.GET("/categories", categories.List)
		v1.POST("/categories", middleware.RequireAdmin(), categories.Create)
		v1.PUT("/categories/:id", middleware.RequireAdmin(), categories.Update)
		v1.DELETE("/categories/:id", middleware.RequireAdmin(), categories.Delete)

		v1.GET("/products", products.List)
		v1.POST("/products", middleware.RequireAdmin(), products.Create)
		v1.PUT("/products/:id", middleware.RequireAdmin(), products.Update)
		v1.DELETE("/products/:id", middleware.RequireAdmin(), products.Delete)

		v1.GET("/cart", cart.Get)
		v1.POST("/cart/items", cart.AddItem)
		v1.PUT("/cart/items/:productId", cart.UpdateItem)
		v1.DELETE("/cart/items/:productId", cart.RemoveItem)
		v1.DELETE("/cart", cart.Clear)
		v1.POST("/cart/checkout", cart.Checkout)

		v1.GET("/orders", middleware.RequireAdmin(), orders.List)
		v1.PUT("/orders/:id/status", middleware.RequireAdmin(), orders.UpdateStatus)

		v1.GET("/favorites", middleware.RequireAuth(), favorites.List)
		v1.POST("/favorites", middleware.RequireAuth(), favorites.Add)
		v1.DELETE("/favorites/:productId", middleware.RequireAuth(), favorites.Remove)

		v1.POST("/quotes", quotes.Create)
		v1.GET("/quotes", middleware.RequireAdmin(), quotes.List)

		v1.POST("/admin/uploads", middleware.RequireAdmin(), uploads.Upload)
	}
}
