package store

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/youssefmarket/storefront-api/config"
	"github.com/youssefmarket/storefront-api/models"
)

// DataSource is the single CRUD surface for categories, products, orders,
// favorites, quote requests and account credentials. Two implementations
// exist: GormSource against the persistent backend, and MockSource over
// process-local seed data. One of them is selected once at startup; no
// cross-mode consistency is attempted.
type DataSource interface {
	// Categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, updates CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Products
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, updates ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Orders
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)

	// Favorites
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error

	// Quote requests
	CreateQuoteRequest(ctx context.Context, input QuoteInput) (*models.QuoteRequest, error)
	ListQuoteRequests(ctx context.Context) ([]models.QuoteRequest, error)

	// Accounts
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	RegisterUser(ctx context.Context, name, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// CategoryInput carries the fields required to create a category
type CategoryInput struct {
	Name        string
	Description string
	Image       string
}

// CategoryUpdate is a partial category update; nil fields are left unchanged
type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
}

// ProductInput carries the fields required to create a product. Category is
// the category name; the persistent source resolves it to a category ID.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
	Category    string
	Image       string
	InStock     bool
	Visible     bool
}

// ProductUpdate is a partial product update; nil fields are left unchanged
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Unit        *string
	Category    *string
	Image       *string
	InStock     *bool
	Visible     *bool
}

// OrderInput is the cart snapshot handed to order creation. Item prices and
// names are frozen from the snapshots the cart already holds.
type OrderInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Notes       *string
	Items       []models.CartItem
}

// QuoteInput carries a guest quote request
type QuoteInput struct {
	ProductID   string
	ProductName string
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Quantity    int
	Message     *string
}

// Select picks the data source variant for this process based on the
// configuration. The choice is made exactly once at startup.
func Select(cfg *config.Config, db *gorm.DB) DataSource {
	if cfg.IsBackendConfigured() {
		log.Println("Backend configured, using persistent data source")
		return NewGormSource(db)
	}
	log.Println("Backend not configured, using in-memory demo data source")
	return NewMockSource()
}

// Error codes surfaced by data sources
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicate          = "DUPLICATE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDemoCredentials    = "DEMO_CREDENTIALS"
	CodeCategoryInUse      = "CATEGORY_IN_USE"
	CodeEmptyCart          = "EMPTY_CART"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInternal           = "INTERNAL"
)

// Error is a typed data-source error carrying the failed operation and a
// stable code the HTTP layer maps to a status and user-facing message.
type Error struct {
	Op      string // e.g. "product.update"
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrCode extracts the store error code from err, or CodeInternal when err
// is not a store error.
func ErrCode(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}
