package store

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/youssefmarket/storefront-api/models"
)

// GormSource is the persistent data source used when the backend is
// configured. Every operation delegates to the remote store; failures are
// wrapped into typed errors and never partially applied.
type GormSource struct {
	db *gorm.DB
}

// NewGormSource creates a data source over the given database handle
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// Migrate creates or updates the backend schema
func (s *GormSource) Migrate() error {
	return s.db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Favorite{},
		&models.Order{},
		&models.OrderItem{},
		&models.QuoteRequest{},
	)
}

func isDuplicateErr(err error) bool {
	// Match the drivers' exact unique-violation texts (PostgreSQL and
	// SQLite) rather than any error that happens to mention uniqueness.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "unique constraint failed")
}

func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Op: op, Code: CodeNotFound, Message: "Record not found", Err: err}
	}
	if isDuplicateErr(err) {
		return &Error{Op: op, Code: CodeDuplicate, Message: "Record already exists", Err: err}
	}
	return &Error{Op: op, Code: CodeInternal, Message: "Remote operation failed", Err: err}
}

// ListCategories returns all categories ordered by name
func (s *GormSource) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, wrap("category.list", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category
func (s *GormSource) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	cat := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.db.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, wrap("category.create", err)
	}
	return &cat, nil
}

// UpdateCategory merges the partial update onto the existing record and
// bumps its updated_at timestamp; fields not in the update are preserved.
func (s *GormSource) UpdateCategory(ctx context.Context, id string, updates CategoryUpdate) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return nil, wrap("category.update", err)
	}

	fields := make(map[string]interface{})
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Image != nil {
		fields["image"] = *updates.Image
	}
	if len(fields) == 0 {
		return &cat, nil
	}

	if err := s.db.WithContext(ctx).Model(&cat).Updates(fields).Error; err != nil {
		return nil, wrap("category.update", err)
	}
	return &cat, nil
}

// DeleteCategory removes a category. Deletion is refused while products
// still reference it, because orphaned products would break the
// category-name join used by the derived counts.
func (s *GormSource) DeleteCategory(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return wrap("category.delete", err)
	}
	if count > 0 {
		return &Error{Op: "category.delete", Code: CodeCategoryInUse, Message: "Category still has products"}
	}

	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return wrap("category.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return &Error{Op: "category.delete", Code: CodeNotFound, Message: "Category not found"}
	}
	return nil
}

// ListProducts returns all products, newest first, with category names
// resolved from the categories table.
func (s *GormSource) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, wrap("product.list", err)
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, wrap("product.list", err)
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for i := range products {
		products[i].CategoryName = names[products[i].CategoryID]
	}
	return products, nil
}

func (s *GormSource) categoryIDByName(ctx context.Context, name string) (string, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, "name = ?", name).Error; err != nil {
		return "", err
	}
	return cat.ID, nil
}

// CreateProduct inserts a new product, resolving its category by name
func (s *GormSource) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	categoryID, err := s.categoryIDByName(ctx, input.Category)
	if err != nil {
		return nil, wrap("product.create", err)
	}

	p := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Unit:        input.Unit,
		CategoryID:  categoryID,
		Image:       input.Image,
		InStock:     input.InStock,
		Visible:     input.Visible,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, wrap("product.create", err)
	}
	p.CategoryName = input.Category
	return &p, nil
}

// UpdateProduct merges the partial update onto the existing record and bumps
// its updated_at timestamp; fields not in the update are preserved.
func (s *GormSource) UpdateProduct(ctx context.Context, id string, updates ProductUpdate) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("product.update", err)
	}

	fields := make(map[string]interface{})
	if updates.Category != nil {
		categoryID, err := s.categoryIDByName(ctx, *updates.Category)
		if err != nil {
			return nil, wrap("product.update", err)
		}
		fields["category_id"] = categoryID
	}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Price != nil {
		fields["price"] = *updates.Price
	}
	if updates.Unit != nil {
		fields["unit"] = *updates.Unit
	}
	if updates.Image != nil {
		fields["image"] = *updates.Image
	}
	if updates.InStock != nil {
		fields["in_stock"] = *updates.InStock
	}
	if updates.Visible != nil {
		fields["visible"] = *updates.Visible
	}

	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&p).Updates(fields).Error; err != nil {
			return nil, wrap("product.update", err)
		}
	}

	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, "id = ?", p.CategoryID).Error; err == nil {
		p.CategoryName = cat.Name
	}
	return &p, nil
}

// DeleteProduct removes a product
func (s *GormSource) DeleteProduct(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return wrap("product.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return &Error{Op: "product.delete", Code: CodeNotFound, Message: "Product not found"}
	}
	return nil
}

// ListOrders returns all orders with their items, newest first
func (s *GormSource) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, wrap("order.list", err)
	}
	return orders, nil
}

// CreateOrder persists an order and its items atomically: either the header
// and the full item set appear, or nothing does. Item names and prices are
// frozen from the cart snapshots; the total is the sum of item totals.
func (s *GormSource) CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, &Error{Op: "order.create", Code: CodeEmptyCart, Message: "Cannot create an order from an empty cart"}
	}

	order := models.Order{
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		ClientEmail: input.ClientEmail,
		Notes:       input.Notes,
		Status:      models.OrderStatusPending,
	}

	total := 0.0
	for _, line := range input.Items {
		item := models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			TotalPrice:  line.LineTotal(),
		}
		total += item.TotalPrice
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = total

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, wrap("order.create", err)
	}
	return &order, nil
}

// UpdateOrderStatus sets the status of an order. Any known status is
// accepted from any current status.
func (s *GormSource) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, &Error{Op: "order.status", Code: CodeInvalidStatus, Message: "Unknown order status"}
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, wrap("order.status", err)
	}
	if err := s.db.WithContext(ctx).Model(&order).Update("status", status).Error; err != nil {
		return nil, wrap("order.status", err)
	}
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, wrap("order.status", err)
	}
	return &order, nil
}

// ListFavorites returns the product IDs the user has favorited
func (s *GormSource) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Pluck("product_id", &ids).Error
	if err != nil {
		return nil, wrap("favorite.list", err)
	}
	return ids, nil
}

// AddFavorite marks a product as a favorite; adding twice is a no-op
func (s *GormSource) AddFavorite(ctx context.Context, userID, productID string) error {
	fav := models.Favorite{UserID: userID, ProductID: productID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if isDuplicateErr(err) {
			return nil
		}
		return wrap("favorite.add", err)
	}
	return nil
}

// RemoveFavorite removes a product from the user's favorites
func (s *GormSource) RemoveFavorite(ctx context.Context, userID, productID string) error {
	err := s.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Favorite{}).Error
	if err != nil {
		return wrap("favorite.remove", err)
	}
	return nil
}

// CreateQuoteRequest records a guest quote request
func (s *GormSource) CreateQuoteRequest(ctx context.Context, input QuoteInput) (*models.QuoteRequest, error) {
	q := models.QuoteRequest{
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Quantity:    input.Quantity,
		Message:     input.Message,
		Status:      models.QuoteStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&q).Error; err != nil {
		return nil, wrap("quote.create", err)
	}
	return &q, nil
}

// ListQuoteRequests returns all quote requests, newest first
func (s *GormSource) ListQuoteRequests(ctx context.Context) ([]models.QuoteRequest, error) {
	var quotes []models.QuoteRequest
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&quotes).Error; err != nil {
		return nil, wrap("quote.list", err)
	}
	return quotes, nil
}

// VerifyCredentials checks email and password against the stored profile.
// The reserved demo identities are rejected outright: they only work in demo
// mode, and letting them near the backend would invite confusing cross-mode
// credential reuse.
func (s *GormSource) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == DemoAdminEmail || email == DemoClientEmail {
		return nil, &Error{Op: "auth.login", Code: CodeDemoCredentials, Message: "Demo credentials are not available when a backend is configured. Register a new account or remove the backend configuration to use demo mode."}
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Op: "auth.login", Code: CodeInvalidCredentials, Message: "Invalid login credentials"}
		}
		return nil, wrap("auth.login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &Error{Op: "auth.login", Code: CodeInvalidCredentials, Message: "Invalid login credentials"}
	}
	return &user, nil
}

// RegisterUser provisions a profile with role defaulting to client
func (s *GormSource) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &Error{Op: "auth.register", Code: CodeInternal, Message: "Failed to hash password", Err: err}
	}

	user := models.User{
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Role:         models.RoleClient,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, &Error{Op: "auth.register", Code: CodeDuplicate, Message: "A user with this email already exists", Err: err}
		}
		return nil, wrap("auth.register", err)
	}
	return &user, nil
}

// GetUser returns a user by ID
func (s *GormSource) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, wrap("user.get", err)
	}
	return &user, nil
}
