package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/youssefmarket/storefront-api/models"
)

// MockSource is the in-memory data source used when no backend is
// configured. Collections are process-local, seeded with the demo dataset,
// and guarded by a single RWMutex. All returned values are copies so callers
// can never mutate the canonical collections directly.
type MockSource struct {
	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
	orders     []models.Order
	favorites  map[string][]string // userID -> productIDs
	quotes     []models.QuoteRequest
	users      map[string]models.User // id -> user
}

// NewMockSource creates a mock source seeded with the demo dataset and the
// two fixed demo identities.
func NewMockSource() *MockSource {
	m := &MockSource{
		categories: SeedCategories(),
		products:   SeedProducts(),
		favorites:  make(map[string][]string),
		users:      make(map[string]models.User),
	}
	m.users["admin-1"] = models.User{ID: "admin-1", Name: "Admin User", Email: DemoAdminEmail, Role: models.RoleAdmin}
	m.users["client-1"] = models.User{ID: "client-1", Name: "Client User", Email: DemoClientEmail, Role: models.RoleClient}
	return m
}

// ListCategories returns all categories sorted as stored
func (m *MockSource) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

// CreateCategory appends a new category
func (m *MockSource) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categories {
		if c.Name == input.Name {
			return nil, &Error{Op: "category.create", Code: CodeDuplicate, Message: "A category with this name already exists"}
		}
	}

	now := time.Now()
	cat := models.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.categories = append(m.categories, cat)
	return &cat, nil
}

// UpdateCategory merges the partial update onto the stored record. When the
// category is renamed, products referencing it keep working because they
// reference the category ID; their read-side name is refreshed on list.
func (m *MockSource) UpdateCategory(ctx context.Context, id string, updates CategoryUpdate) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].ID != id {
			continue
		}
		if updates.Name != nil {
			m.categories[i].Name = *updates.Name
		}
		if updates.Description != nil {
			m.categories[i].Description = *updates.Description
		}
		if updates.Image != nil {
			m.categories[i].Image = *updates.Image
		}
		m.categories[i].UpdatedAt = time.Now()
		cat := m.categories[i]
		return &cat, nil
	}
	return nil, &Error{Op: "category.update", Code: CodeNotFound, Message: "Category not found"}
}

// DeleteCategory removes a category. Deletion is refused while products
// still reference the category.
func (m *MockSource) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.CategoryID == id {
			return &Error{Op: "category.delete", Code: CodeCategoryInUse, Message: "Category still has products"}
		}
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return &Error{Op: "category.delete", Code: CodeNotFound, Message: "Category not found"}
}

// ListProducts returns all products with their category names filled in
func (m *MockSource) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make(map[string]string, len(m.categories))
	for _, c := range m.categories {
		names[c.ID] = c.Name
	}

	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	for i := range out {
		out[i].CategoryName = names[out[i].CategoryID]
	}
	return out, nil
}

// CreateProduct appends a new product, resolving the category by name
func (m *MockSource) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	categoryID := ""
	for _, c := range m.categories {
		if c.Name == input.Category {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		return nil, &Error{Op: "product.create", Code: CodeNotFound, Message: "Category not found"}
	}

	now := time.Now()
	p := models.Product{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Unit:         input.Unit,
		CategoryID:   categoryID,
		CategoryName: input.Category,
		Image:        input.Image,
		InStock:      input.InStock,
		Visible:      input.Visible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.products = append(m.products, p)
	return &p, nil
}

// UpdateProduct merges the partial update onto the stored record and bumps
// its updated_at timestamp. Fields absent from the update are preserved.
func (m *MockSource) UpdateProduct(ctx context.Context, id string, updates ProductUpdate) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		if updates.Category != nil {
			categoryID := ""
			for _, c := range m.categories {
				if c.Name == *updates.Category {
					categoryID = c.ID
					break
				}
			}
			if categoryID == "" {
				return nil, &Error{Op: "product.update", Code: CodeNotFound, Message: "Category not found"}
			}
			m.products[i].CategoryID = categoryID
			m.products[i].CategoryName = *updates.Category
		}
		if updates.Name != nil {
			m.products[i].Name = *updates.Name
		}
		if updates.Description != nil {
			m.products[i].Description = *updates.Description
		}
		if updates.Price != nil {
			m.products[i].Price = *updates.Price
		}
		if updates.Unit != nil {
			m.products[i].Unit = *updates.Unit
		}
		if updates.Image != nil {
			m.products[i].Image = *updates.Image
		}
		if updates.InStock != nil {
			m.products[i].InStock = *updates.InStock
		}
		if updates.Visible != nil {
			m.products[i].Visible = *updates.Visible
		}
		m.products[i].UpdatedAt = time.Now()
		p := m.products[i]
		return &p, nil
	}
	return nil, &Error{Op: "product.update", Code: CodeNotFound, Message: "Product not found"}
}

// DeleteProduct removes a product
func (m *MockSource) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return &Error{Op: "product.delete", Code: CodeNotFound, Message: "Product not found"}
}

// ListOrders returns all orders, newest first
func (m *MockSource) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}

// CreateOrder turns a cart snapshot into a persisted order. The order header
// and all items are appended together under one lock, so the full set appears
// or nothing does. Item names and prices are frozen from the cart snapshots.
func (m *MockSource) CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, &Error{Op: "order.create", Code: CodeEmptyCart, Message: "Cannot create an order from an empty cart"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	order := models.Order{
		ID:          uuid.NewString(),
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		ClientEmail: input.ClientEmail,
		Notes:       input.Notes,
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	total := 0.0
	for _, line := range input.Items {
		item := models.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			TotalPrice:  line.LineTotal(),
			CreatedAt:   now,
		}
		total += item.TotalPrice
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = total

	m.orders = append(m.orders, order)
	return &order, nil
}

// UpdateOrderStatus sets the status of an order. Any known status is
// accepted from any current status.
func (m *MockSource) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, &Error{Op: "order.status", Code: CodeInvalidStatus, Message: "Unknown order status"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			m.orders[i].UpdatedAt = time.Now()
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, &Error{Op: "order.status", Code: CodeNotFound, Message: "Order not found"}
}

// ListFavorites returns the product IDs the user has favorited
func (m *MockSource) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.favorites[userID]))
	copy(out, m.favorites[userID])
	return out, nil
}

// AddFavorite marks a product as a favorite; adding twice is a no-op
func (m *MockSource) AddFavorite(ctx context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.favorites[userID] {
		if id == productID {
			return nil
		}
	}
	m.favorites[userID] = append(m.favorites[userID], productID)
	return nil
}

// RemoveFavorite removes a product from the user's favorites
func (m *MockSource) RemoveFavorite(ctx context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.favorites[userID]
	for i, id := range ids {
		if id == productID {
			m.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

// CreateQuoteRequest records a guest quote request
func (m *MockSource) CreateQuoteRequest(ctx context.Context, input QuoteInput) (*models.QuoteRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := models.QuoteRequest{
		ID:          uuid.NewString(),
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Quantity:    input.Quantity,
		Message:     input.Message,
		Status:      models.QuoteStatusPending,
		CreatedAt:   time.Now(),
	}
	m.quotes = append(m.quotes, q)
	return &q, nil
}

// ListQuoteRequests returns all quote requests, newest first
func (m *MockSource) ListQuoteRequests(ctx context.Context) ([]models.QuoteRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.QuoteRequest, 0, len(m.quotes))
	for i := len(m.quotes) - 1; i >= 0; i-- {
		out = append(out, m.quotes[i])
	}
	return out, nil
}

// VerifyCredentials matches email and password against the two fixed demo
// identities. Any other combination fails with invalid credentials.
func (m *MockSource) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == DemoAdminEmail && password == DemoAdminPassword {
		u := m.users["admin-1"]
		return &u, nil
	}
	if email == DemoClientEmail && password == DemoClientPassword {
		u := m.users["client-1"]
		return &u, nil
	}
	return nil, &Error{Op: "auth.login", Code: CodeInvalidCredentials, Message: "Invalid login credentials"}
}

// RegisterUser always succeeds in demo mode and creates a client-role
// identity from the submitted name and email. The password is not persisted.
func (m *MockSource) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      models.RoleClient,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.users[u.ID] = u
	return &u, nil
}

// GetUser returns a user by ID
func (m *MockSource) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, &Error{Op: "user.get", Code: CodeNotFound, Message: "User not found"}
}
