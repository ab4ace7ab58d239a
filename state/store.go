package state

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/youssefmarket/storefront-api/models"
	"github.com/youssefmarket/storefront-api/store"
)

// Store is the single owner of the process-wide entity state: the product
// and category collections mirrored from the data source, and the carts
// keyed by session token. All reads and writes route through its methods;
// derived values are recomputed from the canonical collections on demand and
// never written back into them.
type Store struct {
	mu         sync.RWMutex
	src        store.DataSource
	products   []models.Product
	categories []models.Category
	carts      map[string][]models.CartItem
}

// Filter is the user-controlled input to the filtered product list
type Filter struct {
	Category string // category name, or "all"
	Query    string // case-insensitive substring of name or description
	Admin    bool   // admins also see hidden products
}

// NewStore creates a state store over the selected data source
func NewStore(src store.DataSource) *Store {
	return &Store{
		src:   src,
		carts: make(map[string][]models.CartItem),
	}
}

// Source exposes the underlying data source for operations that bypass the
// mirrored collections (orders, favorites, quotes).
func (s *Store) Source() store.DataSource {
	return s.src
}

// Load performs the initial fetch of products and categories. A remote
// failure here falls back to the seed dataset once, so the storefront still
// renders; later refresh failures propagate instead.
func (s *Store) Load(ctx context.Context) {
	products, err := s.src.ListProducts(ctx)
	if err != nil {
		log.Printf("Initial product load failed, falling back to seed data: %v", err)
		products = store.SeedProducts()
	}
	categories, err := s.src.ListCategories(ctx)
	if err != nil {
		log.Printf("Initial category load failed, falling back to seed data: %v", err)
		categories = store.SeedCategories()
	}

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.mu.Unlock()
}

func (s *Store) refreshProducts(ctx context.Context) error {
	products, err := s.src.ListProducts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func (s *Store) refreshCategories(ctx context.Context) error {
	categories, err := s.src.ListCategories(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// FilteredProducts computes the product list for the given filter state:
// category match (or "all"), case-insensitive substring match on name or
// description (or empty query), and visibility unless the actor is admin.
func (s *Store) FilteredProducts(f Filter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(f.Query)
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		matchesCategory := f.Category == "" || f.Category == "all" || p.CategoryName == f.Category
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		isVisible := f.Admin || p.Visible
		if matchesCategory && matchesSearch && isVisible {
			out = append(out, p)
		}
	}
	return out
}

// Product returns a product by ID. Hidden products are only found for
// admin actors.
func (s *Store) Product(id string, admin bool) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id && (admin || p.Visible) {
			return p, true
		}
	}
	return models.Product{}, false
}

// CategoryCounts computes the number of products per category name. The
// counts are derived from the product collection on every call; nothing is
// stored.
func (s *Store) CategoryCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.categories))
	for _, p := range s.products {
		counts[p.CategoryName]++
	}
	return counts
}

// Categories returns the category collection with derived product counts
func (s *Store) Categories() []models.Category {
	counts := s.CategoryCounts()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	for i := range out {
		out[i].ProductCount = counts[out[i].Name]
	}
	return out
}

// AddProduct creates a product through the data source and refreshes the
// mirrored collection. On failure the mirrored state is left unchanged.
func (s *Store) AddProduct(ctx context.Context, input store.ProductInput) (*models.Product, error) {
	p, err := s.src.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.refreshProducts(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct applies a partial product update through the data source
func (s *Store) UpdateProduct(ctx context.Context, id string, updates store.ProductUpdate) (*models.Product, error) {
	p, err := s.src.UpdateProduct(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if err := s.refreshProducts(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a product through the data source
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.src.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return s.refreshProducts(ctx)
}

// AddCategory creates a category through the data source
func (s *Store) AddCategory(ctx context.Context, input store.CategoryInput) (*models.Category, error) {
	c, err := s.src.CreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.refreshCategories(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory applies a partial category update through the data source.
// Products are refreshed too because their read-side category names may
// change with a rename.
func (s *Store) UpdateCategory(ctx context.Context, id string, updates store.CategoryUpdate) (*models.Category, error) {
	c, err := s.src.UpdateCategory(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if err := s.refreshCategories(ctx); err != nil {
		return nil, err
	}
	if err := s.refreshProducts(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category through the data source
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.src.DeleteCategory(ctx, id); err != nil {
		return err
	}
	return s.refreshCategories(ctx)
}
