package state

import (
	"github.com/youssefmarket/storefront-api/models"
)

// Cart returns a copy of the cart for the given session token
func (s *Store) Cart(token string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.carts[token]))
	copy(out, s.carts[token])
	return out
}

// AddToCart adds one unit of the product to the cart. If the product already
// has a line its quantity is incremented; otherwise a new line with quantity
// 1 is appended. The line stores a full product snapshot, so later product
// edits do not change what the shopper put in the cart.
func (s *Store) AddToCart(token string, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	for i := range cart {
		if cart[i].Product.ID == product.ID {
			cart[i].Quantity++
			return
		}
	}
	s.carts[token] = append(cart, models.CartItem{Product: product, Quantity: 1})
}

// UpdateCartQuantity sets a line's quantity. A quantity of zero or less
// removes the line entirely; zero-quantity lines are never stored.
func (s *Store) UpdateCartQuantity(token, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(token, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart removes the line for the given product
func (s *Store) RemoveFromCart(token, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	for i := range cart {
		if cart[i].Product.ID == productID {
			s.carts[token] = append(cart[:i], cart[i+1:]...)
			return
		}
	}
}

// ClearCart drops every line in the cart
func (s *Store) ClearCart(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
}

// CartTotal sums price times quantity over the cart's lines, using the
// product price snapshots stored in the lines rather than live products.
func (s *Store) CartTotal(token string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, line := range s.carts[token] {
		total += line.LineTotal()
	}
	return total
}
