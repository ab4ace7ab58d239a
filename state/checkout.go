package state

import (
	"context"
	"regexp"
	"strings"

	"github.com/youssefmarket/storefront-api/models"
	"github.com/youssefmarket/storefront-api/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInfo is the checkout contact form. Name and phone are mandatory;
// email is optional but must be address-shaped when present.
type ContactInfo struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// ValidationError reports a checkout field that failed validation. It is
// raised before any data-source call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Checkout converts the session's cart into a persisted order. Contact
// fields are validated first, so validation failures never reach the data
// layer. The cart is cleared only after the order is created; on failure it
// is left intact.
func (s *Store) Checkout(ctx context.Context, token string, contact ContactInfo) (*models.Order, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return nil, &ValidationError{Field: "client_name", Message: "Name is required"}
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return nil, &ValidationError{Field: "client_phone", Message: "Phone is required"}
	}
	if contact.Email != "" && !emailPattern.MatchString(contact.Email) {
		return nil, &ValidationError{Field: "client_email", Message: "Email address is not valid"}
	}

	items := s.Cart(token)
	if len(items) == 0 {
		return nil, &store.Error{Op: "order.create", Code: store.CodeEmptyCart, Message: "Cannot create an order from an empty cart"}
	}

	input := store.OrderInput{
		ClientName:  strings.TrimSpace(contact.Name),
		ClientPhone: strings.TrimSpace(contact.Phone),
		Items:       items,
	}
	if contact.Email != "" {
		email := contact.Email
		input.ClientEmail = &email
	}
	if contact.Notes != "" {
		notes := contact.Notes
		input.Notes = &notes
	}

	order, err := s.src.CreateOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	s.ClearCart(token)
	return order, nil
}

// Orders lists all orders through the data source
func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	return s.src.ListOrders(ctx)
}

// UpdateOrderStatus sets an order's lifecycle status through the data source
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	return s.src.UpdateOrderStatus(ctx, id, status)
}
