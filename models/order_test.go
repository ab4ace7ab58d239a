package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status), "status %q should be valid", status)
	}

	invalid := []string{"", "shipped", "Pending", "DELIVERED", "unknown"}
	for _, status := range invalid {
		assert.False(t, ValidOrderStatus(status), "status %q should be invalid", status)
	}
}

func TestCartItemLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		quantity int
		expected float64
	}{
		{name: "single unit", price: 49.90, quantity: 1, expected: 49.90},
		{name: "multiple units", price: 29.90, quantity: 3, expected: 89.70},
		{name: "fractional price", price: 0.5, quantity: 7, expected: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CartItem{Product: Product{Price: tt.price}, Quantity: tt.quantity}
			assert.InDelta(t, tt.expected, item.LineTotal(), 0.001)
		})
	}
}

func TestUserRoleHelpers(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	client := &User{Role: RoleClient}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsClient())
	assert.True(t, client.IsClient())
	assert.False(t, client.IsAdmin())

	var missing *User
	assert.False(t, missing.IsAdmin())
	assert.False(t, missing.IsClient())
}
