package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order lifecycle statuses. Status changes are admin-only; any known status
// may be set from any other status (free-choice selector, not an enforced
// forward-only graph).
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses lists every valid order status
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order represents a placed order. The order exclusively owns its items:
// they are created together in one transaction and deleted together.
// TotalAmount is the sum of item total prices at creation time and is not
// revised when products change later.
type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	ClientName  string      `gorm:"not null" json:"client_name"`
	ClientPhone string      `gorm:"not null" json:"client_phone"`
	ClientEmail *string     `json:"client_email,omitempty"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Notes       *string     `json:"notes,omitempty"`
	Status      string      `gorm:"not null;default:'pending'" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a UUID primary key when none is set
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of an order. ProductName and UnitPrice are snapshots
// taken at order time so the order record stays intact through later product
// edits or deletion.
type OrderItem struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"not null;index" json:"order_id"`
	ProductID   string    `gorm:"not null" json:"product_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	Quantity    int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"` // unit_price * quantity, frozen at creation
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate assigns a UUID primary key when none is set
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
