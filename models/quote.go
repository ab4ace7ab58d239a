package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quote request statuses
const (
	QuoteStatusPending   = "pending"
	QuoteStatusResponded = "responded"
	QuoteStatusClosed    = "closed"
)

// QuoteRequest is a guest inquiry about a product. ProductName is a snapshot
// taken when the request is submitted.
type QuoteRequest struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ProductID   string    `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	ClientName  string    `gorm:"not null" json:"client_name"`
	ClientEmail string    `gorm:"not null" json:"client_email"`
	ClientPhone *string   `json:"client_phone,omitempty"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the QuoteRequest model
func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// BeforeCreate assigns a UUID primary key when none is set
func (q *QuoteRequest) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
