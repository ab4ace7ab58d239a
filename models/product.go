package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product. The persistent row references its
// category by ID; CategoryName carries the category's name on the read side
// because the rest of the application keys products by category name.
type Product struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"not null" json:"description"`
	Price        float64   `gorm:"not null;check:price > 0" json:"price"`
	Unit         string    `gorm:"not null" json:"unit"` // e.g. "1kg", "500ml"
	CategoryID   string    `gorm:"not null;index" json:"-"`
	CategoryName string    `gorm:"-" json:"category"`
	Image        string    `json:"image"`
	InStock      bool      `gorm:"not null;default:true" json:"in_stock"`
	Visible      bool      `gorm:"not null;default:true" json:"visible"` // hidden from non-admin views when false
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
