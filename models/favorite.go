package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links a user to a product they have marked as a favorite
type Favorite struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index:idx_user_product,unique" json:"user_id"`
	ProductID string    `gorm:"not null;index:idx_user_product,unique" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "user_favorites"
}

// BeforeCreate assigns a UUID primary key when none is set
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
