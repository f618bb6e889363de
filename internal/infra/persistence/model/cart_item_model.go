package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. ProductID references
// products.id with ON DELETE CASCADE.
type CartItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null"`
	Quantity  int           `gorm:"not null"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
