package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of the shopping cart: a product reference and a quantity.
// The associated Product is resolved by the persistence layer on reads.
type CartItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID // Foreign key to the product being purchased.
	Quantity  int
	Product   *Product // Preloaded product data. Nil when not fetched.
	CreatedAt time.Time
	UpdatedAt time.Time
}
