package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart item does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for shopping-cart persistence.
type CartRepository interface {
	// ListItems returns every cart item with its product preloaded.
	ListItems(ctx context.Context) ([]*entity.CartItem, error)

	// CreateItem persists a new cart item. A dangling product reference is
	// rejected by the store's foreign key and surfaced as a domain error.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity changes the quantity of an existing cart item.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteItem removes a cart item.
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
