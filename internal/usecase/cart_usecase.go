package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to put a product in the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemInput defines the data required to change a cart line's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartUsecase defines the interface for shopping-cart operations.
type CartUsecase interface {
	// GetCart retrieves every cart item with its product attached.
	GetCart(ctx context.Context) ([]*entity.CartItem, error)

	// AddItem puts a product in the cart.
	AddItem(ctx context.Context, input *AddCartItemInput) (*entity.CartItem, error)

	// UpdateItemQuantity changes the quantity of an existing cart item.
	UpdateItemQuantity(ctx context.Context, id uuid.UUID, input *UpdateCartItemInput) error

	// RemoveItem deletes a cart item.
	RemoveItem(ctx context.Context, id uuid.UUID) error
}
