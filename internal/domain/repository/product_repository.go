package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read operations over the product catalog.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns one page of the catalog plus the total number of products.
	// Offset and limit are already resolved by the caller.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)
}
