package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// ListProductsInput carries the pagination parameters for the catalog.
// Zero values fall back to the defaults (page 1, six items per page).
type ListProductsInput struct {
	Page     int
	PageSize int
}

// PagedProducts is one page of the catalog with pagination metadata.
type PagedProducts struct {
	Items      []*entity.Product `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// ProductUsecase defines the interface for catalog browsing.
type ProductUsecase interface {
	// ListProducts returns one page of products.
	ListProducts(ctx context.Context, input *ListProductsInput) (*PagedProducts, error)
}
