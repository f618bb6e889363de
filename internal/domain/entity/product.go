package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single catalog entry shown on the storefront.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       string // Decimal price carried as a string to avoid float rounding; the column is numeric(18,2).
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
