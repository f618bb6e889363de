// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by their exact (case-sensitive) username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. The store enforces username uniqueness; a
	// losing check-then-insert race surfaces as a duplicate-user domain error.
	Create(ctx context.Context, user *entity.User) error
}
