// Package entity contains the core business objects of the store,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind every authenticated request.
// A user is created once at registration and is immutable afterwards;
// there is no password-change or profile-edit flow in this system.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The login name. Unique and case-sensitive across all users.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was registered.
}
