// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Hashing the same password twice yields different strings, both verifiable.
	// An empty plaintext is rejected with a domain error rather than hashed.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	// It returns false for empty or malformed inputs instead of failing.
	Check(password, hash string) bool
}
