package service

import (
	"errors"
	"time"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// Verification failures are sentinel errors so callers can map them to a
// response without inspecting library error types.
var (
	// ErrTokenSignatureInvalid is returned when the token signature does not
	// match the configured secret, or the signing algorithm is not accepted.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token is past its expiry time.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned for anything that cannot be parsed as a token.
	ErrTokenMalformed = errors.New("token is malformed")
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// TokenService issues and verifies the signed bearer tokens that represent a
// session. Tokens are stateless: nothing is persisted server-side and validity
// is fully determined by signature and expiry at verification time.
type TokenService interface {
	// IssueToken builds a token asserting the user's identity, issued at `now`
	// and expiring exactly one fixed lifetime later (no sliding expiration).
	IssueToken(user *entity.User, now time.Time) (string, error)

	// VerifyToken checks signature and expiry against `now` with zero clock-skew
	// tolerance and returns the embedded identity. Failures are one of
	// ErrTokenSignatureInvalid, ErrTokenExpired or ErrTokenMalformed; it never
	// panics on attacker-controlled input.
	VerifyToken(tokenString string, now time.Time) (*Identity, error)
}
