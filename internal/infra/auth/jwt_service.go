package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"
)

const (
	// tokenTTL is the fixed absolute lifetime of a bearer token.
	tokenTTL = 24 * time.Hour

	// minSecretLength is the minimum size of the signing key in bytes.
	minSecretLength = 64
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte // Expanded symmetric key for HS256 signing.
}

// NewJWTService is the constructor for jwtService.
// A missing token secret is fatal here, at construction, so a misconfigured
// process never reaches the point of serving requests.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be configured")
	}

	return &jwtService{
		secret: expandSecret(cfg.SecretKey.Token),
	}, nil
}

// expandSecret grows a short secret by self-concatenation until it reaches
// the minimum key length. Already-long secrets pass through unchanged.
// This matches the historical token format; it is repetition, not key
// derivation, and adds no entropy. TODO: migrate to an HKDF-derived key once
// existing tokens can be invalidated.
func expandSecret(secret string) []byte {
	for len([]byte(secret)) < minSecretLength {
		secret += secret
	}

	return []byte(secret)
}

// IssueToken creates a signed token asserting the user's identity.
// Expiry is exactly tokenTTL after `now`; there is no sliding expiration.
func (s *jwtService) IssueToken(user *entity.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),         // Subject (who the token is for)
		"username": user.Username,            // Username claim for downstream handlers
		"iat":      now.Unix(),               // Issued At
		"exp":      now.Add(tokenTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// VerifyToken checks the signature and expiry of a token string against `now`
// and extracts the caller's identity. Only HS256 is accepted; expiry is
// evaluated with zero leeway.
func (s *jwtService) VerifyToken(tokenString string, now time.Time) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, service.ErrTokenMalformed
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	return &service.Identity{
		UserID:   userID,
		Username: username,
	}, nil
}

// classifyParseError maps golang-jwt failures onto the domain's sentinel errors.
// Anything not recognizably a signature or expiry problem counts as malformed.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	default:
		return service.ErrTokenMalformed
	}
}
