package middleware

import (
	"strings"
	"time"

	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrTokenMalformed, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.Wrap(domainerrors.ErrTokenMalformed, "authorization header must carry a bearer token")
		}

		identity, err := m.tokenSvc.VerifyToken(tokenString, time.Now())
		if err != nil {
			return mapTokenError(err)
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, identity.UserID)
		c.Set(ContextKeyUsername, identity.Username)

		return next(c)
	}
}

// mapTokenError translates token verification sentinels into the client-facing taxonomy.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return errors.Wrap(domainerrors.ErrTokenExpired, "token verification failed")
	case errors.Is(err, service.ErrTokenSignatureInvalid):
		return errors.Wrap(domainerrors.ErrTokenInvalidSignature, "token verification failed")
	default:
		return errors.Wrap(domainerrors.ErrTokenMalformed, "token verification failed")
	}
}
