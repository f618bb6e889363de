package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	mockSvc "tienda/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func nextCounter(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	identity := &service.Identity{UserID: uuid.New(), Username: "alice"}
	tokenSvc.EXPECT().
		VerifyToken("good-token", mock.AnythingOfType("time.Time")).
		Return(identity, nil)

	c := newAuthContext("Bearer good-token")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, identity.UserID, c.Get(ContextKeyUserID))
	assert.Equal(t, "alice", c.Get(ContextKeyUsername))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthContext("")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthContext("Basic dXNlcjpwYXNz")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		VerifyToken("stale-token", mock.AnythingOfType("time.Time")).
		Return(nil, service.ErrTokenExpired)

	c := newAuthContext("Bearer stale-token")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthMiddleware_Authenticate_BadSignature(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		VerifyToken("forged-token", mock.AnythingOfType("time.Time")).
		Return(nil, service.ErrTokenSignatureInvalid)

	c := newAuthContext("Bearer forged-token")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalidSignature)
}

func TestAuthMiddleware_Authenticate_MalformedToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		VerifyToken("garbage", mock.AnythingOfType("time.Time")).
		Return(nil, service.ErrTokenMalformed)

	c := newAuthContext("Bearer garbage")
	var called bool

	err := m.Authenticate(nextCounter(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}
