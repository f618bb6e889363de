package auth

import (
	"testing"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) service.TokenService {
	cfg := &config.Config{
		SecretKey: struct {
			Token string `json:"token" yaml:"token"`
		}{
			Token: secret,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
	}
}

func TestJWTService_IssueAndVerifyToken(t *testing.T) {
	svc := newTestTokenService(t, "test_token_secret")
	user := testUser()
	now := time.Now()

	token, err := svc.IssueToken(user, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.VerifyToken(token, now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Username, identity.Username)
}

func TestJWTService_TokenExpiry(t *testing.T) {
	svc := newTestTokenService(t, "test_token_secret")
	issuedAt := time.Now()

	token, err := svc.IssueToken(testUser(), issuedAt)
	require.NoError(t, err)

	// Still valid one minute before the 24h lifetime ends.
	identity, err := svc.VerifyToken(token, issuedAt.Add(24*time.Hour-time.Minute))
	assert.NoError(t, err)
	assert.NotNil(t, identity)

	// Expired one second past the lifetime, with zero clock-skew tolerance.
	identity, err = svc.VerifyToken(token, issuedAt.Add(24*time.Hour+time.Second))
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, identity)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret_a")
	verifier := newTestTokenService(t, "secret_b")
	now := time.Now()

	token, err := issuer.IssueToken(testUser(), now)
	require.NoError(t, err)

	identity, err := verifier.VerifyToken(token, now)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
	assert.Nil(t, identity)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t, "test_token_secret")

	for _, tokenString := range []string{
		"",
		"clearly-not-a-jwt",
		"aaa.bbb.ccc",
	} {
		identity, err := svc.VerifyToken(tokenString, time.Now())
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "token %q", tokenString)
		assert.Nil(t, identity)
	}
}

func TestJWTService_SecretExpansion(t *testing.T) {
	// A short secret is expanded by self-concatenation until it reaches 64
	// bytes; configuring the pre-expanded string yields the same key.
	short := "secret"
	expanded := string(expandSecret(short))
	require.GreaterOrEqual(t, len(expanded), 64)

	// Idempotent for secrets that already meet the minimum length.
	assert.Equal(t, expanded, string(expandSecret(expanded)))

	issuer := newTestTokenService(t, short)
	verifier := newTestTokenService(t, expanded)
	user := testUser()
	now := time.Now()

	token, err := issuer.IssueToken(user, now)
	require.NoError(t, err)

	identity, err := verifier.VerifyToken(token, now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "token signing secret")
}
