package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/delivery/http/validator"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "Password123!", input.Password)

			return &usecase.RegisterOutput{
				User:  &entity.User{ID: userID, Username: input.Username},
				Token: "signed.jwt.token",
			}, nil
		})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"Password123!"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUserHandler_Register_UsecaseError(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"Password123!"}`)

	err := h.Register(c)

	// The error handler middleware renders this as a 409; the handler just propagates.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserHandler_Register_BindError(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"username":`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_EmptyBody(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	// An empty JSON body leaves the input at its zero value; validation must
	// reject it before the usecase is ever reached.
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", "")

	var err error
	require.NotPanics(t, func() {
		err = h.Register(c)
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserHandler_Register_MissingPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"username":"alice"}`)

	err := h.Register(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Password")
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Username: "alice", Token: "signed.jwt.token"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"Password123!"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserHandler_Login_EmptyBody(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", "")

	var err error
	require.NotPanics(t, func() {
		err = h.Login(c)
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := HealthCheck(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
