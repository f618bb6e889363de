package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestCartHandler_GetCart_Success(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	items := []*entity.CartItem{
		{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Quantity:  2,
			Product:   &entity.Product{Name: "Widget", Price: "19.99"},
		},
	}
	uc.EXPECT().GetCart(mock.Anything).Return(items, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()

	err := h.GetCart(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
}

func TestCartHandler_AddItem_Success(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	productID := uuid.New()
	uc.EXPECT().
		AddItem(mock.Anything, mock.AnythingOfType("*usecase.AddCartItemInput")).
		Return(&entity.CartItem{
			ID:        uuid.New(),
			ProductID: productID,
			Quantity:  3,
			Product:   &entity.Product{ID: productID, Name: "Widget"},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/cart", `{"productId":"`+productID.String()+`","quantity":3}`)

	err := h.AddItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), productID.String())
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	uc.EXPECT().
		AddItem(mock.Anything, mock.AnythingOfType("*usecase.AddCartItemInput")).
		Return(nil, domainerrors.ErrProductNotFound)

	c, _ := newJSONContext(t, http.MethodPost, "/api/cart", `{"productId":"`+uuid.NewString()+`","quantity":1}`)

	err := h.AddItem(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartHandler_AddItem_EmptyBody(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/cart", "")

	var err error
	require.NotPanics(t, func() {
		err = h.AddItem(c)
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartHandler_AddItem_NullBody(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	// A JSON null binds without error and leaves the input at its zero value.
	c, _ := newJSONContext(t, http.MethodPost, "/api/cart", `null`)

	err := h.AddItem(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartHandler_UpdateItem_Success(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	itemID := uuid.New()
	uc.EXPECT().
		UpdateItemQuantity(mock.Anything, itemID, mock.AnythingOfType("*usecase.UpdateCartItemInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.UpdateCartItemInput) error {
			assert.Equal(t, 5, input.Quantity)

			return nil
		})

	c, rec := newJSONContext(t, http.MethodPut, "/api/cart/"+itemID.String(), `{"quantity":5}`)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := h.UpdateItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateItem_BadID(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	c, rec := newJSONContext(t, http.MethodPut, "/api/cart/not-a-uuid", `{"quantity":5}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.UpdateItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCartHandler_UpdateItem_ZeroQuantity(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	itemID := uuid.New()
	c, _ := newJSONContext(t, http.MethodPut, "/api/cart/"+itemID.String(), `{"quantity":0}`)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := h.UpdateItem(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartHandler_RemoveItem_NotFound(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	itemID := uuid.New()
	uc.EXPECT().
		RemoveItem(mock.Anything, itemID).
		Return(domainerrors.ErrCartItemNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := h.RemoveItem(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
