package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/internal/domain/entity"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts_QueryParams(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	uc.EXPECT().
		ListProducts(mock.Anything, &usecase.ListProductsInput{Page: 2, PageSize: 4}).
		Return(&usecase.PagedProducts{
			Items:      []*entity.Product{{ID: uuid.New(), Name: "Widget", Price: "19.99"}},
			Total:      8,
			Page:       2,
			PageSize:   4,
			TotalPages: 2,
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&pageSize=4", nil)
	rec := httptest.NewRecorder()

	err := h.ListProducts(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
}

func TestProductHandler_ListProducts_MalformedParamsFallBack(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	// Unparsable values reach the usecase as zero and take the defaults there.
	uc.EXPECT().
		ListProducts(mock.Anything, &usecase.ListProductsInput{Page: 0, PageSize: 0}).
		Return(&usecase.PagedProducts{Page: 1, PageSize: 6}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=abc&pageSize=", nil)
	rec := httptest.NewRecorder()

	err := h.ListProducts(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListProducts_UsecaseError(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	uc.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("*usecase.ListProductsInput")).
		Return(nil, assert.AnError)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	err := h.ListProducts(e.NewContext(req, rec))

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
