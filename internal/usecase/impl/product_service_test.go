package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return service, productRepo
}

func makeProducts(n int) []*entity.Product {
	products := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, &entity.Product{
			ID:    uuid.New(),
			Name:  "Widget",
			Price: "19.99",
		})
	}

	return products
}

func TestProductService_ListProducts_Defaults(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	products := makeProducts(6)

	// Zero values fall back to page 1 with six items.
	productRepo.EXPECT().List(ctx, 0, 6).Return(products, int64(13), nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Len(t, result.Items, 6)
	assert.Equal(t, int64(13), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 6, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)
}

func TestProductService_ListProducts_SecondPage(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	products := makeProducts(4)

	productRepo.EXPECT().List(ctx, 4, 4).Return(products, int64(8), nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{Page: 2, PageSize: 4})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 4, result.PageSize)
	assert.Equal(t, 2, result.TotalPages)
}

func TestProductService_ListProducts_NegativeParamsFallBack(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()

	productRepo.EXPECT().List(ctx, 0, 6).Return(nil, int64(0), nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{Page: -3, PageSize: -1})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 6, result.PageSize)
	assert.Equal(t, 0, result.TotalPages)
}

func TestProductService_ListProducts_PastLastPage(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()

	// Total still counts even when the requested page is empty.
	productRepo.EXPECT().List(ctx, 60, 6).Return(nil, int64(13), nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{Page: 11, PageSize: 6})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(13), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestProductService_ListProducts_RepositoryError(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()

	productRepo.EXPECT().List(ctx, 0, 6).Return(nil, int64(0), assert.AnError)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assert.AnError)
}
