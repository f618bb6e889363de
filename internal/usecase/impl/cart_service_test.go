package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
	}
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	items := []*entity.CartItem{
		{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Quantity:  2,
			Product:   &entity.Product{Name: "Widget", Price: "19.99"},
		},
	}

	fx.cartRepo.EXPECT().ListItems(ctx).Return(items, nil)

	result, err := fx.service.GetCart(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Widget", result[0].Product.Name)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().ListItems(ctx).Return([]*entity.CartItem{}, nil)

	result, err := fx.service.GetCart(ctx)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.AddCartItemInput{ProductID: productID, Quantity: 3}

	product := &entity.Product{ID: productID, Name: "Widget", Price: "19.99"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)

			mockCartRepo.EXPECT().
				CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
				Run(func(ctx context.Context, item *entity.CartItem) {
					item.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	item, err := fx.service.AddItem(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, "Widget", item.Product.Name)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	item, err := fx.service.AddItem(ctx, input)

	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_InvalidInput(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.AddCartItemInput
	}{
		{name: "missing product id", input: &usecase.AddCartItemInput{Quantity: 1}},
		{name: "zero quantity", input: &usecase.AddCartItemInput{ProductID: uuid.New()}},
		{name: "negative quantity", input: &usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := fx.service.AddItem(ctx, tc.input)

			require.Error(t, err)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestCartService_UpdateItemQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().UpdateQuantity(ctx, itemID, 5).Return(nil)

	err := fx.service.UpdateItemQuantity(ctx, itemID, &usecase.UpdateCartItemInput{Quantity: 5})

	require.NoError(t, err)
}

func TestCartService_UpdateItemQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, itemID, 5).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.UpdateItemQuantity(ctx, itemID, &usecase.UpdateCartItemInput{Quantity: 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateItemQuantity_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.UpdateItemQuantity(context.Background(), uuid.New(), &usecase.UpdateCartItemInput{Quantity: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)

	err := fx.service.RemoveItem(ctx, itemID)

	require.NoError(t, err)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteItem(ctx, itemID).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, itemID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
