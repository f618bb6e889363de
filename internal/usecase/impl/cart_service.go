package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart retrieves every cart item with its product attached.
func (srv *cartService) GetCart(ctx context.Context) ([]*entity.CartItem, error) {
	// Single query operation - use direct repository instance
	items, err := srv.cartRepo.ListItems(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list cart items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

// AddItem puts a product in the cart.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if input.ProductID == uuid.Nil || input.Quantity < 1 {
		srv.log(ctx).Warn("Add to cart rejected", slog.Any("productID", input.ProductID), slog.Int("quantity", input.Quantity))

		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "product id and a positive quantity are required")
	}

	var addedItem *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		// Resolve the product first so the response carries it without a second read.
		product, findErr := productRepo.FindByID(ctx, input.ProductID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
			}

			return errors.Wrap(findErr, "failed to find product for cart item")
		}

		newItem := &entity.CartItem{
			ProductID: product.ID,
			Quantity:  input.Quantity,
			Product:   product,
		}
		if createErr := cartRepo.CreateItem(ctx, newItem); createErr != nil {
			return errors.Wrap(createErr, "failed to create cart item")
		}

		addedItem = newItem

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute add cart item transaction", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add cart item transaction")
	}

	srv.log(ctx).Debug("Added cart item", slog.Any("itemID", addedItem.ID), slog.Any("productID", addedItem.ProductID))

	return addedItem, nil
}

// UpdateItemQuantity changes the quantity of an existing cart item.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, id uuid.UUID, input *usecase.UpdateCartItemInput) error {
	if input.Quantity < 1 {
		srv.log(ctx).Warn("Cart update rejected", slog.Any("itemID", id), slog.Int("quantity", input.Quantity))

		return errors.Wrap(domainerrors.ErrInvalidInput, "quantity must be at least 1")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, id, input.Quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			srv.log(ctx).Warn("Cart item not found for update", slog.Any("itemID", id))

			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item does not exist")
		}
		srv.log(ctx).Error("Failed to update cart item", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update cart item quantity")
	}

	return nil
}

// RemoveItem deletes a cart item.
func (srv *cartService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.cartRepo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			srv.log(ctx).Warn("Cart item not found for delete", slog.Any("itemID", id))

			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item does not exist")
		}
		srv.log(ctx).Error("Failed to delete cart item", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}
