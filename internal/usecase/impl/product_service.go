package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage     = 1
	defaultPageSize = 6
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of the catalog.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.PagedProducts, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	offset := (page - 1) * pageSize

	items, total, err := srv.productRepo.List(ctx, offset, pageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Int("page", page), slog.Int("pageSize", pageSize), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	srv.log(ctx).Debug("Listed products", slog.Int("page", page), slog.Int("count", len(items)), slog.Int64("total", total))

	return &usecase.PagedProducts{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
