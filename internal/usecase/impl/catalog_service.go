// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mycomart/internal/delivery/context"
	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogAPI repository.CatalogAPI
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogAPI repository.CatalogAPI, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogAPI: catalogAPI,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.catalogAPI.ListProducts(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogAPI.ListCategories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.catalogAPI.GetProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to get product",
			slog.Int64("product_id", productID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}
