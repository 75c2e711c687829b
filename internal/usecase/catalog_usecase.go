// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycomart/internal/domain/entity"
)

// CatalogUsecase serves the read-only product catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
}
