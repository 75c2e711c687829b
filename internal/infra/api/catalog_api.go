package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
)

// catalogAPI implements repository.CatalogAPI, a read-through over the
// backend's product and category listings.
type catalogAPI struct {
	client *Client
}

// NewCatalogAPI is the constructor for catalogAPI.
func NewCatalogAPI(client *Client) repository.CatalogAPI {
	return &catalogAPI{client: client}
}

// productPayload mirrors a backend product record; prices arrive as strings
// on some endpoints.
type productPayload struct {
	ID          int64       `json:"id"`
	CategoryID  int64       `json:"category_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
	Size        string      `json:"size"`
	InStock     *bool       `json:"in_stock"`
}

func (p *productPayload) toEntity() *entity.Product {
	price, _ := p.Price.Float64()
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}

	return &entity.Product{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Image:       p.Image,
		Size:        p.Size,
		InStock:     inStock,
	}
}

// ListProducts returns the full catalog.
func (a *catalogAPI) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var payload []productPayload
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/products/", nil, &payload); err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(payload))
	for i := range payload {
		products[i] = payload[i].toEntity()
	}

	return products, nil
}

// ListCategories returns the category listing.
func (a *catalogAPI) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var payload []entity.Category
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/category/", nil, &payload); err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(payload))
	for i := range payload {
		categories[i] = &payload[i]
	}

	return categories, nil
}

// GetProduct returns a single product record.
func (a *catalogAPI) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	var payload productPayload
	path := "/api/products/" + strconv.FormatInt(productID, 10) + "/"
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
