package api

import (
	"context"
	"encoding/json"
	"net/http"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
)

// cartAPI implements repository.CartAPI. Every mutation returns the backend's
// cart snapshot, which becomes the new client cache wholesale.
type cartAPI struct {
	client *Client
}

// NewCartAPI is the constructor for cartAPI.
func NewCartAPI(client *Client) repository.CartAPI {
	return &cartAPI{client: client}
}

// cartPayload mirrors the backend cart shape. Line ids arrive as numbers and
// prices sometimes as strings, so both go through json.Number.
type cartPayload struct {
	Items []struct {
		ID      json.Number `json:"id"`
		Price   json.Number `json:"price"`
		Qty     int         `json:"qty"`
		Product struct {
			ID    int64       `json:"id"`
			Name  string      `json:"name"`
			Price json.Number `json:"price"`
			Image string      `json:"image"`
		} `json:"product"`
	} `json:"items"`
}

func (p *cartPayload) toEntity() *entity.Cart {
	cart := &entity.Cart{Items: make([]*entity.CartItem, 0, len(p.Items))}
	for _, raw := range p.Items {
		price, err := raw.Price.Float64()
		if err != nil || price == 0 {
			// Line price falls back to the product's price, as the cart
			// views always did.
			if v, perr := raw.Product.Price.Float64(); perr == nil {
				price = v
			}
		}

		cart.Items = append(cart.Items, &entity.CartItem{
			ID:        raw.ID.String(),
			ProductID: raw.Product.ID,
			Name:      raw.Product.Name,
			Price:     price,
			Image:     raw.Product.Image,
			Quantity:  raw.Qty,
		})
	}

	return cart
}

// Fetch retrieves the authoritative cart snapshot.
func (a *cartAPI) Fetch(ctx context.Context) (*entity.Cart, error) {
	var payload cartPayload
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/cart/", nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddItem adds a product to the remote cart.
func (a *cartAPI) AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var payload cartPayload
	err := a.client.doJSON(ctx, http.MethodPost, "/api/cart/add/", addItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity overwrites one line's quantity on the remote cart.
func (a *cartAPI) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var payload cartPayload
	err := a.client.doJSON(ctx, http.MethodPut, "/api/cart/items/"+itemID+"/", updateQuantityRequest{
		Quantity: quantity,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

// RemoveItem deletes one line from the remote cart.
func (a *cartAPI) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	var payload cartPayload
	if err := a.client.doJSON(ctx, http.MethodDelete, "/api/cart/items/"+itemID+"/", nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

// Clear empties the remote cart.
func (a *cartAPI) Clear(ctx context.Context) (*entity.Cart, error) {
	var payload cartPayload
	if err := a.client.doJSON(ctx, http.MethodDelete, "/api/cart/", nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

type syncRequest struct {
	Items []repository.SyncItem `json:"items"`
}

type syncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SyncGuestCart submits the whole guest cart in one bulk request.
func (a *cartAPI) SyncGuestCart(ctx context.Context, items []repository.SyncItem) error {
	var resp syncResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/api/cart/sync-guest-cart/", syncRequest{Items: items}, &resp)
	if err != nil {
		return err
	}

	if !resp.Success {
		return domainerrors.NewBackendError(http.StatusBadRequest, "SYNC_REJECTED", resp.Message, "")
	}

	return nil
}
