package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAPI_Fetch_NormalizesLinePrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cart/", r.URL.Path)
		// Line ids arrive numeric and the second line's price only lives on
		// the product, both shapes the backend actually produces.
		w.Write([]byte(`{"items": [
			{"id": 41, "price": "249.50", "qty": 2, "product": {"id": 7, "name": "Oyster Kit", "price": "249.50", "image": "/media/oyster.jpg"}},
			{"id": 42, "qty": 1, "product": {"id": 8, "name": "Shiitake Kit", "price": 399}}
		]}`))
	}))
	defer server.Close()

	cartAPI := NewCartAPI(newTestClient(server.URL))

	cart, err := cartAPI.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "41", cart.Items[0].ID)
	assert.Equal(t, 249.50, cart.Items[0].Price)
	assert.Equal(t, 399.0, cart.Items[1].Price)
}

func TestCartAPI_AddItem_RejectsQuantityBelowOne(t *testing.T) {
	cartAPI := NewCartAPI(newTestClient("http://backend.invalid"))

	_, err := cartAPI.AddItem(context.Background(), 7, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartAPI_UpdateQuantity_TargetsLineEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/cart/items/41/", r.URL.Path)
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	cartAPI := NewCartAPI(newTestClient(server.URL))

	cart, err := cartAPI.UpdateQuantity(context.Background(), "41", 3)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartAPI_SyncGuestCart_BulkPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cart/sync-guest-cart/", r.URL.Path)

		var req syncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []repository.SyncItem{
			{ProductID: 7, Quantity: 2},
			{ProductID: 8, Quantity: 1},
		}, req.Items)

		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	cartAPI := NewCartAPI(newTestClient(server.URL))

	require.NoError(t, cartAPI.SyncGuestCart(context.Background(), []repository.SyncItem{
		{ProductID: 7, Quantity: 2},
		{ProductID: 8, Quantity: 1},
	}))
}

func TestCartAPI_SyncGuestCart_RejectionSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "product 7 discontinued"}`))
	}))
	defer server.Close()

	cartAPI := NewCartAPI(newTestClient(server.URL))

	err := cartAPI.SyncGuestCart(context.Background(), []repository.SyncItem{{ProductID: 7, Quantity: 2}})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYNC_REJECTED", appErr.ErrorCode())
	assert.Equal(t, "product 7 discontinued", appErr.Message())
}
