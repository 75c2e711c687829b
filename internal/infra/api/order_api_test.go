package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *entity.OrderDraft {
	return &entity.OrderDraft{
		Items: []*entity.CartItem{
			{ID: "41", ProductID: 7, Price: 249, Quantity: 2},
		},
		Address:  entity.ShippingAddress{FullName: "Asha Grower", City: "Pune"},
		Method:   entity.PaymentCOD,
		Amount:   498,
		Currency: "INR",
	}
}

func TestOrderAPI_CreateCODOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/create-cod-order/", r.URL.Path)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cod", req.PaymentMethod)
		assert.Equal(t, 498.0, req.Amount)

		w.Write([]byte(`{"success": true, "order_id": "ord-1", "db_order_id": 41}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	confirmation, err := orderAPI.CreateCODOrder(context.Background(), sampleDraft())
	require.NoError(t, err)
	assert.Equal(t, "ord-1", confirmation.OrderID)
	assert.Equal(t, int64(41), confirmation.DBOrderID)
	assert.Equal(t, 498.0, confirmation.Amount)
}

func TestOrderAPI_CreateCODOrder_Rejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "address unserviceable"}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	_, err := orderAPI.CreateCODOrder(context.Background(), sampleDraft())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_REJECTED", appErr.ErrorCode())
	assert.Equal(t, "address unserviceable", appErr.Message())
}

func TestOrderAPI_CreateProviderOrder_LegacyIDField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/create-razorpay-order/", r.URL.Path)
		w.Write([]byte(`{"id": "rzp-1", "key": "key_test"}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	order, err := orderAPI.CreateProviderOrder(context.Background(), 498, "INR")
	require.NoError(t, err)
	assert.Equal(t, "rzp-1", order.OrderID)
	// Amount and currency fall back to the request when the response omits them.
	assert.Equal(t, 498.0, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestOrderAPI_CreateProviderOrder_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"key": "key_test"}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	_, err := orderAPI.CreateProviderOrder(context.Background(), 498, "INR")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderFailed)
}

func TestOrderAPI_VerifyPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/verify-payment/", r.URL.Path)

		var callback entity.PaymentCallback
		require.NoError(t, json.NewDecoder(r.Body).Decode(&callback))
		assert.Equal(t, "sig", callback.Signature)

		w.Write([]byte(`{"status": "success", "db_order_id": 41}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	confirmation, err := orderAPI.VerifyPayment(context.Background(), &entity.PaymentCallback{
		ProviderOrderID:   "rzp-1",
		ProviderPaymentID: "pay-1",
		Signature:         "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, "rzp-1", confirmation.OrderID)
	assert.Equal(t, int64(41), confirmation.DBOrderID)
}

func TestOrderAPI_VerifyPayment_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "failed", "message": "signature mismatch"}`))
	}))
	defer server.Close()

	orderAPI := NewOrderAPI(newTestClient(server.URL))

	_, err := orderAPI.VerifyPayment(context.Background(), &entity.PaymentCallback{ProviderOrderID: "rzp-1"})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)
}
