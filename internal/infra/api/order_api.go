package api

import (
	"context"
	"net/http"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
)

// orderAPI implements repository.OrderAPI: direct COD order creation plus the
// provider-order/verify pair of the online payment path.
type orderAPI struct {
	client *Client
}

// NewOrderAPI is the constructor for orderAPI.
func NewOrderAPI(client *Client) repository.OrderAPI {
	return &orderAPI{client: client}
}

type orderItemPayload struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	Items         []orderItemPayload     `json:"items"`
	Address       entity.ShippingAddress `json:"address"`
	Amount        float64                `json:"amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
}

type createOrderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   string `json:"order_id"`
	DBOrderID int64  `json:"db_order_id"`
}

func draftToRequest(draft *entity.OrderDraft) createOrderRequest {
	items := make([]orderItemPayload, len(draft.Items))
	for i, item := range draft.Items {
		items[i] = orderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return createOrderRequest{
		Items:         items,
		Address:       draft.Address,
		Amount:        draft.Amount,
		Currency:      draft.Currency,
		PaymentMethod: string(draft.Method),
	}
}

// CreateCODOrder places a cash-on-delivery order.
func (a *orderAPI) CreateCODOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.OrderConfirmation, error) {
	var resp createOrderResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/create-cod-order/", draftToRequest(draft), &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, domainerrors.NewBackendError(http.StatusBadRequest, "ORDER_REJECTED", resp.Message, "")
	}

	return &entity.OrderConfirmation{
		OrderID:   resp.OrderID,
		DBOrderID: resp.DBOrderID,
		Amount:    draft.Amount,
		Currency:  draft.Currency,
	}, nil
}

type providerOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type providerOrderResponse struct {
	OrderID  string  `json:"order_id"`
	ID       string  `json:"id"` // Older builds return the provider order under "id".
	Key      string  `json:"key"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateProviderOrder mints a payment-provider order server-side.
func (a *orderAPI) CreateProviderOrder(ctx context.Context, amount float64, currency string) (*entity.ProviderOrder, error) {
	var resp providerOrderResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/api/create-razorpay-order/", providerOrderRequest{
		Amount:   amount,
		Currency: currency,
	}, &resp)
	if err != nil {
		return nil, err
	}

	orderID := resp.OrderID
	if orderID == "" {
		orderID = resp.ID
	}
	if orderID == "" {
		return nil, domainerrors.ErrPaymentProviderFailed.WithDetails("provider order response carried no order id")
	}

	order := &entity.ProviderOrder{
		OrderID:  orderID,
		Key:      resp.Key,
		Amount:   resp.Amount,
		Currency: resp.Currency,
	}
	if order.Amount == 0 {
		order.Amount = amount
	}
	if order.Currency == "" {
		order.Currency = currency
	}

	return order, nil
}

type verifyPaymentResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	DBOrderID int64  `json:"db_order_id"`
}

// VerifyPayment submits the provider signature fields for verification.
func (a *orderAPI) VerifyPayment(ctx context.Context, callback *entity.PaymentCallback) (*entity.OrderConfirmation, error) {
	var resp verifyPaymentResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/verify-payment/", callback, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		return nil, domainerrors.ErrPaymentVerificationFailed.WithDetails(resp.Message)
	}

	return &entity.OrderConfirmation{
		OrderID:   callback.ProviderOrderID,
		DBOrderID: resp.DBOrderID,
	}, nil
}
