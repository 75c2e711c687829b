package impl

import (
	"context"
	"testing"

	"mycomart/config"
	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/service"
	mockRepo "mycomart/internal/mocks/repository"
	mockSvc "mycomart/internal/mocks/service"
	mockUC "mycomart/internal/mocks/usecase"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceMocks struct {
	cartUsecase *mockUC.MockCartUsecase
	sessionRepo *mockRepo.MockSessionRepository
	orderAPI    *mockRepo.MockOrderAPI
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func newCheckoutService(t *testing.T, paymentQR bool) (*checkoutServiceMocks, usecase.CheckoutUsecase) {
	m := &checkoutServiceMocks{
		cartUsecase: mockUC.NewMockCartUsecase(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		orderAPI:    mockRepo.NewMockOrderAPI(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{Currency: "INR", PaymentQR: paymentQR},
	}
	svc := NewCheckoutService(m.cartUsecase, m.sessionRepo, m.orderAPI, m.qrService, m.publisher, cfg, testLogger())

	return m, svc
}

func checkoutInput(method entity.PaymentMethod) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Address: entity.ShippingAddress{
			FullName:   "Asha Grower",
			Phone:      "9876543210",
			Line1:      "12 Mycelium Lane",
			City:       "Pune",
			State:      "MH",
			PostalCode: "411001",
		},
		Method: method,
	}
}

func filledCart() *entity.Cart {
	return &entity.Cart{Items: []*entity.CartItem{
		{ID: "a", ProductID: 1, Name: "Oyster Kit", Price: 249, Quantity: 2},
		{ID: "b", ProductID: 2, Name: "Shiitake Kit", Price: 399, Quantity: 1},
	}}
}

// expectPlacement wires the steps that follow a confirmed order.
func (m *checkoutServiceMocks) expectPlacement(ctx context.Context) {
	m.cartUsecase.EXPECT().Clear(ctx).Return(nil)
	m.sessionRepo.EXPECT().Load(ctx).Return(authedSession(), nil)
	m.publisher.EXPECT().
		PublishStorefrontEvent(ctx, mock.MatchedBy(func(e *service.StorefrontEvent) bool {
			return e.Type == constants.EventOrderPlaced && e.UserEmail == "grower@example.com"
		})).
		Return(nil)
}

func TestCheckoutService_COD_PlacesAndClearsCart(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().
		CreateCODOrder(ctx, mock.MatchedBy(func(d *entity.OrderDraft) bool {
			return d.Method == entity.PaymentCOD && d.Amount == 897.0 && d.Currency == "INR"
		})).
		Return(&entity.OrderConfirmation{OrderID: "ord-1", DBOrderID: 41, Amount: 897, Currency: "INR"}, nil)
	m.expectPlacement(ctx)

	result, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutSuccess, result.State)
	require.NotNil(t, result.Confirmation)
	assert.Equal(t, "ord-1", result.Confirmation.OrderID)
	assert.Equal(t, entity.CheckoutSuccess, svc.State())
}

func TestCheckoutService_COD_BackendRejectionKeepsCart(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateCODOrder(ctx, mock.Anything).Return(nil, errors.New("out of stock"))
	// No Clear expectation: a failed placement must not touch the cart.

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutFailed, svc.State())
}

func TestCheckoutService_StartCheckout_EmptyCart(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(&entity.Cart{}, nil)

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Equal(t, entity.CheckoutIdle, svc.State())
}

func TestCheckoutService_StartCheckout_RejectsBadForm(t *testing.T) {
	_, svc := newCheckoutService(t, false)

	_, err := svc.StartCheckout(context.Background(), &usecase.CheckoutInput{
		Method: entity.PaymentMethod("card"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, entity.CheckoutIdle, svc.State())
}

func TestCheckoutService_Online_WaitsForProviderThenVerifies(t *testing.T) {
	m, svc := newCheckoutService(t, true)
	ctx := context.Background()

	provider := &entity.ProviderOrder{OrderID: "rzp-1", Key: "key_test", Amount: 897, Currency: "INR"}

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateProviderOrder(ctx, 897.0, "INR").Return(provider, nil)
	m.qrService.EXPECT().GeneratePaymentQR(provider).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	result, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentOnline))
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAwaitingProvider, result.State)
	assert.Equal(t, provider, result.Provider)
	assert.NotEmpty(t, result.PaymentQR)
	assert.Nil(t, result.Confirmation)

	callback := &entity.PaymentCallback{
		ProviderOrderID:   "rzp-1",
		ProviderPaymentID: "pay-1",
		Signature:         "sig",
	}
	m.orderAPI.EXPECT().
		VerifyPayment(ctx, callback).
		Return(&entity.OrderConfirmation{OrderID: "rzp-1"}, nil)
	m.expectPlacement(ctx)

	result, err = svc.CompletePayment(ctx, callback)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutSuccess, result.State)
	require.NotNil(t, result.Confirmation)
	// The draft fills in what the verify response omits.
	assert.Equal(t, 897.0, result.Confirmation.Amount)
	assert.Equal(t, "INR", result.Confirmation.Currency)
}

func TestCheckoutService_Online_QRFailureStillOpensModal(t *testing.T) {
	m, svc := newCheckoutService(t, true)
	ctx := context.Background()

	provider := &entity.ProviderOrder{OrderID: "rzp-1", Amount: 897, Currency: "INR"}

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateProviderOrder(ctx, 897.0, "INR").Return(provider, nil)
	m.qrService.EXPECT().GeneratePaymentQR(provider).Return(nil, errors.New("encode failed"))

	result, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentOnline))
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAwaitingProvider, result.State)
	assert.Empty(t, result.PaymentQR)
}

func TestCheckoutService_CompletePayment_VerificationFailureKeepsCart(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateProviderOrder(ctx, 897.0, "INR").Return(&entity.ProviderOrder{OrderID: "rzp-1"}, nil)

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentOnline))
	require.NoError(t, err)

	m.orderAPI.EXPECT().
		VerifyPayment(ctx, mock.Anything).
		Return(nil, domainerrors.ErrPaymentVerificationFailed)
	// No Clear expectation: an unverified payment never empties the cart.

	_, err = svc.CompletePayment(ctx, &entity.PaymentCallback{ProviderOrderID: "rzp-1"})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)
	assert.Equal(t, entity.CheckoutFailed, svc.State())
}

func TestCheckoutService_CompletePayment_WithoutPendingPayment(t *testing.T) {
	_, svc := newCheckoutService(t, false)

	_, err := svc.CompletePayment(context.Background(), &entity.PaymentCallback{})
	assert.ErrorIs(t, err, domainerrors.ErrNoPendingPayment)
}

func TestCheckoutService_CancelCheckout_DismissedModalResetsToIdle(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateProviderOrder(ctx, 897.0, "INR").Return(&entity.ProviderOrder{OrderID: "rzp-1"}, nil)

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentOnline))
	require.NoError(t, err)
	require.Equal(t, entity.CheckoutAwaitingProvider, svc.State())

	require.NoError(t, svc.CancelCheckout(ctx))
	assert.Equal(t, entity.CheckoutIdle, svc.State())

	// Dismissing again is a no-op.
	require.NoError(t, svc.CancelCheckout(ctx))
}

func TestCheckoutService_StartCheckout_SecondAttemptWhileAwaitingProvider(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateProviderOrder(ctx, 897.0, "INR").Return(&entity.ProviderOrder{OrderID: "rzp-1"}, nil)

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentOnline))
	require.NoError(t, err)

	_, err = svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
}

func TestCheckoutService_StartCheckout_RollsOverAfterSuccess(t *testing.T) {
	m, svc := newCheckoutService(t, false)
	ctx := context.Background()

	m.cartUsecase.EXPECT().Get(ctx).Return(filledCart(), nil)
	m.orderAPI.EXPECT().CreateCODOrder(ctx, mock.Anything).Return(&entity.OrderConfirmation{OrderID: "ord-1"}, nil).Once()
	m.expectPlacement(ctx)

	_, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	require.NoError(t, err)
	require.Equal(t, entity.CheckoutSuccess, svc.State())

	m.orderAPI.EXPECT().CreateCODOrder(ctx, mock.Anything).Return(&entity.OrderConfirmation{OrderID: "ord-2"}, nil)

	result, err := svc.StartCheckout(ctx, checkoutInput(entity.PaymentCOD))
	require.NoError(t, err)
	assert.Equal(t, "ord-2", result.Confirmation.OrderID)
}
