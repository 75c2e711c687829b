// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mycomart/config"
	deliverycontext "mycomart/internal/delivery/context"
	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	"mycomart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. One state machine
// guards one checkout attempt at a time; the cart is cleared only after the
// backend confirms a placement.
type checkoutService struct {
	cartUsecase usecase.CartUsecase
	sessionRepo repository.SessionRepository
	orderAPI    repository.OrderAPI
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	cfg         *config.Config
	validate    *validator.Validate
	logger      *slog.Logger

	mu      sync.Mutex
	state   entity.CheckoutState
	pending *entity.OrderDraft
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cartUsecase usecase.CartUsecase,
	sessionRepo repository.SessionRepository,
	orderAPI repository.OrderAPI,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartUsecase: cartUsecase,
		sessionRepo: sessionRepo,
		orderAPI:    orderAPI,
		qrService:   qrService,
		publisher:   publisher,
		cfg:         cfg,
		validate:    validator.New(),
		logger:      logger,
		state:       entity.CheckoutIdle,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// State returns the current checkout state.
func (srv *checkoutService) State() entity.CheckoutState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// transition moves the machine when legal; the caller holds the mutex.
func (srv *checkoutService) transition(ctx context.Context, next entity.CheckoutState) bool {
	if !srv.state.CanTransition(next) {
		return false
	}

	srv.log(ctx).Debug("Checkout state transition",
		slog.String("from", srv.state.String()),
		slog.String("to", next.String()),
	)
	srv.state = next

	return true
}

// StartCheckout begins a checkout attempt.
func (srv *checkoutService) StartCheckout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	// 1. Validate the order form before touching the state machine
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// 2. Only one attempt runs at a time; failed attempts may retry and a
	//    finished success rolls over into a fresh attempt
	if srv.state == entity.CheckoutSuccess {
		srv.transition(ctx, entity.CheckoutIdle)
	}
	if !srv.transition(ctx, entity.CheckoutSubmitting) {
		return nil, errors.WithStack(domainerrors.ErrCheckoutInProgress)
	}

	// 3. Snapshot the cart; an empty cart ends the attempt before any
	//    backend call
	cart, err := srv.cartUsecase.Get(ctx)
	if err != nil {
		srv.state = entity.CheckoutIdle

		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if cart.IsEmpty() {
		srv.state = entity.CheckoutIdle

		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	totals := cart.Totals()
	draft := &entity.OrderDraft{
		Items:    cart.Items,
		Address:  input.Address,
		Method:   input.Method,
		Amount:   totals.TotalPrice,
		Currency: srv.cfg.Checkout.Currency,
	}

	if input.Method == entity.PaymentCOD {
		return srv.placeCODOrder(ctx, draft)
	}

	return srv.openProviderOrder(ctx, draft)
}

// placeCODOrder resolves the COD path in one step. Caller holds the mutex.
func (srv *checkoutService) placeCODOrder(ctx context.Context, draft *entity.OrderDraft) (*usecase.CheckoutResult, error) {
	confirmation, err := srv.orderAPI.CreateCODOrder(ctx, draft)
	if err != nil {
		srv.transition(ctx, entity.CheckoutFailed)
		srv.log(ctx).Error("COD order failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.finishPlacement(ctx, confirmation)

	return &usecase.CheckoutResult{
		State:        srv.state,
		Confirmation: confirmation,
	}, nil
}

// openProviderOrder starts the online path and pauses for the payment modal.
// Caller holds the mutex.
func (srv *checkoutService) openProviderOrder(ctx context.Context, draft *entity.OrderDraft) (*usecase.CheckoutResult, error) {
	provider, err := srv.orderAPI.CreateProviderOrder(ctx, draft.Amount, draft.Currency)
	if err != nil {
		srv.transition(ctx, entity.CheckoutFailed)
		srv.log(ctx).Error("Provider order failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create provider order")
	}

	srv.transition(ctx, entity.CheckoutAwaitingProvider)
	srv.pending = draft

	result := &usecase.CheckoutResult{
		State:    srv.state,
		Provider: provider,
	}

	// A QR failure only loses the scan shortcut; the modal still works.
	if srv.cfg.Checkout.PaymentQR && srv.qrService != nil {
		png, qrErr := srv.qrService.GeneratePaymentQR(provider)
		if qrErr != nil {
			srv.log(ctx).Warn("Failed to generate payment QR", slog.Any("error", qrErr))
		} else {
			result.PaymentQR = png
		}
	}

	return result, nil
}

// CompletePayment verifies the provider callback and settles the attempt.
func (srv *checkoutService) CompletePayment(ctx context.Context, callback *entity.PaymentCallback) (*usecase.CheckoutResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.state != entity.CheckoutAwaitingProvider || !srv.transition(ctx, entity.CheckoutVerifying) {
		return nil, errors.WithStack(domainerrors.ErrNoPendingPayment)
	}

	confirmation, err := srv.orderAPI.VerifyPayment(ctx, callback)
	if err != nil {
		// The cart stays intact; only a verified payment clears it.
		srv.transition(ctx, entity.CheckoutFailed)
		srv.log(ctx).Error("Payment verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify payment")
	}

	if srv.pending != nil {
		confirmation.Amount = srv.pending.Amount
		confirmation.Currency = srv.pending.Currency
	}
	srv.finishPlacement(ctx, confirmation)

	return &usecase.CheckoutResult{
		State:        srv.state,
		Confirmation: confirmation,
	}, nil
}

// finishPlacement clears the cart and broadcasts the placement. Neither step
// can undo the placed order, so failures are logged and swallowed. Caller
// holds the mutex.
func (srv *checkoutService) finishPlacement(ctx context.Context, confirmation *entity.OrderConfirmation) {
	srv.transition(ctx, entity.CheckoutSuccess)
	srv.pending = nil

	if err := srv.cartUsecase.Clear(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after placement", slog.Any("error", err))
	}

	event := &service.StorefrontEvent{
		Type:       constants.EventOrderPlaced,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    confirmation.OrderID,
		TotalPrice: confirmation.Amount,
		OccurredAt: time.Now(),
	}
	if session, err := srv.sessionRepo.Load(ctx); err == nil && session.IsAuthenticated() {
		event.UserEmail = session.User.Email
	}
	if err := srv.publisher.PublishStorefrontEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event", slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", confirmation.OrderID),
		slog.Float64("amount", confirmation.Amount),
	)
}

// CancelCheckout resets the attempt to idle.
func (srv *checkoutService) CancelCheckout(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch srv.state {
	case entity.CheckoutIdle:
		return nil
	case entity.CheckoutSubmitting, entity.CheckoutVerifying:
		// A backend call is in flight; its outcome decides the next state.
		return errors.WithStack(domainerrors.ErrCheckoutInProgress)
	default:
	}

	srv.log(ctx).Info("Checkout cancelled", slog.String("from", srv.state.String()))
	srv.state = entity.CheckoutIdle
	srv.pending = nil

	return nil
}
