// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycomart/internal/domain/entity"
)

// CheckoutInput is the order form submitted to start a checkout attempt.
type CheckoutInput struct {
	Address entity.ShippingAddress `json:"address" validate:"required"`
	Method  entity.PaymentMethod   `json:"method" validate:"required,oneof=cod online"`
}

// CheckoutResult is the outcome of a checkout step. Exactly one of
// Confirmation or Provider is set: Confirmation when the order is placed
// (COD, or online after verification), Provider when the online path is
// waiting on the payment modal.
type CheckoutResult struct {
	State        entity.CheckoutState      `json:"state"`
	Confirmation *entity.OrderConfirmation `json:"confirmation,omitempty"`
	Provider     *entity.ProviderOrder     `json:"provider,omitempty"`
	PaymentQR    []byte                    `json:"payment_qr,omitempty"` // PNG, present when QR generation is enabled.
}

// CheckoutUsecase runs the payment state machine for one checkout at a time.
//
// COD resolves in a single step. Online checkout pauses in awaiting_provider
// until the payment modal reports back: CompletePayment verifies the
// signature, CancelCheckout is the modal being dismissed. The cart is cleared
// only after a confirmed placement; every failure path keeps it intact.
type CheckoutUsecase interface {
	// State returns the current checkout state.
	State() entity.CheckoutState

	// StartCheckout begins an attempt from idle (or retries from failed).
	// A second concurrent attempt is rejected with ErrCheckoutInProgress.
	StartCheckout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)

	// CompletePayment submits the provider callback for verification.
	CompletePayment(ctx context.Context, callback *entity.PaymentCallback) (*CheckoutResult, error)

	// CancelCheckout resets the attempt to idle. Dismissing the provider
	// modal lands here, never in failed, because no charge was attempted.
	CancelCheckout(ctx context.Context) error
}
