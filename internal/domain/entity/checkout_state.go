// Package entity contains the core business objects of the storefront.
package entity

// CheckoutState tracks the payment flow of a single checkout attempt.
//
// The legal flow is:
//
//	idle -> submitting -> awaiting_provider -> verifying -> success | failed
//
// The COD path skips the provider states (submitting -> success | failed).
// Dismissing the provider modal before completing payment moves the attempt
// back to idle, never to failed, because no charge was attempted.
type CheckoutState string

const (
	CheckoutIdle             CheckoutState = "idle"
	CheckoutSubmitting       CheckoutState = "submitting"
	CheckoutAwaitingProvider CheckoutState = "awaiting_provider"
	CheckoutVerifying        CheckoutState = "verifying"
	CheckoutSuccess          CheckoutState = "success"
	CheckoutFailed           CheckoutState = "failed"
)

// String returns the string representation of the state.
func (s CheckoutState) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is legal.
func (s CheckoutState) CanTransition(next CheckoutState) bool {
	allowed, ok := checkoutTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == next {
			return true
		}
	}

	return false
}

var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutIdle:       {CheckoutSubmitting},
	CheckoutSubmitting: {CheckoutAwaitingProvider, CheckoutSuccess, CheckoutFailed, CheckoutIdle},
	// awaiting_provider -> idle is the modal-dismissed reset.
	CheckoutAwaitingProvider: {CheckoutVerifying, CheckoutIdle},
	CheckoutVerifying:        {CheckoutSuccess, CheckoutFailed},
	CheckoutSuccess:          {CheckoutIdle},
	CheckoutFailed:           {CheckoutIdle, CheckoutSubmitting},
}
