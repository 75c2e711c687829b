// Package entity contains the core business objects of the storefront.
package entity

// PaymentMethod selects the checkout path.
type PaymentMethod string

const (
	// PaymentCOD places the order directly, cash on delivery.
	PaymentCOD PaymentMethod = "cod"
	// PaymentOnline routes through the payment provider modal plus
	// server-side signature verification.
	PaymentOnline PaymentMethod = "online"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCOD, PaymentOnline:
		return true
	default:
		return false
	}
}

// ShippingAddress is the delivery destination submitted with an order.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// OrderDraft is the snapshot assembled at checkout: line items, destination
// and payment method. The backend owns the resulting order; the storefront
// only submits the draft and reacts to the response.
type OrderDraft struct {
	Items    []*CartItem     `json:"items"`
	Address  ShippingAddress `json:"address"`
	Method   PaymentMethod   `json:"method"`
	Amount   float64         `json:"amount"`
	Currency string          `json:"currency"`
}

// OrderConfirmation carries what the confirmation view needs after a
// successful placement.
type OrderConfirmation struct {
	OrderID   string  `json:"order_id"`    // Provider or backend order reference.
	DBOrderID int64   `json:"db_order_id"` // Backend database order id.
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// ProviderOrder is the payment-provider order minted server-side for the
// online path; the client opens the provider modal with these values.
type ProviderOrder struct {
	OrderID  string  `json:"order_id"` // Provider order id to hand to the modal.
	Key      string  `json:"key"`      // Publishable provider key.
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentCallback carries the provider signature fields returned by the modal,
// submitted to the backend for verification before the order counts as placed.
type PaymentCallback struct {
	ProviderOrderID   string `json:"razorpay_order_id"`
	ProviderPaymentID string `json:"razorpay_payment_id"`
	Signature         string `json:"razorpay_signature"`
}
