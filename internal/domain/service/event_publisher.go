// Package service defines domain-level service contracts implemented by the
// infra layer.
package service

import (
	"context"
	"time"
)

// StorefrontEvent is broadcast when the cart or order state changes in a way
// mounted views care about (e.g. cart.synced after reconciliation so cart
// views re-fetch, order.placed after checkout).
type StorefrontEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserEmail  string    `json:"user_email,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	ItemCount  int       `json:"item_count,omitempty"`
	TotalPrice float64   `json:"total_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher broadcasts storefront events to interested consumers.
type EventPublisher interface {
	// PublishStorefrontEvent publishes an event; failures are logged by
	// callers and never fail the triggering operation.
	PublishStorefrontEvent(ctx context.Context, event *StorefrontEvent) error

	// Close releases publisher resources.
	Close() error
}
