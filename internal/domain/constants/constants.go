// Package constants holds shared domain-level constant values.
package constants

import "time"

// Pub/Sub provider selection.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Telemetry source selection.
const (
	TelemetrySourceSimulated = "simulated"
	TelemetrySourceBackend   = "backend"
)

// Local storage record keys. These mirror the browser storage keys of the
// original storefront, with token and user folded into one session record so
// the pair is written and cleared atomically.
const (
	StorageKeySession   = "session"
	StorageKeyGuestCart = "guest_cart"
)

// Storefront event types broadcast through the event publisher.
const (
	EventCartSynced  = "cart.synced"
	EventOrderPlaced = "order.placed"
)

// DefaultShutdownTimeout bounds graceful shutdown of delivery servers.
const DefaultShutdownTimeout = 10 * time.Second
