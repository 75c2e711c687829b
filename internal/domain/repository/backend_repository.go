package repository

import (
	"context"

	"mycomart/internal/domain/entity"
)

// SyncItem is one guest cart line flattened for the bulk sync endpoint.
type SyncItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AuthAPI is the backend's two-step authentication surface.
type AuthAPI interface {
	// Login verifies credentials and returns the user identity.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// MintTokens exchanges verified credentials for a JWT pair.
	MintTokens(ctx context.Context, email, password string) (access, refresh string, err error)
}

// CartAPI is the authenticated user's server-side cart. Every mutation returns
// the backend's authoritative cart snapshot, which callers adopt wholesale;
// the client never merges optimistically.
type CartAPI interface {
	Fetch(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context) (*entity.Cart, error)

	// SyncGuestCart submits the whole guest cart in one bulk request. A
	// single call keeps partial successes from interleaving with concurrent
	// cart activity.
	SyncGuestCart(ctx context.Context, items []SyncItem) error
}

// CatalogAPI serves the read-only product catalog.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
}

// OrderAPI covers order creation and payment verification.
type OrderAPI interface {
	// CreateCODOrder places a cash-on-delivery order directly.
	CreateCODOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.OrderConfirmation, error)

	// CreateProviderOrder mints a payment-provider order server-side for the
	// online path.
	CreateProviderOrder(ctx context.Context, amount float64, currency string) (*entity.ProviderOrder, error)

	// VerifyPayment submits the provider signature fields; only a verified
	// payment counts as a placed order.
	VerifyPayment(ctx context.Context, callback *entity.PaymentCallback) (*entity.OrderConfirmation, error)
}

// RoomAPI manages grow rooms and their live sensor readings.
type RoomAPI interface {
	ListRooms(ctx context.Context) ([]*entity.Room, error)
	GetRoom(ctx context.Context, roomID int64) (*entity.Room, error)
	CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID int64) error
	GetSensors(ctx context.Context, roomID int64) (*entity.SensorSnapshot, error)
}
