// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycomart/internal/domain/entity"
)

// CartUsecase is the single cart surface the views talk to. It routes each
// operation to the guest cart (local persistence) or the remote cart (backend
// API) based on the current authentication state, so callers never branch on
// auth themselves.
type CartUsecase interface {
	// Get returns the current cart. Guests read the persisted local cart;
	// authenticated users fetch the backend's authoritative snapshot.
	Get(ctx context.Context) (*entity.Cart, error)

	// AddItem adds a product to the cart. For guests the product snapshot is
	// taken from the catalog at add time.
	AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)

	// UpdateQuantity overwrites one line's quantity. Quantities below 1
	// leave the cart unchanged.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)

	// RemoveItem deletes one line from the cart.
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Totals derives item count and total price from the current cart.
	Totals(ctx context.Context) (entity.CartTotals, error)

	// ReconcileGuestCart pushes the guest cart to the backend in one bulk
	// sync after login. The local record is deleted only on confirmed
	// success; any failure keeps it intact for a later retry.
	ReconcileGuestCart(ctx context.Context) error
}
