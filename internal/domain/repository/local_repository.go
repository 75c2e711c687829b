package repository

import (
	"context"

	"mycomart/internal/domain/entity"
)

// GuestCartRepository persists the guest cart between visits. Implementations
// must write the whole cart as one record per mutation; callers re-read
// immediately before mutating so concurrent components observe each other's
// writes.
type GuestCartRepository interface {
	// Load returns the persisted guest cart, or ErrRecordNotFound when no
	// guest cart has ever been saved (or it was deleted after a sync).
	Load(ctx context.Context) (*entity.Cart, error)

	// Save overwrites the persisted guest cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the persisted record entirely. Deleting an absent
	// record is not an error.
	Delete(ctx context.Context) error
}

// SessionRepository persists the authenticated session. The token pair and
// user identity form a single record: storage can never hold a token without
// its user or vice versa.
type SessionRepository interface {
	// Load returns the persisted session, or ErrRecordNotFound when logged out.
	Load(ctx context.Context) (*entity.Session, error)

	// Save overwrites the persisted session as one atomic record.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the persisted session. Idempotent.
	Delete(ctx context.Context) error
}
