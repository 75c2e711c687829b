package localstore

import (
	"context"

	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
)

// guestCartRepository persists the guest cart under one record key.
type guestCartRepository struct {
	store *Store
}

// NewGuestCartRepository is the constructor for guestCartRepository.
func NewGuestCartRepository(store *Store) repository.GuestCartRepository {
	return &guestCartRepository{store: store}
}

// Load returns the persisted guest cart.
func (r *guestCartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	cart := &entity.Cart{}
	if err := r.store.Read(ctx, constants.StorageKeyGuestCart, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Save overwrites the persisted guest cart.
func (r *guestCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	return r.store.Write(ctx, constants.StorageKeyGuestCart, cart)
}

// Delete removes the persisted guest cart record.
func (r *guestCartRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, constants.StorageKeyGuestCart)
}
