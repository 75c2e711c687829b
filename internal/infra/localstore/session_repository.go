package localstore

import (
	"context"

	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
)

// sessionRepository persists the session as one record so the token pair and
// user identity appear and disappear together.
type sessionRepository struct {
	store *Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Load returns the persisted session.
func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	session := &entity.Session{}
	if err := r.store.Read(ctx, constants.StorageKeySession, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Save overwrites the persisted session atomically.
func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return r.store.Write(ctx, constants.StorageKeySession, session)
}

// Delete removes the persisted session record. Idempotent.
func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, constants.StorageKeySession)
}
