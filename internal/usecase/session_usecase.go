// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycomart/internal/domain/entity"
)

// LoginInput carries the credentials submitted by the login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase manages the authentication lifecycle: login, restore on
// startup, logout, and the forced logout fired by a backend 401.
type SessionUsecase interface {
	// Login runs the two-step flow (verify credentials, then mint tokens),
	// persists the session atomically, attaches the bearer token, and kicks
	// off guest cart reconciliation. A reconciliation failure does not fail
	// the login.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Restore rehydrates a persisted session at startup. An expired or
	// malformed token clears the session and leaves the user a guest.
	Restore(ctx context.Context) (*entity.Session, error)

	// Current returns the active session, or ErrNotAuthenticated for guests.
	Current(ctx context.Context) (*entity.Session, error)

	// Logout clears the bearer token and deletes the persisted session.
	// Idempotent; logging out a guest is a no-op.
	Logout(ctx context.Context) error

	// Close unsubscribes the backend 401 watch. Called on shutdown only.
	Close() error
}
