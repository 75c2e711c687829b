// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mycomart/internal/delivery/context"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	authAPI      repository.AuthAPI
	tokenCarrier service.AuthTokenCarrier
	inspector    service.TokenInspector
	cartUsecase  usecase.CartUsecase
	logger       *slog.Logger

	unsubscribe func()
}

// NewSessionService is the constructor for sessionService. It subscribes to
// the backend's global 401 watch: any unauthorized response forces a logout,
// so an expired token can never leave a half-authenticated session behind.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	authAPI repository.AuthAPI,
	tokenCarrier service.AuthTokenCarrier,
	watcher service.UnauthorizedWatcher,
	inspector service.TokenInspector,
	cartUsecase usecase.CartUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		sessionRepo:  sessionRepo,
		authAPI:      authAPI,
		tokenCarrier: tokenCarrier,
		inspector:    inspector,
		cartUsecase:  cartUsecase,
		logger:       logger,
	}

	srv.unsubscribe = watcher.OnUnauthorized(srv.forceLogout)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login runs the two-step login flow and persists the resulting session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	// 1. Verify credentials and fetch the user identity
	user, err := srv.authAPI.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Credential check failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify credentials")
	}

	// 2. Mint the token pair for the verified identity
	access, refresh, err := srv.authAPI.MintTokens(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Error("Token minting failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint tokens")
	}

	// 3. Persist token and user as one record; storage never holds one
	//    without the other
	session := &entity.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
		CreatedAt:    time.Now(),
	}
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	// 4. Attach the bearer token to all subsequent backend requests
	srv.tokenCarrier.SetToken(access)

	// 5. Push the guest cart to the backend. A failure here keeps the local
	//    record for a later retry and never fails the login itself.
	if err := srv.cartUsecase.ReconcileGuestCart(ctx); err != nil {
		srv.log(ctx).Warn("Guest cart reconciliation failed, keeping local cart",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Login succeeded", slog.String("email", input.Email))

	return session, nil
}

// Restore rehydrates a persisted session at startup.
func (srv *sessionService) Restore(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			srv.log(ctx).Debug("No persisted session, starting as guest")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	// A persisted token is only trusted while its expiry holds; anything
	// expired or unreadable demotes to guest rather than risking a 401 storm.
	claims, err := srv.inspector.Inspect(session.AccessToken)
	if err != nil || (!claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(time.Now())) {
		srv.log(ctx).Info("Persisted session expired, clearing it")
		if delErr := srv.sessionRepo.Delete(ctx); delErr != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", delErr))
		}
		srv.tokenCarrier.ClearToken()

		return nil, nil
	}

	srv.tokenCarrier.SetToken(session.AccessToken)
	srv.log(ctx).Info("Session restored", slog.String("email", session.User.Email))

	return session, nil
}

// Current returns the active session, or ErrNotAuthenticated for guests.
func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return session, nil
}

// Logout clears the bearer token and deletes the persisted session.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Logging out")

	// Clearing the token first guarantees no request goes out authenticated
	// after logout was requested, even if the delete below fails.
	srv.tokenCarrier.ClearToken()

	if err := srv.sessionRepo.Delete(ctx); err != nil {
		srv.log(ctx).Error("Failed to delete persisted session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	// With the session gone this clears the guest cart record, so nothing
	// persisted outlives the logout.
	if err := srv.cartUsecase.Clear(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear cart on logout", slog.Any("error", err))
	}

	return nil
}

// forceLogout is the global 401 handler: the backend no longer honors the
// token, so the local session is torn down unconditionally.
func (srv *sessionService) forceLogout() {
	ctx := context.Background()
	srv.logger.Warn("Backend rejected the session, forcing logout")

	if err := srv.Logout(ctx); err != nil {
		srv.logger.Error("Forced logout failed", slog.Any("error", err))
	}
}

// Close unsubscribes the 401 watch.
func (srv *sessionService) Close() error {
	if srv.unsubscribe != nil {
		srv.unsubscribe()
		srv.unsubscribe = nil
	}

	return nil
}
