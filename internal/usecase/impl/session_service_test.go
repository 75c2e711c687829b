package impl

import (
	"context"
	"testing"
	"time"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	mockRepo "mycomart/internal/mocks/repository"
	mockSvc "mycomart/internal/mocks/service"
	mockUC "mycomart/internal/mocks/usecase"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	sessionRepo *mockRepo.MockSessionRepository
	authAPI     *mockRepo.MockAuthAPI
	carrier     *mockSvc.MockAuthTokenCarrier
	watcher     *mockSvc.MockUnauthorizedWatcher
	inspector   *mockSvc.MockTokenInspector
	cartUsecase *mockUC.MockCartUsecase

	onUnauthorized func()
}

func newSessionService(t *testing.T) (*sessionServiceMocks, usecase.SessionUsecase) {
	m := &sessionServiceMocks{
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		authAPI:     mockRepo.NewMockAuthAPI(t),
		carrier:     mockSvc.NewMockAuthTokenCarrier(t),
		watcher:     mockSvc.NewMockUnauthorizedWatcher(t),
		inspector:   mockSvc.NewMockTokenInspector(t),
		cartUsecase: mockUC.NewMockCartUsecase(t),
	}

	m.watcher.EXPECT().
		OnUnauthorized(mock.AnythingOfType("func()")).
		Run(func(fn func()) { m.onUnauthorized = fn }).
		Return(func() {})

	svc := NewSessionService(m.sessionRepo, m.authAPI, m.carrier, m.watcher, m.inspector, m.cartUsecase, testLogger())

	return m, svc
}

func TestSessionService_Login_PersistsTokenAndUserTogether(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	user := &entity.User{FirstName: "Asha", Email: "grower@example.com"}

	m.authAPI.EXPECT().Login(ctx, "grower@example.com", "hunter2").Return(user, nil)
	m.authAPI.EXPECT().MintTokens(ctx, "grower@example.com", "hunter2").Return("access-jwt", "refresh-jwt", nil)
	m.sessionRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.Session) bool {
			return s.AccessToken == "access-jwt" && s.User != nil && s.User.Email == "grower@example.com"
		})).
		Return(nil)
	m.carrier.EXPECT().SetToken("access-jwt").Return()
	m.cartUsecase.EXPECT().ReconcileGuestCart(ctx).Return(nil)

	session, err := svc.Login(ctx, &usecase.LoginInput{Email: "grower@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "refresh-jwt", session.RefreshToken)
}

func TestSessionService_Login_ReconcileFailureDoesNotFailLogin(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.authAPI.EXPECT().Login(ctx, "grower@example.com", "hunter2").Return(&entity.User{Email: "grower@example.com"}, nil)
	m.authAPI.EXPECT().MintTokens(ctx, "grower@example.com", "hunter2").Return("access-jwt", "", nil)
	m.sessionRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	m.carrier.EXPECT().SetToken("access-jwt").Return()
	m.cartUsecase.EXPECT().ReconcileGuestCart(ctx).Return(errors.New("sync rejected"))

	session, err := svc.Login(ctx, &usecase.LoginInput{Email: "grower@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.authAPI.EXPECT().
		Login(ctx, "grower@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "grower@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_TokenStepFailureLeavesNoSession(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.authAPI.EXPECT().Login(ctx, "grower@example.com", "hunter2").Return(&entity.User{Email: "grower@example.com"}, nil)
	m.authAPI.EXPECT().MintTokens(ctx, "grower@example.com", "hunter2").Return("", "", errors.New("token endpoint down"))
	// No Save and no SetToken expectations: the half-finished login must
	// leave storage untouched.

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "grower@example.com", Password: "hunter2"})
	assert.Error(t, err)
}

func TestSessionService_Restore_ValidSessionAttachesToken(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	persisted := &entity.Session{
		AccessToken: "access-jwt",
		User:        &entity.User{Email: "grower@example.com"},
	}

	m.sessionRepo.EXPECT().Load(ctx).Return(persisted, nil)
	m.inspector.EXPECT().Inspect("access-jwt").Return(&service.TokenClaims{
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	m.carrier.EXPECT().SetToken("access-jwt").Return()

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
}

func TestSessionService_Restore_ExpiredTokenClearsSession(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	persisted := &entity.Session{
		AccessToken: "stale-jwt",
		User:        &entity.User{Email: "grower@example.com"},
	}

	m.sessionRepo.EXPECT().Load(ctx).Return(persisted, nil)
	m.inspector.EXPECT().Inspect("stale-jwt").Return(&service.TokenClaims{
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	m.sessionRepo.EXPECT().Delete(ctx).Return(nil)
	m.carrier.EXPECT().ClearToken().Return()

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Restore_NoPersistedSession(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.sessionRepo.EXPECT().Load(ctx).Return(nil, repository.ErrRecordNotFound)

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Current_GuestIsNotAuthenticated(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.sessionRepo.EXPECT().Load(ctx).Return(nil, repository.ErrRecordNotFound)

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSessionService_Logout_IsIdempotent(t *testing.T) {
	m, svc := newSessionService(t)
	ctx := context.Background()

	m.carrier.EXPECT().ClearToken().Return()
	m.sessionRepo.EXPECT().Delete(ctx).Return(nil)
	m.cartUsecase.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
}

func TestSessionService_BackendUnauthorizedForcesLogout(t *testing.T) {
	m, svc := newSessionService(t)
	_ = svc

	m.carrier.EXPECT().ClearToken().Return()
	m.sessionRepo.EXPECT().Delete(mock.Anything).Return(nil)
	m.cartUsecase.EXPECT().Clear(mock.Anything).Return(nil)

	require.NotNil(t, m.onUnauthorized)
	m.onUnauthorized()
}
