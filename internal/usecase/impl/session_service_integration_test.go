package impl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mycomart/config"
	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
	"mycomart/internal/infra/api"
	"mycomart/internal/infra/auth"
	"mycomart/internal/infra/localstore"
	mockSvc "mycomart/internal/mocks/service"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Login against a backend that accepts the credentials but answers the guest
// cart sync with a 401. The forced logout fired by that 401 re-enters the
// cart service, and the login call must still return instead of hanging on
// its own lock.
func TestSessionService_LoginReturnsWhenCartSyncIsUnauthorized(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login/":
			w.Write([]byte(`{"success": true, "user": {"username": "grower", "email": "grower@example.com"}}`))
		case "/api/token/":
			w.Write([]byte(`{"access": "access-jwt", "refresh": "refresh-jwt"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer backend.Close()

	cfg := &config.Config{Backend: config.BackendConfig{
		BaseURL: backend.URL,
		Timeout: 2 * time.Second,
	}}
	client := api.NewClient(cfg, testLogger())
	store := localstore.NewMemory(testLogger())
	guestRepo := localstore.NewGuestCartRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	ctx := context.Background()
	require.NoError(t, guestRepo.Save(ctx, &entity.Cart{Items: []*entity.CartItem{
		{ID: "a", ProductID: 1, Name: "Button Mushroom Kit", Price: 280, Quantity: 2},
	}}))

	cartUsecase := NewCartService(
		guestRepo,
		sessionRepo,
		api.NewCartAPI(client),
		api.NewCatalogAPI(client),
		mockSvc.NewMockEventPublisher(t),
		testLogger(),
	)
	sessionUsecase := NewSessionService(
		sessionRepo,
		api.NewAuthAPI(client),
		client,
		client,
		auth.NewTokenInspector(),
		cartUsecase,
		testLogger(),
	)
	t.Cleanup(func() { _ = sessionUsecase.Close() })

	type loginResult struct {
		session *entity.Session
		err     error
	}
	done := make(chan loginResult, 1)
	go func() {
		session, err := sessionUsecase.Login(ctx, &usecase.LoginInput{
			Email:    "grower@example.com",
			Password: "hunter2",
		})
		done <- loginResult{session: session, err: err}
	}()

	select {
	case result := <-done:
		require.NoError(t, result.err)
		assert.Equal(t, "grower@example.com", result.session.User.Email)
	case <-time.After(3 * time.Second):
		t.Fatal("login never returned after the cart sync came back 401")
	}

	// The forced logout finishes on its own: no persisted session, no guest
	// cart record left behind.
	assert.Eventually(t, func() bool {
		if _, err := sessionRepo.Load(ctx); !errors.Is(err, repository.ErrRecordNotFound) {
			return false
		}
		_, err := guestRepo.Load(ctx)

		return errors.Is(err, repository.ErrRecordNotFound)
	}, 2*time.Second, 20*time.Millisecond)
}
