package localstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_ReadWriteRoundtrip(t *testing.T) {
	store := NewMemory(testLogger())
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Write(ctx, "sample", &record{Name: "oyster", Count: 3}))

	var got record
	require.NoError(t, store.Read(ctx, "sample", &got))
	assert.Equal(t, record{Name: "oyster", Count: 3}, got)
}

func TestStore_ReadMissingRecord(t *testing.T) {
	store := NewMemory(testLogger())

	var out struct{}
	err := store.Read(context.Background(), "missing", &out)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemory(testLogger())
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "sample", map[string]string{"k": "v"}))
	require.NoError(t, store.Delete(ctx, "sample"))
	require.NoError(t, store.Delete(ctx, "sample"))

	ok, err := store.Exists(ctx, "sample")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGuestCartRepository_Roundtrip(t *testing.T) {
	repo := NewGuestCartRepository(NewMemory(testLogger()))
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	cart := &entity.Cart{Items: []*entity.CartItem{
		{ID: "a", ProductID: 7, Name: "Oyster Kit", Price: 249, Quantity: 2},
	}}
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(7), got.Items[0].ProductID)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestSessionRepository_SavesTokenAndUserAsOneRecord(t *testing.T) {
	repo := NewSessionRepository(NewMemory(testLogger()))
	ctx := context.Background()

	session := &entity.Session{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
		User:         &entity.User{Email: "grower@example.com", Role: entity.RoleAdmin},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", got.AccessToken)
	require.NotNil(t, got.User)
	assert.Equal(t, "grower@example.com", got.User.Email)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
