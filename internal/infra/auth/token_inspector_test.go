package auth

import (
	"testing"
	"time"

	domainerrors "mycomart/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_Inspect(t *testing.T) {
	inspector := NewTokenInspector()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := mintToken(t, jwt.MapClaims{
		"sub":   "grower@example.com",
		"roles": []string{"user", "admin"},
		"exp":   expiry.Unix(),
	})

	claims, err := inspector.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "grower@example.com", claims.Subject)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.True(t, claims.ExpiresAt.Equal(expiry))
}

func TestTokenInspector_SingularRoleClaim(t *testing.T) {
	inspector := NewTokenInspector()

	token := mintToken(t, jwt.MapClaims{
		"sub":  "grower@example.com",
		"role": "admin",
	})

	claims, err := inspector.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestTokenInspector_MalformedToken(t *testing.T) {
	inspector := NewTokenInspector()

	_, err := inspector.Inspect("not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}
