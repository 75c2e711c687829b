package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthAPI_Login_NestedUserResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login/", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "grower@example.com", req.Email)

		w.Write([]byte(`{
			"success": true,
			"user": {"first_name": "Asha", "last_name": "Grower", "username": "asha", "role": "admin"}
		}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	user, err := authAPI.Login(context.Background(), "grower@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FirstName)
	assert.Equal(t, "grower@example.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuthAPI_Login_FlatLegacyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "first_name": "Asha", "username": "asha"}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	user, err := authAPI.Login(context.Background(), "grower@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FirstName)
	assert.Equal(t, "asha", user.Username)
}

func TestAuthAPI_Login_RejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "wrong password"}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	_, err := authAPI.Login(context.Background(), "grower@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthAPI_MintTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/token/", r.URL.Path)
		w.Write([]byte(`{"access": "access-jwt", "refresh": "refresh-jwt"}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	access, refresh, err := authAPI.MintTokens(context.Background(), "grower@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", access)
	assert.Equal(t, "refresh-jwt", refresh)
}

func TestAuthAPI_MintTokens_LegacySingleTokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "access-jwt"}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	access, refresh, err := authAPI.MintTokens(context.Background(), "grower@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", access)
	assert.Empty(t, refresh)
}

func TestAuthAPI_MintTokens_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL))

	_, _, err := authAPI.MintTokens(context.Background(), "grower@example.com", "hunter2")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
