package api

import (
	"context"
	"net/http"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
)

// authAPI implements repository.AuthAPI against the backend's two-step flow:
// /api/login/ verifies credentials and returns the identity, /api/token/
// mints the JWT pair.
type authAPI struct {
	client *Client
}

// NewAuthAPI is the constructor for authAPI.
func NewAuthAPI(client *Client) repository.AuthAPI {
	return &authAPI{client: client}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse tolerates both response generations: user fields nested under
// "user" or flattened at the top level.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	User *struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
	} `json:"user"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// Login verifies credentials and returns the user identity.
func (a *authAPI) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var resp loginResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/api/login/", credentialsRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails(resp.Message)
	}

	user := &entity.User{
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Username:  resp.Username,
		Email:     email,
		Role:      entity.Role(resp.Role).OrDefault(),
	}
	if resp.User != nil {
		if resp.User.FirstName != "" {
			user.FirstName = resp.User.FirstName
		}
		if resp.User.LastName != "" {
			user.LastName = resp.User.LastName
		}
		if resp.User.Username != "" {
			user.Username = resp.User.Username
		}
		if resp.User.Email != "" {
			user.Email = resp.User.Email
		}
		if resp.User.Role != "" {
			user.Role = entity.Role(resp.User.Role).OrDefault()
		}
	}

	return user, nil
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`

	// Older backend builds answered with a single "token" field.
	Token string `json:"token"`
}

// MintTokens exchanges verified credentials for a JWT pair.
func (a *authAPI) MintTokens(ctx context.Context, email, password string) (string, string, error) {
	var resp tokenResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/api/token/", credentialsRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", "", err
	}

	access := resp.Access
	if access == "" {
		access = resp.Token
	}
	if access == "" {
		return "", "", domainerrors.ErrInvalidCredentials.WithDetails("token endpoint returned no access token")
	}

	return access, resp.Refresh, nil
}
