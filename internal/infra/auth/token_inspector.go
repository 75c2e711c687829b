// Package auth reads backend-issued access tokens client-side. The backend
// signs and verifies; this package only parses claims for expiry display and
// role-based routing hints.
package auth

import (
	"time"

	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type tokenInspector struct{}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{}
}

type accessClaims struct {
	Roles []string `json:"roles"`
	Role  string   `json:"role"`
	jwt.RegisteredClaims
}

// Inspect parses the token without verifying the signature; the storefront
// never holds the backend's signing secret.
func (i *tokenInspector) Inspect(token string) (*service.TokenClaims, error) {
	var claims accessClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, domainerrors.ErrSessionExpired.WithDetails(errors.Wrap(err, "malformed access token").Error())
	}

	roles := claims.Roles
	if len(roles) == 0 && claims.Role != "" {
		roles = []string{claims.Role}
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &service.TokenClaims{
		Subject:   claims.Subject,
		Roles:     roles,
		ExpiresAt: expiresAt,
	}, nil
}
