package service

import "time"

// TokenClaims are the useful claims of a backend-issued access token. The
// backend remains the verifying authority; the storefront only reads claims
// for routing hints and expiry display.
type TokenClaims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

// TokenInspector parses access tokens client-side without verifying the
// signature (the storefront never holds the backend's signing secret).
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
