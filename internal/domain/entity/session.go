// Package entity contains the core business objects of the storefront.
package entity

import "time"

// Session represents the current authentication state: the token pair plus the
// user identity it was minted for. Token and user are persisted as one record
// so storage can never hold one without the other.
type Session struct {
	AccessToken  string    `json:"access_token"`            // Opaque bearer token attached to backend requests.
	RefreshToken string    `json:"refresh_token,omitempty"` // Long-lived token for re-minting, optional.
	User         *User     `json:"user"`                    // Identity snapshot returned by the login endpoint.
	CreatedAt    time.Time `json:"created_at"`              // When this session was established.
}

// IsAuthenticated reports whether the session carries both a token and a user.
// This is the single derived flag the rest of the storefront trusts.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.AccessToken != "" && s.User != nil
}
