// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role represents the dashboard a logged-in user is routed to.
type Role string

const (
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates a farm administrator with access to IoT monitoring.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// OrDefault falls back to RoleUser for unknown values from the backend.
func (r Role) OrDefault() Role {
	if r.IsValid() {
		return r
	}

	return RoleUser
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for claim compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
