// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the identity attached to an authenticated session. The backend owns
// the account record; the storefront holds only the snapshot returned at login.
type User struct {
	FirstName string `json:"first_name"` // Given name as reported by the backend.
	LastName  string `json:"last_name"`  // Family name as reported by the backend.
	Username  string `json:"username"`   // Backend login handle, may be empty.
	Email     string `json:"email"`      // Primary contact email, the login identifier.
	Role      Role   `json:"role"`       // Dashboard routing role: "user" or "admin".
}

// DisplayName returns a printable name, preferring the real name over the handle.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}
