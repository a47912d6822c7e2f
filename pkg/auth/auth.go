package auth

import "errors"

// Sentinel errors.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
)

// Identity represents an authenticated caller as seen by handlers: the
// token's subject and the role frozen into it at mint time.
type Identity struct {
	// Subject is the username the token was issued for.
	Subject string

	// Role is the role claim carried by the token. It is not re-checked
	// against the store, so a role edit takes effect only as tokens expire.
	Role string
}

// RoleAdmin is the only role the system issues by default.
const RoleAdmin = "admin"
