// Package guard decides whether the current session may enter a protected
// screen. The checks are pure functions over a session snapshot: they never
// talk to the backend, so a guard decision is instant and deterministic.
package guard

import (
	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/session"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectLogin sends an anonymous caller to the login screen.
	RedirectLogin
	// RedirectUnauthorized sends an authenticated caller without the required
	// role to the unauthorized screen.
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:login"
	case RedirectUnauthorized:
		return "redirect:unauthorized"
	default:
		return "unknown"
	}
}

// RequireAuthenticated admits any authenticated session.
func RequireAuthenticated(s session.Snapshot) Decision {
	if !s.IsAuthenticated {
		return RedirectLogin
	}
	return Allow
}

// RequireRole admits an authenticated session that carries the given role.
// Anonymous callers are sent to login, not to the unauthorized screen: they
// may well have the role once they sign in.
func RequireRole(s session.Snapshot, role models.RoleName) Decision {
	if !s.IsAuthenticated {
		return RedirectLogin
	}
	if !s.User.HasRole(role) {
		return RedirectUnauthorized
	}
	return Allow
}

// RequireAdmin admits only sessions holding the admin role.
func RequireAdmin(s session.Snapshot) Decision {
	return RequireRole(s, models.RoleAdmin)
}
