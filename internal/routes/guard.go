// ABOUTME: Navigation admission over session snapshots
// ABOUTME: Protected and public variants; redirects discard the destination

package routes

import (
	"github.com/prestasi/prestasi-cli/internal/permissions"
	"github.com/prestasi/prestasi-cli/internal/session"
)

// Decision is the outcome of a guard check for one navigation attempt.
type Decision int

const (
	// Admit lets the requested view render.
	Admit Decision = iota
	// Wait means the bootstrap has not resolved; show the loading
	// placeholder and admit nothing yet.
	Wait
	// RedirectLogin sends the user to the login view. The original
	// destination is discarded, not preserved.
	RedirectLogin
	// RedirectHome sends the user to the default view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Route describes one view's admission policy.
type Route struct {
	Name string
	// Public marks views that must not be reachable while authenticated,
	// such as login.
	Public bool
	// AllowedRoles restricts a protected view to specific roles. Empty
	// means any authenticated user.
	AllowedRoles []permissions.Role
}

// Decide resolves admission for this route against a session snapshot. The
// check is pure and synchronous; it performs no I/O.
func (r Route) Decide(s session.Snapshot) Decision {
	if s.Loading {
		return Wait
	}

	if r.Public {
		if s.IsAuthenticated() {
			return RedirectHome
		}
		return Admit
	}

	if !s.IsAuthenticated() {
		return RedirectLogin
	}

	if len(r.AllowedRoles) > 0 && !roleAllowed(s.User.Role, r.AllowedRoles) {
		return RedirectHome
	}

	return Admit
}

func roleAllowed(role permissions.Role, allowed []permissions.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
