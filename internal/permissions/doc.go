// Package permissions maps user roles to capability sets.
//
// The role set is closed: SUPER_ADMIN, ADMIN, and USER. Capabilities are
// resolved through a flat lookup table rather than a privilege ordering,
// because each capability is granted per role independently — a role that
// can create models does not automatically gain any other right.
//
// Resolution is pure and total. Unknown roles (which only occur if the
// server starts sending values this client does not know about) resolve to
// an empty capability set.
package permissions
