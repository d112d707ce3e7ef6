// Package routes guards navigation between the client's views.
//
// A protected route admits a view only once the session bootstrap has
// resolved, the user is authenticated, and (when the route restricts
// roles) the user's role is in the allowed set. A public route mirrors
// that logic for views that must not be reachable while authenticated.
// Decisions are synchronous reads of a session snapshot; the bootstrap's
// loading flag is what orders them after the initial verify, not a lock.
package routes
