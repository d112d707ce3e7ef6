// Package session owns the client's authentication state machine.
//
// # States
//
//	Bootstrapping -> Authenticated(user) | Unauthenticated
//
// The controller starts in Bootstrapping and resolves exactly once, by
// verifying a persisted credential (or skipping the network entirely when
// none is stored). After that, Login, Logout, and the gateway-requested
// ForceExpire move between Authenticated and Unauthenticated. RefreshUser
// swaps the user value in place without touching the authentication state.
//
// # Stale results
//
// Nothing here supports mid-flight cancellation, so a verify that is still
// in flight when the user logs out would otherwise resurrect the session
// when it lands. Every transition bumps a generation counter; async
// operations capture it at issue time and discard results from a previous
// generation.
package session
