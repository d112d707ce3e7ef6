// Package gateway is the sole channel for calls to the prediction server.
//
// # Interceptors
//
// Before dispatch every request gets the stored bearer credential (when one
// exists) and an X-Request-ID header. After dispatch every response passes
// through normalization:
//
//   - 401 responses clear the credential store and fire the OnAuthExpired
//     hook, then fail the call. Recovery is side-effecting, not a retry.
//   - Other failures become a single *APIError whose message is chosen by
//     priority: the server's {detail} field, the transport error, then a
//     generic fallback. Callers never see raw transport errors.
//   - Successful responses are decoded and passed through unchanged.
//
// Centralizing this in one place is a correctness property: no call site
// can forget to attach the credential or handle expiry differently.
package gateway
