// Package credentials persists the bearer token between process runs.
//
// Exactly one credential is stored at a time. The file-backed store keeps
// it in a single 0600 file under the user's config directory; the absence
// of that file is the canonical "logged out" state. No validation of the
// token shape happens here — the server is the authority on validity.
package credentials
