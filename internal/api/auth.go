// ABOUTME: Authentication operations: login, verify, and own-profile access
// ABOUTME: Login credentials are passed through unvalidated; the server decides

package api

import (
	"context"
	"net/http"
)

// LoginRequest carries the credentials for POST /auth/login. Neither field
// is validated locally — the server is authoritative.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateMeRequest carries the self-service profile edit for PUT /auth/me.
// Empty fields are omitted and left unchanged server-side.
type UpdateMeRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

// Login exchanges credentials for a bearer token and the account it belongs
// to. The token is not stored here; the session layer owns that decision.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	var resp TokenResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify asks the server whether the attached credential is still valid and
// returns the account it belongs to.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	var u User
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/verify", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.gw.Do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe edits the authenticated account's own profile.
func (c *Client) UpdateMe(ctx context.Context, req UpdateMeRequest) (*User, error) {
	var u User
	if err := c.gw.Do(ctx, http.MethodPut, "/auth/me", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
