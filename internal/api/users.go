// ABOUTME: User administration operations, SUPER_ADMIN surface of the API
// ABOUTME: Form constraints from the original register view enforced client-side

package api

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterRequest creates a new account. Constraints mirror the server's
// schema so obviously bad input never leaves the client.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6,max=255"`
	Role     string `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN USER"`
}

// UpdateUserRequest edits an existing account. All fields optional; empty
// fields are omitted and left unchanged.
type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=255"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=255"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=SUPER_ADMIN ADMIN USER"`
}

// ListUsers returns all accounts.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.gw.Do(ctx, http.MethodGet, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	var u User
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/register", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser edits the account with the given ID.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid update: %w", err)
	}
	var u User
	if err := c.gw.Do(ctx, http.MethodPut, "/auth/users/"+id, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the account with the given ID.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.gw.Do(ctx, http.MethodDelete, "/auth/users/"+id, nil, nil)
}
