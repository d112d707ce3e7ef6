// ABOUTME: Tests for user administration operations
// ABOUTME: Covers client-side form validation and server error passthrough

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ValidatesBeforeDispatch(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"short username", RegisterRequest{Username: "ab", Name: "A", Password: "secret1", Role: "USER"}},
		{"short password", RegisterRequest{Username: "alice", Name: "A", Password: "12345", Role: "USER"}},
		{"missing name", RegisterRequest{Username: "alice", Password: "secret1", Role: "USER"}},
		{"bad role", RegisterRequest{Username: "alice", Name: "A", Password: "secret1", Role: "OWNER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Register(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
	assert.False(t, called, "invalid input must never reach the server")
}

func TestRegister_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(User{ID: "9", Username: req.Username, Name: req.Name})
	}))

	u, err := client.Register(context.Background(), RegisterRequest{
		Username: "citra", Name: "Citra", Password: "secret1", Role: "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, "citra", u.Username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username sudah digunakan"})
	}))

	_, err := client.Register(context.Background(), RegisterRequest{
		Username: "citra", Name: "Citra", Password: "secret1", Role: "USER",
	})
	require.Error(t, err)
	assert.Equal(t, "Username sudah digunakan", err.Error())
}

func TestUpdateUser_AllFieldsOptional(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/users/42", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"role": "ADMIN"}, body)

		json.NewEncoder(w).Encode(User{ID: "42", Role: "ADMIN"})
	}))

	u, err := client.UpdateUser(context.Background(), "42", UpdateUserRequest{Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "42", u.ID)
}

func TestDeleteUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/auth/users/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteUser(context.Background(), "42"))
}

func TestListUsers(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/users", r.URL.Path)
		json.NewEncoder(w).Encode([]User{{ID: "1"}, {ID: "2"}})
	}))

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
