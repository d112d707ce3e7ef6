// ABOUTME: Shared test fixtures for the API client tests
// ABOUTME: Spins up httptest servers standing in for the prediction API

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prestasi/prestasi-cli/internal/credentials"
	"github.com/prestasi/prestasi-cli/internal/gateway"
)

// newTestClient wires a client against an in-process server and returns the
// credential store so tests can observe token state.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *credentials.Memory) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credentials.NewMemory()
	return New(gateway.New(srv.URL, creds, nil)), creds
}
