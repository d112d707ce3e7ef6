// ABOUTME: Tests for credential attachment and response normalization
// ABOUTME: Uses httptest servers standing in for the prediction API

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestasi/prestasi-cli/internal/credentials"
)

func TestDo_AttachesBearerWhenStored(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := credentials.NewMemory()
	require.NoError(t, creds.Set("tok-123"))

	g := New(srv.URL, creds, nil)
	require.NoError(t, g.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDo_NoHeaderWithoutCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := New(srv.URL, credentials.NewMemory(), nil)
	require.NoError(t, g.Do(context.Background(), http.MethodGet, "/health", nil, nil))

	assert.Empty(t, gotAuth)
}

func TestDo_UnauthorizedClearsStoreAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token tidak valid atau sudah kadaluarsa"}`))
	}))
	defer srv.Close()

	creds := credentials.NewMemory()
	require.NoError(t, creds.Set("stale"))

	var expired atomic.Int32
	g := New(srv.URL, creds, nil)
	g.OnAuthExpired(func() { expired.Add(1) })

	err := g.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.Unauthenticated())
	assert.Equal(t, "Token tidak valid atau sudah kadaluarsa", apiErr.Message)

	_, stored := creds.Get()
	assert.False(t, stored, "credential must be cleared after 401")
	assert.Equal(t, int32(1), expired.Load())

	// A second 401 is a no-op on an already-empty store; no error, same state.
	err = g.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)
	require.Error(t, err)
	_, stored = creds.Get()
	assert.False(t, stored)
	assert.Equal(t, int32(2), expired.Load())
}

func TestDo_ErrorMessagePriority(t *testing.T) {
	t.Run("detail field wins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Username sudah digunakan"}`))
		}))
		defer srv.Close()

		g := New(srv.URL, credentials.NewMemory(), nil)
		err := g.Do(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)
		require.Error(t, err)
		assert.Equal(t, "Username sudah digunakan", err.Error())
	})

	t.Run("generic fallback without detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}))
		defer srv.Close()

		g := New(srv.URL, credentials.NewMemory(), nil)
		err := g.Do(context.Background(), http.MethodGet, "/models", nil, nil)
		require.Error(t, err)
		assert.Equal(t, genericMessage, err.Error())
	})

	t.Run("transport failure surfaces transport message", func(t *testing.T) {
		// Closed server: connection refused.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := New(srv.URL, credentials.NewMemory(), nil)
		err := g.Do(context.Background(), http.MethodGet, "/models", nil, nil)
		require.Error(t, err)

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Zero(t, apiErr.StatusCode)
		assert.NotEqual(t, genericMessage, apiErr.Message)
		assert.NotEmpty(t, apiErr.Message)
	})
}

func TestDo_DecodesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"prediction":"Berprestasi"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, credentials.NewMemory(), nil)

	var out struct {
		Prediction string `json:"prediction"`
	}
	err := g.Do(context.Background(), http.MethodPost, "/predict", map[string]int{"model_id": 1}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Berprestasi", out.Prediction)
}

func TestUpload_MultipartFieldsAndFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "status", r.FormValue("target_column"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "nilai.csv", header.Filename)

		w.Write([]byte(`{"id":7,"name":"model-7"}`))
	}))
	defer srv.Close()

	creds := credentials.NewMemory()
	require.NoError(t, creds.Set("tok"))
	g := New(srv.URL, creds, nil)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := g.Upload(context.Background(), "/models/train",
		map[string]string{"target_column": "status"},
		"file", "nilai.csv", strings.NewReader("pai,matematika\n80,90\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
}

func TestURL(t *testing.T) {
	g := New("http://localhost:8000/api/v1/", credentials.NewMemory(), nil)
	assert.Equal(t, "http://localhost:8000/api/v1/template/csv", g.URL("/template/csv"))
}
