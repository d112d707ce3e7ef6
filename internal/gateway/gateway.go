// ABOUTME: Single egress point for every call to the prediction server
// ABOUTME: Attaches the stored credential and recovers from expired sessions

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prestasi/prestasi-cli/internal/credentials"
)

const defaultTimeout = 30 * time.Second

// Gateway mediates every outbound HTTP call. No call site talks to the
// server directly: credential attachment and expiry recovery live here so
// they cannot be forgotten at any individual call site.
type Gateway struct {
	baseURL string
	client  *http.Client
	creds   credentials.Store
	logger  *slog.Logger

	// onAuthExpired is invoked after a 401 response has cleared the
	// credential store. Set once at composition time.
	onAuthExpired func()
}

// New creates a gateway for the given server base URL.
func New(baseURL string, creds credentials.Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		creds:   creds,
		logger:  logger.With("component", "gateway"),
	}
}

// SetTimeout overrides the default per-request timeout.
func (g *Gateway) SetTimeout(d time.Duration) {
	if d > 0 {
		g.client.Timeout = d
	}
}

// OnAuthExpired registers the hook fired when the server reports the
// credential is no longer valid. The hook runs after the store is cleared
// and must be idempotent; the failed call's caller still gets an error.
func (g *Gateway) OnAuthExpired(fn func()) {
	g.onAuthExpired = fn
}

// URL returns the absolute URL for a server path. Used for links the user
// opens outside this client, such as the CSV template download.
func (g *Gateway) URL(path string) string {
	return g.baseURL + path
}

// Do performs a JSON request. body is marshaled when non-nil; out is
// decoded into when non-nil and the response carries a body. All failures
// come back as *APIError.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return g.send(req, out)
}

// Upload performs a multipart/form-data POST, used for CSV uploads (model
// training, batch prediction). fields are written as plain form values and
// file is streamed under fileField with the given filename.
func (g *Gateway) Upload(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", key, err)
		}
	}

	fw, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return fmt.Errorf("copying upload data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return g.send(req, out)
}

// send runs the request and response interceptors around the actual
// dispatch. Every outbound call funnels through here.
func (g *Gateway) send(req *http.Request, out any) error {
	g.intercept(req)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("transport failure", "method", req.Method, "path", req.URL.Path, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		g.handleAuthExpired()
		return statusError(resp.StatusCode, data)
	}

	if resp.StatusCode >= 400 {
		g.logger.Debug("server rejected request",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return statusError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: genericMessage, cause: err}
		}
	}
	return nil
}

// intercept augments an outbound request before dispatch: bearer credential
// when one is stored, plus a request ID for server-side correlation.
func (g *Gateway) intercept(req *http.Request) {
	if token, ok := g.creds.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
}

// handleAuthExpired clears the stored credential and notifies the session
// layer. Both steps are idempotent, so concurrent in-flight calls that each
// hit a 401 converge on the same end state.
func (g *Gateway) handleAuthExpired() {
	if err := g.creds.Clear(); err != nil {
		g.logger.Error("clearing expired credential", "error", err)
	}
	g.logger.Info("session expired, credential cleared")
	if g.onAuthExpired != nil {
		g.onAuthExpired()
	}
}
