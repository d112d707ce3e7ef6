// ABOUTME: Error normalization for server responses and transport failures
// ABOUTME: Server-provided detail wins; anything else gets the generic message

package gateway

import (
	"encoding/json"
	"net/http"
)

// genericMessage is shown when neither the server nor the transport gave a
// message worth surfacing.
const genericMessage = "request failed, please try again"

// APIError is the one error type callers see from the gateway. Message is
// always safe to show the user verbatim.
type APIError struct {
	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int
	Message    string

	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Unauthenticated reports whether the server rejected the credential.
func (e *APIError) Unauthenticated() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// transportError wraps a failure that never produced a server response.
// The transport's own message ranks above the generic fallback.
func transportError(err error) *APIError {
	msg := genericMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Message: msg, cause: err}
}

// statusError builds the error for a non-2xx response. The server's detail
// field takes priority over the generic message.
func statusError(statusCode int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Detail}
	}
	return &APIError{StatusCode: statusCode, Message: genericMessage}
}
