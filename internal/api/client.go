// ABOUTME: API client wrapping the gateway with typed operations
// ABOUTME: One method per server endpoint, grouped into per-concern files

package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/prestasi/prestasi-cli/internal/gateway"
)

// validate checks request structs whose constraints the original forms
// enforced before submission. Login is deliberately not validated locally.
var validate = validator.New()

// Client exposes the prediction server's REST API as typed operations.
// Every call goes through the gateway, so credential attachment and error
// normalization are uniform across operations.
type Client struct {
	gw *gateway.Gateway
}

// New creates an API client on top of a gateway.
func New(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// TemplateURL returns the download link for the CSV training template.
func (c *Client) TemplateURL() string {
	return c.gw.URL("/template/csv")
}
