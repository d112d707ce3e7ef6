// ABOUTME: Dashboard summary retrieval for the landing view

package api

import (
	"context"
	"net/http"
)

// DashboardSummary returns the aggregate counts shown on the landing view.
func (c *Client) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var s DashboardSummary
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
