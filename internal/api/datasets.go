// ABOUTME: Dataset catalog retrieval, read-only from this client

package api

import (
	"context"
	"net/http"
)

// ListDatasets returns the uploaded training datasets.
func (c *Client) ListDatasets(ctx context.Context) ([]DatasetMeta, error) {
	var datasets []DatasetMeta
	if err := c.gw.Do(ctx, http.MethodGet, "/datasets", nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}
