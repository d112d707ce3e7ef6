// ABOUTME: Prediction operations: single subject scores and batch CSV uploads
// ABOUTME: Batch uploads stream the CSV through the gateway's multipart path

package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// PredictSingle scores one student's subject grades against a model.
func (c *Client) PredictSingle(ctx context.Context, req PredictRequest) (*PredictResponse, error) {
	var resp PredictResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/predict", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PredictBatch uploads a CSV of student rows and scores every row against
// the given model.
func (c *Client) PredictBatch(ctx context.Context, modelID int, filename string, csv io.Reader) (*BatchPredictResponse, error) {
	fields := map[string]string{"model_id": strconv.Itoa(modelID)}

	var resp BatchPredictResponse
	if err := c.gw.Upload(ctx, "/predict/batch", fields, "file", filename, csv, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
