// ABOUTME: Model catalog operations: list, inspect, train, rename, delete
// ABOUTME: Training uploads a CSV whose status column is the training target

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// targetColumn is the label column the server trains against.
const targetColumn = "status"

// RenameModelRequest is the body for PUT /models/{id}.
type RenameModelRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ListModels returns all trained models.
func (c *Client) ListModels(ctx context.Context) ([]ModelMeta, error) {
	var models []ModelMeta
	if err := c.gw.Do(ctx, http.MethodGet, "/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// GetModel returns one model's metadata.
func (c *Client) GetModel(ctx context.Context, id int) (*ModelMeta, error) {
	var m ModelMeta
	if err := c.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/models/%d", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// TrainModel uploads a training CSV and returns the resulting model. name
// is optional; the server picks one when empty.
func (c *Client) TrainModel(ctx context.Context, name, filename string, csv io.Reader) (*ModelMeta, error) {
	fields := map[string]string{"target_column": targetColumn}
	if name != "" {
		fields["name"] = name
	}

	var m ModelMeta
	if err := c.gw.Upload(ctx, "/models/train", fields, "file", filename, csv, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RenameModel changes a model's display name.
func (c *Client) RenameModel(ctx context.Context, id int, name string) (*ModelMeta, error) {
	req := RenameModelRequest{Name: name}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid model name: %w", err)
	}
	var m ModelMeta
	if err := c.gw.Do(ctx, http.MethodPut, fmt.Sprintf("/models/%d", id), req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteModel removes a trained model.
func (c *Client) DeleteModel(ctx context.Context, id int) error {
	return c.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/models/%d", id), nil, nil)
}
