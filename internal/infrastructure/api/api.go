// Package api implements the remote collection client for the lumber ERP
// backend: one HTTP/JSON call per operation against a fixed base URL, with a
// single shared timeout and no retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Record is a single entity record in its wire shape: field names and value
// types exactly as the backend sends them.
type Record = map[string]any

// Resource names the two endpoint paths of one entity collection. The backend
// addresses collections with a plural path segment and individual items with a
// singular path plus an id query parameter, e.g. GET /employees but
// PUT /employee?id=5. Both paths are carried verbatim for wire compatibility.
type Resource struct {
	Name       string // registry key, e.g. "salesorders"
	Collection string // plural list/create path, e.g. "/salesorders"
	Item       string // singular update/delete path, e.g. "/salesorder"
}

// ItemURL returns the item path with the id query parameter attached.
func (r Resource) ItemURL(id int) string {
	return fmt.Sprintf("%s?id=%d", r.Item, id)
}

// Client performs CRUD calls against the ERP REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// New creates a client for the given base URL. All operations share the one
// fixed timeout.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log.Named("api"),
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every record of a collection.
func (c *Client) List(ctx context.Context, res Resource) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, res.Collection, nil)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", res.Name, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Create posts a new record and returns the backend's representation of it.
func (c *Client) Create(ctx context.Context, res Resource, draft Record) (Record, error) {
	body, err := c.do(ctx, http.MethodPost, res.Collection, draft)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update puts the full wire shape of an existing record.
func (c *Client) Update(ctx context.Context, res Resource, id int, draft Record) (Record, error) {
	body, err := c.do(ctx, http.MethodPut, res.ItemURL(id), draft)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, res Resource, id int) error {
	_, err := c.do(ctx, http.MethodDelete, res.ItemURL(id), nil)
	return err
}

// ListAs fetches a collection decoded into typed wire records.
func ListAs[T any](ctx context.Context, c *Client, res Resource) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, res.Collection, nil)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", res.Name, err)
	}
	return out, nil
}

// CreateAs posts a typed wire record.
func CreateAs[T any](ctx context.Context, c *Client, res Resource, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", res.Name, err)
	}
	var draft Record
	if err := json.Unmarshal(raw, &draft); err != nil {
		return fmt.Errorf("encoding %s: %w", res.Name, err)
	}
	_, err = c.Create(ctx, res, draft)
	return err
}

// do issues one request and returns the raw response body, or an *Error
// carrying the HTTP status and the backend-supplied message when present.
func (c *Client) do(ctx context.Context, method, path string, payload Record) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, &Error{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: method + " " + path, Status: resp.StatusCode, Err: err}
	}

	c.log.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Op:      method + " " + path,
			Status:  resp.StatusCode,
			Message: extractMessage(body),
		}
	}

	return body, nil
}

// decodeRecord decodes a single-object response body. Some backend handlers
// respond with an empty body on success; that yields an empty record, not an
// error.
func decodeRecord(body []byte) (Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Record{}, nil
	}
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

// extractMessage pulls the human-readable message out of an error response
// body. The backend wraps messages as {"error": "..."}; "message" is accepted
// as a fallback for forward compatibility.
func extractMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
