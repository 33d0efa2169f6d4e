package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Client is the HTTP wrapper for the TaskBoard REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API served at baseURL. An empty baseURL
// targets paths relative to the current host and is only useful in tests.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// WithHTTPClient swaps the underlying transport.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Ping calls GET /api/ping and returns the plain-text reply.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/ping", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ping response: %w", err)
	}
	return string(raw), nil
}

// ListTasks fetches every task via GET /api/tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.call(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (Task, error) {
	var t Task
	err := c.call(ctx, http.MethodGet, taskPath(id), nil, &t)
	return t, err
}

// CreateTask creates a task via POST /api/tasks.
func (c *Client) CreateTask(ctx context.Context, title string) (Task, error) {
	var t Task
	err := c.call(ctx, http.MethodPost, "/api/tasks", titleRequest{Title: title}, &t)
	return t, err
}

// UpdateTask renames a task via PUT /api/tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id int64, title string) (Task, error) {
	var t Task
	err := c.call(ctx, http.MethodPut, taskPath(id), titleRequest{Title: title}, &t)
	return t, err
}

// DeleteTask removes a task via DELETE /api/tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return "/api/tasks/" + strconv.FormatInt(id, 10)
}

// call sends the request and decodes a JSON body into out when out is non-nil
// and the server returned content.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// do performs the round trip and converts non-2xx responses into *APIError.
// On success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		var payload errorPayload
		if len(bytes.TrimSpace(raw)) > 0 {
			_ = json.Unmarshal(raw, &payload)
		}
		return nil, newAPIError(resp.StatusCode, payload)
	}

	return resp, nil
}
