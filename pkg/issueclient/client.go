package issueclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP wrapper for the issue service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the service at baseURL (e.g. http://localhost:5000).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every issue via GET /api/issues, newest first.
func (c *Client) List(ctx context.Context) ([]Issue, error) {
	var issues []Issue
	if err := c.do(ctx, http.MethodGet, c.issuesURL(""), nil, &issues); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	if issues == nil {
		issues = []Issue{}
	}
	return issues, nil
}

// Get fetches a single issue by its ID.
func (c *Client) Get(ctx context.Context, id string) (Issue, error) {
	var i Issue
	if err := c.do(ctx, http.MethodGet, c.issuesURL(id), nil, &i); err != nil {
		return Issue{}, fmt.Errorf("get issue %s: %w", id, err)
	}
	return i, nil
}

// Create creates an issue via POST /api/issues.
func (c *Client) Create(ctx context.Context, req CreateRequest) (Issue, error) {
	var i Issue
	if err := c.do(ctx, http.MethodPost, c.issuesURL(""), req, &i); err != nil {
		return Issue{}, fmt.Errorf("create issue: %w", err)
	}
	return i, nil
}

// Update applies a partial update via PUT /api/issues/:id.
func (c *Client) Update(ctx context.Context, id string, patch Patch) (Issue, error) {
	var i Issue
	if err := c.do(ctx, http.MethodPut, c.issuesURL(id), patch, &i); err != nil {
		return Issue{}, fmt.Errorf("update issue %s: %w", id, err)
	}
	return i, nil
}

// Delete removes an issue via DELETE /api/issues/:id.
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp deleteResponse
	if err := c.do(ctx, http.MethodDelete, c.issuesURL(id), nil, &resp); err != nil {
		return fmt.Errorf("delete issue %s: %w", id, err)
	}
	return nil
}

// Close marks an issue Completed via PATCH /api/issues/:id/close.
func (c *Client) Close(ctx context.Context, id string) (Issue, error) {
	var i Issue
	if err := c.do(ctx, http.MethodPatch, c.issuesURL(id)+"/close", nil, &i); err != nil {
		return Issue{}, fmt.Errorf("close issue %s: %w", id, err)
	}
	return i, nil
}

func (c *Client) issuesURL(id string) string {
	if id == "" {
		return c.baseURL + "/api/issues"
	}
	return c.baseURL + "/api/issues/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call issue API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return strings.TrimSpace(string(raw))
}
