// Package adminapi is the HTTP client for the admin-managed REST API that
// owns all persistent storefront data (catalog, carts, orders, profiles).
// Every call performs one request, decodes JSON and returns a typed error on
// a non-2xx status. Read calls retry transient failures; 404 is never
// retried so an empty resource is not mistaken for a flaky one.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	readRetries  = 2
	retryBackoff = 250 * time.Millisecond
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do performs a single request. token, body and out are all optional.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("admin api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getJSON is the read path: GET with automatic retry on transport errors and
// 5xx responses. 4xx (including 404) returns immediately.
func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
		lastErr = c.do(ctx, http.MethodGet, path, token, nil, out)
		if lastErr == nil {
			return nil
		}
		if apiErr, ok := AsAPIError(lastErr); ok && apiErr.Status < 500 {
			return lastErr
		}
	}
	return lastErr
}
