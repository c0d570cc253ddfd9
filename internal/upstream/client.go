package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// APIError carries an upstream-reported failure. Message is the upstream
// `message` field and is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

// Unauthorized reports whether the upstream rejected the bearer token.
// Callers use it to detect token expiry reactively; the gateway keeps no
// local expiry state.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Client is the single request helper every upstream call goes through.
// It owns the base URL, JSON encoding, bearer attachment and error
// decoding; endpoint methods live in the sibling files.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New builds a Client for the given API base URL (no trailing slash).
// A zero timeout leaves cancellation entirely to the caller's context.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one JSON request. token may be empty for anonymous calls;
// out may be nil when the response body is irrelevant. Non-2xx responses
// become *APIError with the upstream message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("upstream %s %s: %v", method, path, err)
		return fmt.Errorf("call upstream: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &failure) == nil && failure.Message != "" {
			apiErr.Message = failure.Message
		}
		c.logger.Printf("upstream %s %s: %d %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
