// Package backend is the single chokepoint for every call to the remote
// Technova API. It injects the session token as a raw Authorization header
// (the backend does not use a scheme prefix), defaults the content type to
// JSON, and converts non-OK responses into errors carrying the server's
// message when one is present.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"technova/internal/domain/session"
)

// Client talks to the Technova backend over HTTP/JSON.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given API origin.
// PRE: base is an absolute URL
// POST: returns a ready-to-use client with a request timeout applied
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL returns the configured API origin, used to resolve relative image
// paths.
func (c *Client) BaseURL() string {
	return c.base
}

// do performs one request against the backend. The bearer token, when present
// in ctx, is sent verbatim in the Authorization header. Content-Type defaults
// to application/json unless the caller set one (multipart uploads do).
// POST: the caller owns resp.Body
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if token, ok := session.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", token)
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("backend_request_failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	return resp, nil
}

// getJSON performs a GET and returns the response body for decoding. Non-OK
// statuses become an *APIError built with the given fallback message.
func (c *Client) getJSON(ctx context.Context, path, fallback string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFrom(resp, fallback)
	}
	return io.ReadAll(resp.Body)
}

// postJSON performs a POST with a JSON body and returns the response body.
func (c *Client) postJSON(ctx context.Context, path string, payload any, fallback string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", path, err)
	}
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFrom(resp, fallback)
	}
	return io.ReadAll(resp.Body)
}

// APIError is a server-rejected request (non-OK HTTP status). Message holds
// the backend's own message when the response carried one, otherwise the
// caller's action-specific fallback, so it is always user-presentable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 * 1024

// errorFrom builds an *APIError from a non-OK response, preferring the
// backend's {message} field over the fallback string.
func errorFrom(resp *http.Response, fallback string) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: fallback}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var wire struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wire) == nil && wire.Message != "" {
		apiErr.Message = wire.Message
	}
	slog.Warn("backend_rejected", "status", resp.StatusCode, "message", apiErr.Message)
	return apiErr
}
