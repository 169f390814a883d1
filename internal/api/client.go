// Package api implements the authenticated client for the marketplace REST
// backend: request construction, bearer token attachment, unauthorized
// response interception, and the typed user/booking/equipment operations.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"agrirent/internal/session"
)

// Navigator performs the forced navigation to the login view. The gateway
// expresses it as an HTTP redirect, the CLI as a re-login notice; tests can
// record invocations.
type Navigator interface {
	LoginRedirect()
}

// NavigatorFunc adapts a plain function to the Navigator interface
type NavigatorFunc func()

// LoginRedirect invokes the function
func (f NavigatorFunc) LoginRedirect() { f() }

// NopNavigator is a Navigator without a navigation side effect, for embeddings
// that handle ErrUnauthorized themselves.
var NopNavigator = NavigatorFunc(func() {})

// Client talks to the marketplace backend. It is the single point of outbound
// request construction: the bearer token is attached in exactly one place and
// 401 responses are handled in exactly one place.
type Client struct {
	baseURL    string
	store      session.Store
	nav        Navigator
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a backend client. An empty base URL is logged as an error but
// does not fail construction; requests will fail at the network layer.
func New(baseURL string, store session.Store, nav Navigator, opts ...Option) *Client {
	if baseURL == "" {
		slog.Error("backend base URL is not set; requests will fail")
	}
	if nav == nil {
		nav = NopNavigator
	}

	c := &Client{
		baseURL: baseURL,
		store:   store,
		nav:     nav,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the session store the client was constructed with
func (c *Client) Store() session.Store {
	return c.store
}

// newRequest builds a request against the backend API root and attaches the
// bearer token when one is present. No token means the request proceeds
// unauthenticated.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.store.Get(ctx)
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do sends the request and decodes a 2xx response body into out (when out is
// non-nil). A 401 clears the session, triggers the login redirect, and still
// surfaces an error so the caller's handling runs. Other error statuses pass
// through as *APIError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.store.Clear(req.Context()); err != nil {
			slog.Error("failed to clear session after 401", "error", err)
		}
		c.nav.LoginRedirect()
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// getJSON issues a GET and decodes the response into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON body and decodes the response into out
func (c *Client) sendJSON(ctx context.Context, method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// delete issues a DELETE and discards any response body
func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// decodeErrorMessage extracts the server's error text from an error response
// body, falling back to a generic message.
func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "request failed"
}
