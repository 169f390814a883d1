package api

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates a new user profile. No session is required.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	var profile Profile
	if err := c.sendJSON(ctx, http.MethodPost, "/users/register", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Login exchanges credentials for a bearer token. On success the token is
// stored in the session store, so subsequent requests are authorized.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/users/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	if err := c.store.Set(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	return &resp, nil
}

// Logout destroys the local session and navigates to the login view. The
// backend holds no session state to invalidate.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	c.nav.LoginRedirect()
	return nil
}

// Profile fetches the current user's profile. Requires a valid session;
// the backend enforces authorization.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, "/users/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
