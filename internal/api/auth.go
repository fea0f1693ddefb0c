package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type loginRQ struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerRQ struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Nick     string `json:"nick"`
	IsAdmin  bool   `json:"is_admin"`
}

// Login exchanges credentials for an access token. The token is NOT
// attached to the client automatically; callers decide when to call
// SetToken (typically after persisting the session).
func (c *Client) Login(ctx context.Context, login, password string) (*TokenResponse, error) {
	payload, err := json.Marshal(loginRQ{Login: login, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: marshal request: %w", err)
	}

	u := c.baseURL + "/auth/login"
	var token TokenResponse
	if err := c.doJSON(ctx, "POST", u, "login", "application/json", bytes.NewReader(payload), &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates an account and then logs in with the same
// credentials, mirroring the backend's register-then-auto-login flow.
func (c *Client) Register(ctx context.Context, login, password, nick string) (*TokenResponse, error) {
	payload, err := json.Marshal(registerRQ{Login: login, Password: password, Nick: nick})
	if err != nil {
		return nil, fmt.Errorf("register: marshal request: %w", err)
	}

	u := c.baseURL + "/auth/register"
	if err := c.doJSON(ctx, "POST", u, "register", "application/json", bytes.NewReader(payload), nil); err != nil {
		return nil, err
	}
	return c.Login(ctx, login, password)
}

// Profile returns the identity behind the attached bearer token.
func (c *Client) Profile(ctx context.Context) (*UserProfile, error) {
	u := c.baseURL + "/users/me/profile"
	var profile UserProfile
	if err := c.doJSON(ctx, "GET", u, "get profile", "", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
