package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	msgLogin     = "Login failed"
	msgSignup    = "Signup failed"
	msgVerifyOTP = "OTP verification failed"
)

// tokenResponse is the success body of the auth endpoints; token may be
// absent (signup, for instance, only triggers the OTP email).
type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
// POST: a non-empty token means the caller should persist the session cookie
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.postJSON(ctx, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, msgLogin)
	if err != nil {
		return "", err
	}
	return decodeToken(body)
}

// Signup creates an account; the backend sends the verification OTP itself.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	_, err := c.postJSON(ctx, "/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, msgSignup)
	return err
}

// VerifyOTP confirms the emailed code; a token in the response completes
// login.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	body, err := c.postJSON(ctx, "/verify-otp", map[string]string{
		"email": email,
		"otp":   otp,
	}, msgVerifyOTP)
	if err != nil {
		return "", err
	}
	return decodeToken(body)
}

// IsAdmin asks the backend whether the session's token has admin rights.
// Only HTTP 200 means yes; any other status means no. A transport failure is
// returned as an error so the guard can distinguish "denied" from "unknown".
func (c *Client) IsAdmin(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/isadmin", nil, "")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

func decodeToken(body []byte) (string, error) {
	var wire tokenResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}
	return wire.Token, nil
}
