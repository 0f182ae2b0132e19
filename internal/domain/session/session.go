// Package session defines the browser-cookie session model. The bearer token
// is the sole signal of "authenticated"; the admin flag is only ever a cache
// of a successful server-side admin check. Both live in cookies; the client
// owns no other state.
package session

import "context"

// Cookie names shared with the backend contract.
const (
	TokenCookie = "token"
	AdminCookie = "admin"
)

// AdminCookieValue is the only value the admin-flag cache ever holds.
const AdminCookieValue = "true"

// contextKey is an unexported type for context keys in this package.
type contextKey string

const tokenContextKey contextKey = "session-token"

// WithToken returns a context carrying the bearer token. The HTTP session
// middleware sets this from the token cookie; the backend client reads it to
// build the Authorization header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext extracts the bearer token from the context.
// POST: ok is false when no token is present or it is empty
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
