package middleware

import (
	"net/http"
	"net/url"

	"technova/internal/domain/session"
)

// sessionMaxAge keeps the token cookie for seven days, matching the backend
// token lifetime.
const sessionMaxAge = 7 * 24 * 60 * 60

// Auth returns middleware that copies the token cookie into the request
// context so the backend client can forward it. It does NOT block anonymous
// requests; use RequireSession or AdminGuard for that.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.TokenCookie); err == nil && cookie.Value != "" {
			r = r.WithContext(session.WithToken(r.Context(), cookie.Value))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession blocks anonymous requests, bouncing them to the login page
// with the original path preserved for the post-login redirect.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.TokenFromContext(r.Context()); !ok {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
}

// IsLoggedIn reports whether the request carries a session token.
func IsLoggedIn(r *http.Request) bool {
	_, ok := session.TokenFromContext(r.Context())
	return ok
}

// SetSessionCookie persists the backend token after login or OTP
// verification.
// POST: cookie is HttpOnly; scripts never see the token
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenCookie,
		Value:    token,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   sessionMaxAge,
	})
}

// ClearSessionCookie removes the token cookie on logout.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenCookie,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// SetAdminCookie caches a passed admin check so later admin pages skip the
// backend round trip.
func SetAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.AdminCookie,
		Value:    session.AdminCookieValue,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   sessionMaxAge,
	})
}

// ClearAdminCookie drops the cached admin flag; logout must call this
// alongside ClearSessionCookie.
func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.AdminCookie,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
