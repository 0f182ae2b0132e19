package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"technova/internal/domain/session"
)

// AdminChecker asks the backend whether the session token has admin rights.
// A false result is a denial; an error means the check never completed.
type AdminChecker interface {
	IsAdmin(ctx context.Context) (bool, error)
}

// AdminGuard returns middleware protecting the admin routes. The decision
// order is fixed:
//
//  1. a valid admin cookie short-circuits to allow with no network call
//  2. no session token denies with no network call
//  3. otherwise the backend is asked; only a 200 admits
//
// POST: an admitted request without a prior cookie gets one, so the next
// admin page skips the check
func AdminGuard(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(session.AdminCookie); err == nil && cookie.Value == session.AdminCookieValue {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := session.TokenFromContext(r.Context()); !ok {
				redirectToLogin(w, r)
				return
			}

			// The request context cancels the check when the client leaves.
			ok, err := checker.IsAdmin(r.Context())
			if err != nil {
				slog.Error("admin_check_failed", "path", r.URL.Path, "error", err)
				redirectToLogin(w, r)
				return
			}
			if !ok {
				slog.Info("admin_check_denied", "path", r.URL.Path)
				redirectToLogin(w, r)
				return
			}

			SetAdminCookie(w)
			next.ServeHTTP(w, r)
		})
	}
}
