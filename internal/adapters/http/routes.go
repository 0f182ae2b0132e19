package web

import (
	"net/http"

	"technova/internal/adapters/http/middleware"
)

// registerRoutes wires every page and form action onto the mux. Method
// patterns keep the dispatch table flat; auth layering happens per route so
// public pages stay anonymous.
func registerRoutes(mux *http.ServeMux, checker middleware.AdminChecker) {
	guard := middleware.AdminGuard(checker)

	// Marketing
	mux.HandleFunc("GET /{$}", handleHome)
	mux.Handle("GET /static/", handleStatic())

	// Event directory
	mux.HandleFunc("GET /events", handleEvents)
	mux.HandleFunc("GET /events/{id}", handleEventDetail)

	// Registration workflow (login required)
	mux.Handle("GET /events/{id}/register", middleware.RequireSession(http.HandlerFunc(handleRegisterForm)))
	mux.Handle("POST /events/{id}/register", middleware.RequireSession(http.HandlerFunc(handleRegisterSubmit)))

	// Auth
	mux.HandleFunc("GET /login", handleLoginForm)
	mux.HandleFunc("POST /login", handleLoginSubmit)
	mux.HandleFunc("GET /signup", handleSignupForm)
	mux.HandleFunc("POST /signup", handleSignupSubmit)
	mux.HandleFunc("POST /verify-otp", handleVerifyOTP)
	mux.HandleFunc("POST /logout", handleLogout)

	// Account dashboard (login required)
	mux.Handle("GET /account", middleware.RequireSession(http.HandlerFunc(handleAccount)))
	mux.Handle("GET /account/ticket/{id}", middleware.RequireSession(http.HandlerFunc(handleTicket)))

	// Admin dashboard (guard verifies admin rights with the backend)
	mux.Handle("GET /admin", guard(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("GET /admin/events/new", guard(http.HandlerFunc(handleAdminEventNew)))
	mux.Handle("GET /admin/events/{id}/edit", guard(http.HandlerFunc(handleAdminEventEdit)))
	mux.Handle("POST /admin/events/save", guard(http.HandlerFunc(handleAdminEventSave)))
	mux.Handle("GET /admin/events/{id}/delete", guard(http.HandlerFunc(handleAdminEventDeleteConfirm)))
	mux.Handle("POST /admin/events/{id}/delete", guard(http.HandlerFunc(handleAdminEventDelete)))
}
