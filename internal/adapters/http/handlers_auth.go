package web

import (
	"net/http"
	"strings"

	"technova/internal/adapters/http/middleware"
	"technova/internal/application/orchestrators"
)

// safeRedirect keeps post-login redirects on this site. Anything absolute or
// scheme-relative falls back to the home page.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

// handleLoginForm renders the login page; logged-in visitors go straight to
// their account.
func handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IsLoggedIn(r) {
		http.Redirect(w, r, "/account", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "login.html", map[string]any{
		"Email":    "",
		"Error":    "",
		"Redirect": r.URL.Query().Get("redirect"),
	})
}

// handleLoginSubmit exchanges credentials for a session cookie.
func handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	token, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.AuthDeps{Auth: services.Auth})
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"Error":    err.Error(),
			"Email":    input.Email,
			"Redirect": r.FormValue("redirect"),
		})
		return
	}

	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, safeRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

// handleSignupForm renders the signup page.
func handleSignupForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IsLoggedIn(r) {
		http.Redirect(w, r, "/account", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "signup.html", map[string]any{
		"Name":  "",
		"Email": "",
		"Error": "",
	})
}

// handleSignupSubmit creates the account and moves the page to the OTP step.
func handleSignupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SignupInput{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := orchestrators.ExecuteSignup(r.Context(), input, orchestrators.AuthDeps{Auth: services.Auth}); err != nil {
		renderTemplate(w, r, "signup.html", map[string]any{
			"Error": err.Error(),
			"Name":  input.Name,
			"Email": input.Email,
		})
		return
	}

	renderTemplate(w, r, "signup.html", map[string]any{
		"OTPStep": true,
		"Email":   strings.TrimSpace(input.Email),
	})
}

// handleVerifyOTP confirms the emailed code and completes login.
func handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.VerifyOTPInput{
		Email: r.FormValue("email"),
		OTP:   r.FormValue("otp"),
	}
	token, err := orchestrators.ExecuteVerifyOTP(r.Context(), input, orchestrators.AuthDeps{Auth: services.Auth})
	if err != nil {
		renderTemplate(w, r, "signup.html", map[string]any{
			"OTPStep": true,
			"Email":   input.Email,
			"Error":   err.Error(),
		})
		return
	}

	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout drops both cookies; nothing else is stored client-side.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	middleware.ClearAdminCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
