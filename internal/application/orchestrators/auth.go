package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// AuthService defines the backend auth interface used by the auth
// orchestrators.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) error
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
}

// Auth validation errors. The wording matches what users see inline on the
// forms.
var (
	ErrCredentialsRequired = errors.New("Email and password are required!")
	ErrSignupFieldsMissing = errors.New("All fields are required!")
	ErrPasswordMismatch    = errors.New("Passwords do not match!")
	ErrPasswordTooShort    = errors.New("Password must be at least 8 characters long!")
	ErrInvalidOTP          = errors.New("Invalid OTP. Please try again.")
)

// minPasswordLength is the signup password floor.
const minPasswordLength = 8

// otpLength is the number of digits in the emailed verification code.
const otpLength = 6

// LoginInput carries the login form.
type LoginInput struct {
	Email    string
	Password string
}

// AuthDeps holds dependencies for the auth orchestrators.
type AuthDeps struct {
	Auth AuthService
}

// ExecuteLogin validates credentials locally, then exchanges them for a
// session token.
// PRE: none
// POST: non-empty token on success; validation failures make no network call
func ExecuteLogin(ctx context.Context, input LoginInput, deps AuthDeps) (string, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", ErrCredentialsRequired
	}

	token, err := deps.Auth.Login(ctx, email, input.Password)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", email)
		return "", err
	}

	slog.Info("auth_event", "event", "login_success", "email", email)
	return token, nil
}

// SignupInput carries the signup form.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ExecuteSignup validates the signup form and creates the account. The
// backend emails the verification OTP itself.
// PRE: none
// POST: on success the account exists unverified and an OTP is in flight
func ExecuteSignup(ctx context.Context, input SignupInput, deps AuthDeps) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return ErrSignupFieldsMissing
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(input.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if err := deps.Auth.Signup(ctx, name, email, input.Password); err != nil {
		slog.Info("auth_event", "event", "signup_failed", "email", email)
		return err
	}

	slog.Info("auth_event", "event", "signup_success", "email", email)
	return nil
}

// VerifyOTPInput carries the OTP confirmation form.
type VerifyOTPInput struct {
	Email string
	OTP   string
}

// ExecuteVerifyOTP checks the code shape locally, then confirms it with the
// backend.
// PRE: Email identifies a signup awaiting verification
// POST: a non-empty token completes login for the new account
func ExecuteVerifyOTP(ctx context.Context, input VerifyOTPInput, deps AuthDeps) (string, error) {
	email := strings.TrimSpace(input.Email)
	otp := strings.TrimSpace(input.OTP)
	if email == "" || !validOTP(otp) {
		return "", ErrInvalidOTP
	}

	token, err := deps.Auth.VerifyOTP(ctx, email, otp)
	if err != nil {
		slog.Info("auth_event", "event", "otp_failed", "email", email)
		return "", err
	}

	slog.Info("auth_event", "event", "otp_verified", "email", email)
	return token, nil
}

// validOTP reports whether the code is exactly six digits.
func validOTP(otp string) bool {
	if len(otp) != otpLength {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
