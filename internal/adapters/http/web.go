package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"technova/internal/adapters/http/middleware"
	"technova/internal/domain/event"
	"technova/internal/domain/registration"
	"technova/internal/domain/user"
)

// EventService is the backend surface for event browsing and management.
type EventService interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
	GetEvent(ctx context.Context, id string) (event.Event, error)
	CreateEvent(ctx context.Context, draft event.Draft, image *event.ImageUpload) error
	UpdateEvent(ctx context.Context, id string, draft event.Draft, image *event.ImageUpload) error
	DeleteEvent(ctx context.Context, id string) error
}

// RegistrationService is the backend surface for registrations.
type RegistrationService interface {
	Register(ctx context.Context, eventID string, payload registration.Payload) error
	MyRegistrations(ctx context.Context) ([]registration.Record, error)
	AllRegistrations(ctx context.Context) ([]registration.Record, error)
}

// UserService is the backend surface for the admin user listing.
type UserService interface {
	AllUsers(ctx context.Context) ([]user.User, error)
}

// AuthService is the backend surface for login, signup, and OTP.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) error
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
	IsAdmin(ctx context.Context) (bool, error)
}

// Services holds every backend dependency the handlers use. One
// backend.Client satisfies all of them.
type Services struct {
	Events        EventService
	Registrations RegistrationService
	Users         UserService
	Auth          AuthService

	// ImageBase is the URL event image paths resolve against, normally the
	// backend base URL.
	ImageBase string
}

// Global services instance (set by NewMux)
var services *Services

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loadCSRFKey reads the CSRF secret from TECHNOVA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("TECHNOVA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("TECHNOVA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("TECHNOVA_ENV") == "production" {
		log.Fatal("TECHNOVA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set TECHNOVA_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Services) http.Handler {
	services = s

	mux := http.NewServeMux()
	registerRoutes(mux, s.Auth)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Outer to inner: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth,
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
