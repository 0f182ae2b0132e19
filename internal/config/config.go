package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	// BackendURL is the origin of the remote Technova API. All event,
	// registration, and auth data lives behind it; this app keeps none.
	BackendURL string

	// Addr is the HTTP listen address for the website.
	Addr string

	// Env is "production" or "development".
	Env string
}

// DefaultBackendURL is the API origin used when TECHNOVA_BACKEND_URL is unset.
// The same origin is used in development and production builds.
const DefaultBackendURL = "https://technova.indiesoft.cloud"

// FromEnv loads configuration from environment variables, reading an optional
// .env file first.
// PRE: none
// POST: returns a Config with defaults applied, or an error for invalid values
func FromEnv() (Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var c Config

	c.BackendURL = strings.TrimRight(strings.TrimSpace(os.Getenv("TECHNOVA_BACKEND_URL")), "/")
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c, fmt.Errorf("TECHNOVA_BACKEND_URL must be an absolute URL, got %q", c.BackendURL)
	}

	c.Addr = strings.TrimSpace(os.Getenv("TECHNOVA_ADDR"))
	if c.Addr == "" {
		c.Addr = ":8080"
	}

	c.Env = strings.TrimSpace(os.Getenv("TECHNOVA_ENV"))
	if c.Env == "" {
		c.Env = "development"
	}

	return c, nil
}
