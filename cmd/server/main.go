package main

import (
	"log"
	"net/http"

	"technova/internal/adapters/backend"
	web "technova/internal/adapters/http"
	"technova/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// One backend client serves every service interface; the website keeps
	// no data of its own beyond the session cookies.
	client := backend.New(cfg.BackendURL)

	mux := web.NewMux(&web.Services{
		Events:        client,
		Registrations: client,
		Users:         client,
		Auth:          client,
		ImageBase:     cfg.BackendURL,
	})

	log.Printf("Technova %s starting on %s (env=%s, backend=%s)", version, cfg.Addr, cfg.Env, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
