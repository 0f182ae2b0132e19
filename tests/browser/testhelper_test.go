package browser_test

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"technova/internal/adapters/backend"
	web "technova/internal/adapters/http"
	"technova/internal/adapters/http/middleware"
)

const (
	userToken  = "test-user-token"
	adminToken = "test-admin-token"
	userEmail  = "asha@test.in"
	userPass   = "TestPass123!"
	adminEmail = "admin@test.in"
)

// stubBackend is an in-memory stand-in for the remote Technova API. It speaks
// the same JSON surface the real origin does and records writes so tests can
// assert on them.
type stubBackend struct {
	sync.Mutex
	events        []map[string]any
	registrations []map[string]any
	users         []map[string]any
	deleted       []string
	otpIssued     map[string]bool
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		events: []map[string]any{
			{
				"_id": "ev-robotics", "title": "Robotics", "department": "Centralized Events",
				"description": "Build and battle bots.", "minTeamSize": 2, "maxTeamSize": 4,
				"date": "2026-02-14T15:30:00Z", "venue": "Main Arena",
			},
			{
				"_id": "ev-quiz", "title": "Techno Quiz", "department": "CSE Department",
				"description": "Rapid-fire tech trivia.", "minTeamSize": 1, "maxTeamSize": 1,
				"date": "2026-02-15T09:00:00Z", "venue": "Seminar Hall",
			},
		},
		users: []map[string]any{
			{"_id": "u1", "name": "Asha Rao", "email": userEmail, "mobileNumber": "9876543210"},
		},
		otpIssued: map[string]bool{},
	}
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&body)
		switch {
		case body.Email == userEmail && body.Password == userPass:
			writeJSON(w, http.StatusOK, map[string]string{"token": userToken})
		case body.Email == adminEmail && body.Password == userPass:
			writeJSON(w, http.StatusOK, map[string]string{"token": adminToken})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		}
	})

	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email string }
		json.NewDecoder(r.Body).Decode(&body)
		s.Lock()
		s.otpIssued[body.Email] = true
		s.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent"})
	})

	mux.HandleFunc("POST /verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, OTP string }
		json.NewDecoder(r.Body).Decode(&body)
		s.Lock()
		issued := s.otpIssued[body.Email]
		s.Unlock()
		if !issued || body.OTP != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid OTP. Please try again."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": userToken})
	})

	mux.HandleFunc("GET /api/isadmin", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == adminToken {
			writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
			return
		}
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Not an admin"})
	})

	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()
		writeJSON(w, http.StatusOK, s.events)
	})

	mux.HandleFunc("GET /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()
		for _, e := range s.events {
			if e["_id"] == r.PathValue("id") {
				writeJSON(w, http.StatusOK, e)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Event not found"})
	})

	mux.HandleFunc("POST /api/events/add", func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(16 << 20)
		s.Lock()
		s.events = append(s.events, map[string]any{
			"_id":   fmt.Sprintf("ev-%d", len(s.events)+1),
			"title": r.FormValue("title"), "department": r.FormValue("department"),
			"description": r.FormValue("description"), "date": r.FormValue("date"),
		})
		s.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Event created"})
	})

	mux.HandleFunc("PUT /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Event updated"})
	})

	mux.HandleFunc("DELETE /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s.Lock()
		s.deleted = append(s.deleted, id)
		kept := s.events[:0]
		for _, e := range s.events {
			if e["_id"] != id {
				kept = append(kept, e)
			}
		}
		s.events = kept
		s.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
	})

	mux.HandleFunc("POST /api/registrations/register/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Login required"})
			return
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		s.Lock()
		eventID := r.PathValue("id")
		var ev map[string]any
		for _, e := range s.events {
			if e["_id"] == eventID {
				ev = e
			}
		}
		s.registrations = append(s.registrations, map[string]any{
			"_id":      fmt.Sprintf("reg-%d", len(s.registrations)+1),
			"teamName": payload["teamName"],
			"members":  payload["members"],
			"event":    ev,
		})
		s.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Registered"})
	})

	mux.HandleFunc("GET /api/registrations/myEvents", func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()
		writeJSON(w, http.StatusOK, s.registrations)
	})

	mux.HandleFunc("GET /api/registrations/all", func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()
		writeJSON(w, http.StatusOK, s.registrations)
	})

	mux.HandleFunc("GET /allSignedUpUsers", func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()
		writeJSON(w, http.StatusOK, s.users)
	})

	return mux
}

// testApp holds the running site, its stub backend, and Playwright handles.
type testApp struct {
	BaseURL string
	Backend *stubBackend
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp starts the stub backend, wires the site against it, and launches
// a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	stub := newStubBackend()
	backendSrv := httptest.NewServer(stub.handler())
	t.Cleanup(backendSrv.Close)

	client := backend.New(backendSrv.URL)
	services := &web.Services{
		Events:        client,
		Registrations: client,
		Users:         client,
		Auth:          client,
		ImageBase:     backendSrv.URL,
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	// Browser automation trips the per-IP limit at the default setting.
	web.RateLimitPerSecond = 1000

	mux := web.NewMux(services)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/events")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Backend: stub,
		Server:  srv,
		PW:      pw,
		Browser: browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login signs in through the real form with the given credentials.
func (a *testApp) login(t *testing.T, page playwright.Page, email string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(userPass); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not complete: %v", err)
	}
}

// bodyText returns the page's visible text for contains-style assertions.
func bodyText(t *testing.T, page playwright.Page) string {
	t.Helper()
	text, err := page.Locator("body").InnerText()
	if err != nil {
		t.Fatalf("failed to read page text: %v", err)
	}
	return text
}

func assertContains(t *testing.T, haystack, needle, what string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("%s: %q not found", what, needle)
	}
}
