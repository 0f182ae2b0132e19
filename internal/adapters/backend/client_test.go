package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"technova/internal/adapters/backend"
	"technova/internal/domain/event"
	"technova/internal/domain/registration"
	"technova/internal/domain/session"
)

// capture records the last request seen by a stub backend.
type capture struct {
	Method      string
	Path        string
	Auth        string
	ContentType string
	RequestID   string
	Form        map[string]string
	HasImage    bool
}

func stubServer(t *testing.T, status int, body string, captured *capture) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.Method = r.Method
			captured.Path = r.URL.Path
			captured.Auth = r.Header.Get("Authorization")
			captured.ContentType = r.Header.Get("Content-Type")
			captured.RequestID = r.Header.Get("X-Request-ID")
			if err := r.ParseMultipartForm(1 << 20); err == nil {
				captured.Form = make(map[string]string)
				for name, values := range r.MultipartForm.Value {
					captured.Form[name] = values[0]
				}
				_, _, ferr := r.FormFile("image")
				captured.HasImage = ferr == nil
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// TestAuthorizationHeader tests that the session token is sent verbatim, with
// no scheme prefix, and that JSON is the default content type.
func TestAuthorizationHeader(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusOK, `[]`, &got)
	c := backend.New(srv.URL)

	ctx := session.WithToken(context.Background(), "tok-123")
	if _, err := c.ListEvents(ctx); err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if got.Auth != "tok-123" {
		t.Errorf("Authorization = %q, want raw token %q", got.Auth, "tok-123")
	}
	if got.ContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got.ContentType)
	}
	if got.RequestID == "" {
		t.Error("X-Request-ID should be set")
	}
}

// TestNoTokenNoHeader tests that anonymous calls omit the header entirely.
func TestNoTokenNoHeader(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusOK, `[]`, &got)
	c := backend.New(srv.URL)

	if _, err := c.ListEvents(context.Background()); err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if got.Auth != "" {
		t.Errorf("Authorization = %q, want unset", got.Auth)
	}
}

// TestListEventsEnvelope tests envelope and array payloads end to end.
func TestListEventsEnvelope(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"events":[{"_id":"a1","title":"Robotics","minTeamSize":2,"maxTeaSize":4}]}`, nil)
	c := backend.New(srv.URL)

	events, err := c.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].ID != "a1" || events[0].MaxTeamSize != 4 {
		t.Errorf("event = %+v", events[0])
	}
}

// TestServerMessageSurfaced tests that the backend's {message} wins over the
// fallback and that the fallback covers a bodyless rejection.
func TestServerMessageSurfaced(t *testing.T) {
	t.Run("message present", func(t *testing.T) {
		srv := stubServer(t, http.StatusConflict, `{"message":"Already registered for this event"}`, nil)
		c := backend.New(srv.URL)

		err := c.Register(context.Background(), "9", registration.Payload{})
		if err == nil {
			t.Fatal("Register() should fail on 409")
		}
		if err.Error() != "Already registered for this event" {
			t.Errorf("error = %q, want server message", err.Error())
		}
	})

	t.Run("fallback used", func(t *testing.T) {
		srv := stubServer(t, http.StatusInternalServerError, `oops`, nil)
		c := backend.New(srv.URL)

		err := c.Register(context.Background(), "9", registration.Payload{})
		if err == nil {
			t.Fatal("Register() should fail on 500")
		}
		if err.Error() != "Registration failed" {
			t.Errorf("error = %q, want generic fallback", err.Error())
		}
	})
}

// TestCreateEventMultipart tests the multipart encoding: all fields, the
// RFC3339 date conversion, and the optional image part.
func TestCreateEventMultipart(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusCreated, `{}`, &got)
	c := backend.New(srv.URL)

	draft := event.Draft{
		Title:       "Web Master",
		Description: "Build a site.",
		Department:  "CSE Department",
		MinTeamSize: 1,
		MaxTeamSize: 4,
		Date:        time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
		Venue:       "Lab 2",
		Rules:       "No frameworks.",
	}
	img := &event.ImageUpload{Filename: "poster.png", Data: []byte{0x89, 0x50}}

	if err := c.CreateEvent(context.Background(), draft, img); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if got.Method != http.MethodPost || got.Path != "/api/events/add" {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
	if got.Form["date"] != "2026-02-14T10:30:00Z" {
		t.Errorf("date = %q, want RFC3339 timestamp", got.Form["date"])
	}
	if got.Form["maxTeamSize"] != "4" || got.Form["minTeamSize"] != "1" {
		t.Errorf("team sizes = %q/%q", got.Form["minTeamSize"], got.Form["maxTeamSize"])
	}
	if got.Form["department"] != "CSE Department" {
		t.Errorf("department = %q", got.Form["department"])
	}
	if !got.HasImage {
		t.Error("image part missing from multipart body")
	}
}

// TestUpdateWithoutImage tests that the image part is optional on edit.
func TestUpdateWithoutImage(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusOK, `{}`, &got)
	c := backend.New(srv.URL)

	draft := event.Draft{Title: "Quiz", Description: "x", Department: "SUNSHINE", MinTeamSize: 1, MaxTeamSize: 1, Date: time.Now()}
	if err := c.UpdateEvent(context.Background(), "e7", draft, nil); err != nil {
		t.Fatalf("UpdateEvent() error = %v", err)
	}
	if got.Method != http.MethodPut || got.Path != "/api/events/e7" {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
	if got.HasImage {
		t.Error("no image part expected")
	}
}

// TestDeleteEvent tests the delete request path.
func TestDeleteEvent(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusOK, `{}`, &got)
	c := backend.New(srv.URL)

	if err := c.DeleteEvent(context.Background(), "a1"); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if got.Method != http.MethodDelete || got.Path != "/api/events/a1" {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
}

// TestIsAdmin tests the status-only admin contract.
func TestIsAdmin(t *testing.T) {
	t.Run("200 means admin", func(t *testing.T) {
		srv := stubServer(t, http.StatusOK, `{"admin":true}`, nil)
		c := backend.New(srv.URL)
		ok, err := c.IsAdmin(context.Background())
		if err != nil || !ok {
			t.Errorf("IsAdmin() = %v, %v; want true, nil", ok, err)
		}
	})

	t.Run("403 means not admin, not an error", func(t *testing.T) {
		srv := stubServer(t, http.StatusForbidden, `{}`, nil)
		c := backend.New(srv.URL)
		ok, err := c.IsAdmin(context.Background())
		if err != nil || ok {
			t.Errorf("IsAdmin() = %v, %v; want false, nil", ok, err)
		}
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		srv := stubServer(t, http.StatusOK, `{}`, nil)
		c := backend.New(srv.URL)
		srv.Close()
		if _, err := c.IsAdmin(context.Background()); err == nil {
			t.Error("IsAdmin() should surface a transport error")
		}
	})
}

// TestLoginToken tests token extraction from the auth endpoints.
func TestLoginToken(t *testing.T) {
	var got capture
	srv := stubServer(t, http.StatusOK, `{"token":"jwt-abc"}`, &got)
	c := backend.New(srv.URL)

	token, err := c.Login(context.Background(), "a@x", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q", token)
	}
	if got.Path != "/login" || got.Method != http.MethodPost {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
}

// TestMyRegistrations tests record normalization through the client.
func TestMyRegistrations(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"registrations":[
		{"_id":"r1","teamName":"Bit Benders","teamMembers":[{"name":"A","mobile":"1","email":"a@x"}],
		 "event":{"id":9,"title":"Robotics","minTeamSize":2,"maxTeaSize":4}}
	]}`, nil)
	c := backend.New(srv.URL)

	records, err := c.MyRegistrations(context.Background())
	if err != nil {
		t.Fatalf("MyRegistrations() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}
	r := records[0]
	if r.Event.Title != "Robotics" || r.Members[0].MobileNumber != "1" {
		t.Errorf("record = %+v", r)
	}
}
