package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"technova/internal/domain/event"
)

// Fallback messages for event operations, surfaced when the backend rejects a
// request without a message of its own.
const (
	msgLoadEvents  = "Failed to load events"
	msgLoadEvent   = "Failed to load event"
	msgAddEvent    = "Failed to add event"
	msgUpdateEvent = "Failed to update event"
	msgDeleteEvent = "Failed to delete event"
)

// ListEvents fetches all festival events.
// POST: returns a normalized, non-nil slice
func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	body, err := c.getJSON(ctx, "/api/events", msgLoadEvents)
	if err != nil {
		return nil, err
	}
	events, err := event.DecodeList(body)
	if err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event by its resolved id.
func (c *Client) GetEvent(ctx context.Context, id string) (event.Event, error) {
	body, err := c.getJSON(ctx, "/api/events/"+url.PathEscape(id), msgLoadEvent)
	if err != nil {
		return event.Event{}, err
	}
	var e event.Event
	if err := e.UnmarshalJSON(body); err != nil {
		return event.Event{}, fmt.Errorf("decode event %s: %w", id, err)
	}
	return e, nil
}

// CreateEvent submits a new event. The body is always multipart so an image
// upload can ride along; the date is sent as an absolute RFC3339 timestamp.
func (c *Client) CreateEvent(ctx context.Context, draft event.Draft, image *event.ImageUpload) error {
	return c.sendEventForm(ctx, http.MethodPost, "/api/events/add", draft, image, msgAddEvent)
}

// UpdateEvent replaces an existing event's fields.
func (c *Client) UpdateEvent(ctx context.Context, id string, draft event.Draft, image *event.ImageUpload) error {
	return c.sendEventForm(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), draft, image, msgUpdateEvent)
}

// DeleteEvent removes an event by its resolved id.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFrom(resp, msgDeleteEvent)
	}
	return nil
}

// sendEventForm encodes a draft as multipart form data and performs the
// create or update request.
func (c *Client) sendEventForm(ctx context.Context, method, path string, draft event.Draft, image *event.ImageUpload, fallback string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"department":  draft.Department,
		"minTeamSize": strconv.Itoa(draft.MinTeamSize),
		"maxTeamSize": strconv.Itoa(draft.MaxTeamSize),
		"date":        draft.Date.UTC().Format(time.RFC3339),
		"venue":       draft.Venue,
		"rules":       draft.Rules,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("encode event form: %w", err)
		}
	}
	if image != nil && len(image.Data) > 0 {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return fmt.Errorf("encode event image: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return fmt.Errorf("encode event image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode event form: %w", err)
	}

	resp, err := c.do(ctx, method, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFrom(resp, fallback)
	}
	return nil
}
