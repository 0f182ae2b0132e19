package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"technova/internal/domain/event"
)

// EventAdminService defines the backend interface for event management.
type EventAdminService interface {
	CreateEvent(ctx context.Context, draft event.Draft, image *event.ImageUpload) error
	UpdateEvent(ctx context.Context, id string, draft event.Draft, image *event.ImageUpload) error
	DeleteEvent(ctx context.Context, id string) error
}

// ErrEventIDRequired rejects admin operations on an unresolved event.
var ErrEventIDRequired = errors.New("event id is required")

// SaveEventInput carries the add/edit event form.
type SaveEventInput struct {
	ID    string // empty for create
	Draft event.Draft
	Image *event.ImageUpload // nil keeps the existing image on edit
}

// EventAdminDeps holds dependencies for the event admin orchestrators.
type EventAdminDeps struct {
	Events EventAdminService
}

// ExecuteSaveEvent validates the event form and creates or updates the event.
// PRE: caller holds an admin session
// POST: validation failures make no network call; ID selects update over
// create
func ExecuteSaveEvent(ctx context.Context, input SaveEventInput, deps EventAdminDeps) error {
	if err := input.Draft.Validate(); err != nil {
		return err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		if err := deps.Events.CreateEvent(ctx, input.Draft, input.Image); err != nil {
			slog.Error("event_create_failed", "title", input.Draft.Title, "error", err)
			return err
		}
		slog.Info("event_created", "title", input.Draft.Title, "department", input.Draft.Department)
		return nil
	}

	if err := deps.Events.UpdateEvent(ctx, id, input.Draft, input.Image); err != nil {
		slog.Error("event_update_failed", "event_id", id, "error", err)
		return err
	}
	slog.Info("event_updated", "event_id", id, "title", input.Draft.Title)
	return nil
}

// ExecuteDeleteEvent removes an event after the confirm dialog.
// PRE: caller holds an admin session and confirmed the exact event
// POST: exactly one delete request for the resolved id; empty ids are
// rejected locally
func ExecuteDeleteEvent(ctx context.Context, eventID string, deps EventAdminDeps) error {
	id := strings.TrimSpace(eventID)
	if id == "" {
		return ErrEventIDRequired
	}
	if err := deps.Events.DeleteEvent(ctx, id); err != nil {
		slog.Error("event_delete_failed", "event_id", id, "error", err)
		return err
	}
	slog.Info("event_deleted", "event_id", id)
	return nil
}
