package backend

import (
	"context"
	"fmt"
	"net/url"

	"technova/internal/domain/registration"
)

const (
	msgRegister          = "Registration failed"
	msgLoadMyEvents      = "Failed to load your registrations"
	msgLoadRegistrations = "Failed to load registrations"
)

// Register submits one team (or solo) entry for an event.
// PRE: payload came from a validated registration draft
func (c *Client) Register(ctx context.Context, eventID string, payload registration.Payload) error {
	_, err := c.postJSON(ctx, "/api/registrations/register/"+url.PathEscape(eventID), payload, msgRegister)
	return err
}

// MyRegistrations fetches the current user's registrations.
// POST: records are normalized regardless of nested or flattened event shape
func (c *Client) MyRegistrations(ctx context.Context) ([]registration.Record, error) {
	body, err := c.getJSON(ctx, "/api/registrations/myEvents", msgLoadMyEvents)
	if err != nil {
		return nil, err
	}
	records, err := registration.DecodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}
	return records, nil
}

// AllRegistrations fetches every registration; admin only, re-checked by the
// backend on each call.
func (c *Client) AllRegistrations(ctx context.Context) ([]registration.Record, error) {
	body, err := c.getJSON(ctx, "/api/registrations/all", msgLoadRegistrations)
	if err != nil {
		return nil, err
	}
	records, err := registration.DecodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}
	return records, nil
}
