package orchestrators

import (
	"context"
	"log/slog"

	"technova/internal/domain/event"
	"technova/internal/domain/registration"
)

// RegistrationService defines the backend interface needed by RegisterTeam.
type RegistrationService interface {
	Register(ctx context.Context, eventID string, payload registration.Payload) error
}

// RegisterTeamInput carries the submitted registration form.
type RegisterTeamInput struct {
	Event    event.Event
	TeamName string
	Members  []registration.Member
}

// RegisterTeamDeps holds dependencies for RegisterTeam.
type RegisterTeamDeps struct {
	Registrations RegistrationService
}

// ExecuteRegisterTeam validates a team entry and submits it to the backend.
// PRE: input.Event resolved from the directory
// POST: on success the backend holds the registration; on validation failure
// no network call is made
// INVARIANT: solo events never send a team name
func ExecuteRegisterTeam(ctx context.Context, input RegisterTeamInput, deps RegisterTeamDeps) error {
	draft := registration.NewDraftFor(input.Event)
	draft.TeamName = input.TeamName
	draft.Members = input.Members

	// Validate before touching the network
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := deps.Registrations.Register(ctx, input.Event.ID, draft.Payload()); err != nil {
		slog.Error("registration_failed", "event_id", input.Event.ID, "error", err)
		return err
	}

	slog.Info("registration_submitted", "event_id", input.Event.ID, "members", len(input.Members))
	return nil
}
