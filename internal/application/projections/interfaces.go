package projections

import (
	"context"

	"technova/internal/domain/event"
	"technova/internal/domain/registration"
	"technova/internal/domain/user"
)

// EventReader interface for event directory queries.
type EventReader interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
	GetEvent(ctx context.Context, id string) (event.Event, error)
}

// RegistrationReader interface for registration listings.
type RegistrationReader interface {
	MyRegistrations(ctx context.Context) ([]registration.Record, error)
	AllRegistrations(ctx context.Context) ([]registration.Record, error)
}

// UserReader interface for the admin user listing.
type UserReader interface {
	AllUsers(ctx context.Context) ([]user.User, error)
}
