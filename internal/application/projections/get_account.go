package projections

import (
	"context"

	"technova/internal/domain/event"
	"technova/internal/domain/registration"
)

// AccountEntry is one of the caller's registrations prepared for the
// dashboard: the event card plus the team that was entered.
type AccountEntry struct {
	RegistrationID string
	EventID        string
	EventTitle     string
	Department     string
	DateText       string
	TimeText       string
	Venue          string
	ImageURL       string
	TeamName       string
	Members        []registration.Member
	Solo           bool
}

// GetAccountResult carries the account dashboard view.
type GetAccountResult struct {
	Entries []AccountEntry
}

// GetAccountDeps holds dependencies for GetAccount.
type GetAccountDeps struct {
	Registrations RegistrationReader
	ImageBase     string
}

// QueryGetAccount fetches the caller's registrations for the dashboard.
// PRE: the context carries a session token
// POST: Entries is non-nil; order follows the backend listing
func QueryGetAccount(ctx context.Context, deps GetAccountDeps) (GetAccountResult, error) {
	records, err := deps.Registrations.MyRegistrations(ctx)
	if err != nil {
		return GetAccountResult{}, err
	}

	result := GetAccountResult{Entries: make([]AccountEntry, 0, len(records))}
	for _, r := range records {
		result.Entries = append(result.Entries, newAccountEntry(r, deps.ImageBase))
	}
	return result, nil
}

func newAccountEntry(r registration.Record, imageBase string) AccountEntry {
	dateText, timeText := event.FormatDateTime(r.Event.Date)
	return AccountEntry{
		RegistrationID: r.ID,
		EventID:        r.Event.ID,
		EventTitle:     r.Event.Title,
		Department:     r.Event.Department,
		DateText:       dateText,
		TimeText:       timeText,
		Venue:          r.Event.Venue,
		ImageURL:       event.ImageURL(imageBase, r.Event.ImagePath),
		TeamName:       r.TeamName,
		Members:        r.Members,
		Solo:           r.Event.Solo(),
	}
}
