package projections

import (
	"context"
	"sort"
	"strings"

	"technova/internal/domain/event"
)

// EventCard is one event prepared for display: dates formatted, image path
// resolved, team range rendered.
type EventCard struct {
	ID         string
	Title      string
	Department string
	Summary    string
	DateText   string
	TimeText   string
	Venue      string
	ImageURL   string
	TeamSizes  string
	Solo       bool
}

// EventDetail is the full event page view.
type EventDetail struct {
	EventCard
	Description string
	Rules       string
	Event       event.Event
}

// GetEventDirectoryQuery carries the directory filters.
type GetEventDirectoryQuery struct {
	Department string // empty means all departments
	Search     string
}

// GetEventDirectoryResult carries the directory view.
type GetEventDirectoryResult struct {
	Cards       []EventCard
	Departments []string // departments present in the listing, sorted
}

// GetEventDirectoryDeps holds dependencies for GetEventDirectory.
type GetEventDirectoryDeps struct {
	Events    EventReader
	ImageBase string
}

// summaryLimit truncates card descriptions.
const summaryLimit = 140

// QueryGetEventDirectory fetches and prepares the public event listing.
// POST: cards keep backend order; Departments holds the distinct departments
// of the full listing, not the filtered one
func QueryGetEventDirectory(ctx context.Context, query GetEventDirectoryQuery, deps GetEventDirectoryDeps) (GetEventDirectoryResult, error) {
	events, err := deps.Events.ListEvents(ctx)
	if err != nil {
		return GetEventDirectoryResult{}, err
	}

	seen := make(map[string]bool)
	result := GetEventDirectoryResult{Cards: []EventCard{}}
	for _, e := range events {
		if e.Department != "" && !seen[e.Department] {
			seen[e.Department] = true
			result.Departments = append(result.Departments, e.Department)
		}
		if query.Department != "" && e.Department != query.Department {
			continue
		}
		if !matchesSearch(e, query.Search) {
			continue
		}
		result.Cards = append(result.Cards, newEventCard(e, deps.ImageBase))
	}
	sort.Strings(result.Departments)
	return result, nil
}

// GetEventDetailDeps holds dependencies for GetEventDetail.
type GetEventDetailDeps struct {
	Events    EventReader
	ImageBase string
}

// QueryGetEventDetail fetches and prepares one event page.
func QueryGetEventDetail(ctx context.Context, id string, deps GetEventDetailDeps) (EventDetail, error) {
	e, err := deps.Events.GetEvent(ctx, id)
	if err != nil {
		return EventDetail{}, err
	}
	return EventDetail{
		EventCard:   newEventCard(e, deps.ImageBase),
		Description: e.Description,
		Rules:       e.Rules,
		Event:       e,
	}, nil
}

func newEventCard(e event.Event, imageBase string) EventCard {
	dateText, timeText := event.FormatDateTime(e.Date)
	return EventCard{
		ID:         e.ID,
		Title:      e.Title,
		Department: e.Department,
		Summary:    truncate(e.Description, summaryLimit),
		DateText:   dateText,
		TimeText:   timeText,
		Venue:      e.Venue,
		ImageURL:   event.ImageURL(imageBase, e.ImagePath),
		TeamSizes:  e.TeamSizeRange(),
		Solo:       e.Solo(),
	}
}

func matchesSearch(e event.Event, search string) bool {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return true
	}
	for _, field := range []string{e.Title, e.Department, e.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}
