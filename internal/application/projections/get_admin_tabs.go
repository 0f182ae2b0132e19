package projections

import (
	"context"

	"technova/internal/application/listutil"
	"technova/internal/domain/event"
	"technova/internal/domain/registration"
	"technova/internal/domain/user"
)

// AdminEventRow is one event on the admin events tab, including the raw
// fields the edit modal needs to pre-fill.
type AdminEventRow struct {
	Card  EventCard
	Event event.Event
}

// GetAdminEventsResult carries the admin events tab view.
type GetAdminEventsResult struct {
	Rows  []AdminEventRow
	Total int
}

// GetAdminEventsDeps holds dependencies for GetAdminEvents.
type GetAdminEventsDeps struct {
	Events    EventReader
	ImageBase string
}

// QueryGetAdminEvents fetches every event for the management grid.
// PRE: caller passed the admin guard
func QueryGetAdminEvents(ctx context.Context, deps GetAdminEventsDeps) (GetAdminEventsResult, error) {
	events, err := deps.Events.ListEvents(ctx)
	if err != nil {
		return GetAdminEventsResult{}, err
	}
	result := GetAdminEventsResult{Rows: make([]AdminEventRow, 0, len(events)), Total: len(events)}
	for _, e := range events {
		result.Rows = append(result.Rows, AdminEventRow{
			Card:  newEventCard(e, deps.ImageBase),
			Event: e,
		})
	}
	return result, nil
}

// GetAdminUsersResult carries one page of the admin users tab.
type GetAdminUsersResult struct {
	Users []user.User
	Page  listutil.PageInfo
}

// GetAdminUsersDeps holds dependencies for GetAdminUsers.
type GetAdminUsersDeps struct {
	Users UserReader
}

// QueryGetAdminUsers fetches, filters, and pages the signed-up user listing.
// PRE: caller passed the admin guard
// POST: Page.Total counts matches, not the whole listing
func QueryGetAdminUsers(ctx context.Context, params listutil.Params, deps GetAdminUsersDeps) (GetAdminUsersResult, error) {
	users, err := deps.Users.AllUsers(ctx)
	if err != nil {
		return GetAdminUsersResult{}, err
	}

	matched := users[:0:0]
	for _, u := range users {
		if listutil.Matches(params.Search, u.Name, u.Email, u.Mobile) {
			matched = append(matched, u)
		}
	}

	info := listutil.NewPageInfo(params.Page, params.PerPage, len(matched))
	start, end := info.Bounds()
	return GetAdminUsersResult{Users: matched[start:end], Page: info}, nil
}

// AdminRegistrationRow is one registration on the admin registrations tab.
type AdminRegistrationRow struct {
	ID         string
	EventTitle string
	Department string
	TeamName   string
	Members    []registration.Member
	Size       int
}

// GetAdminRegistrationsResult carries one page of the registrations tab.
type GetAdminRegistrationsResult struct {
	Rows []AdminRegistrationRow
	Page listutil.PageInfo
}

// GetAdminRegistrationsDeps holds dependencies for GetAdminRegistrations.
type GetAdminRegistrationsDeps struct {
	Registrations RegistrationReader
}

// QueryGetAdminRegistrations fetches, filters, and pages every registration.
// PRE: caller passed the admin guard
func QueryGetAdminRegistrations(ctx context.Context, params listutil.Params, deps GetAdminRegistrationsDeps) (GetAdminRegistrationsResult, error) {
	records, err := deps.Registrations.AllRegistrations(ctx)
	if err != nil {
		return GetAdminRegistrationsResult{}, err
	}

	matched := make([]AdminRegistrationRow, 0, len(records))
	for _, r := range records {
		row := AdminRegistrationRow{
			ID:         r.ID,
			EventTitle: r.Event.Title,
			Department: r.Event.Department,
			TeamName:   r.TeamName,
			Members:    r.Members,
			Size:       len(r.Members),
		}
		if registrationMatches(row, params.Search) {
			matched = append(matched, row)
		}
	}

	info := listutil.NewPageInfo(params.Page, params.PerPage, len(matched))
	start, end := info.Bounds()
	return GetAdminRegistrationsResult{Rows: matched[start:end], Page: info}, nil
}

// registrationMatches searches the team name, event title, and every member.
func registrationMatches(row AdminRegistrationRow, search string) bool {
	if listutil.Matches(search, row.TeamName, row.EventTitle, row.Department) {
		return true
	}
	for _, m := range row.Members {
		if listutil.Matches(search, m.Name, m.Email, m.MobileNumber) {
			return true
		}
	}
	return false
}

// TabCounts are the badge numbers on the admin tab strip.
type TabCounts struct {
	Events        int
	Users         int
	Registrations int
}

// GetTabCountsDeps holds dependencies for GetTabCounts.
type GetTabCountsDeps struct {
	Events        EventReader
	Users         UserReader
	Registrations RegistrationReader
}

// QueryGetTabCounts fetches all three listing sizes for the tab badges.
// PRE: caller passed the admin guard
func QueryGetTabCounts(ctx context.Context, deps GetTabCountsDeps) (TabCounts, error) {
	events, err := deps.Events.ListEvents(ctx)
	if err != nil {
		return TabCounts{}, err
	}
	users, err := deps.Users.AllUsers(ctx)
	if err != nil {
		return TabCounts{}, err
	}
	records, err := deps.Registrations.AllRegistrations(ctx)
	if err != nil {
		return TabCounts{}, err
	}
	return TabCounts{Events: len(events), Users: len(users), Registrations: len(records)}, nil
}
