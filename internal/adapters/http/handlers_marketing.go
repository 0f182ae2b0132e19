package web

import (
	"net/http"

	"technova/internal/application/projections"
)

// festival schedule facts shown on the landing page
var festivalHighlights = []struct {
	Title string
	Text  string
}{
	{"40+ Events", "Technical showdowns, quizzes, expos, and gaming across every department."},
	{"Two Days", "14 and 15 February 2026 on the DCRUST campus."},
	{"Open Teams", "Solo challenges and team events from 2 to 6 members."},
	{"Prizes", "Trophies and goodies for winners in every track."},
}

var festivalSponsors = []string{
	"Indiesoft", "Campus Coders Club", "DCRUST Alumni Network", "Murthal Motors",
}

var festivalFAQ = []struct {
	Q string
	A string
}{
	{"Who can participate?", "Any student with a valid college ID. Sign up here, then register for as many events as you like."},
	{"Do I need a team?", "Depends on the event. Each listing shows whether it is solo or a team of a given size range."},
	{"How do I check in?", "Your account page has a QR ticket for every registered event. Show it at the venue."},
	{"Is there a fee?", "Entry is free for all on-campus events."},
}

// handleHome renders the landing page. The gallery reuses event posters; the
// page still renders if the listing is unavailable.
func handleHome(w http.ResponseWriter, r *http.Request) {
	var gallery []projections.EventCard
	deps := projections.GetEventDirectoryDeps{Events: services.Events, ImageBase: services.ImageBase}
	if result, err := projections.QueryGetEventDirectory(r.Context(), projections.GetEventDirectoryQuery{}, deps); err == nil {
		for _, card := range result.Cards {
			if card.ImageURL == "" {
				continue
			}
			gallery = append(gallery, card)
			if len(gallery) == 6 {
				break
			}
		}
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"Highlights": festivalHighlights,
		"Gallery":    gallery,
		"Sponsors":   festivalSponsors,
		"FAQ":        festivalFAQ,
	})
}
