package web

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"technova/internal/application/listutil"
	"technova/internal/application/orchestrators"
	"technova/internal/application/projections"
	"technova/internal/domain/event"
)

// maxImageUpload caps event poster uploads at 10 MB.
const maxImageUpload = 10 << 20

// tabCountCache remembers each tab's size once that tab has been visited.
// Unvisited tabs render a dash instead of a number; no extra backend calls
// are made just to fill a badge.
var tabCountCache = struct {
	sync.Mutex
	counts map[string]int
}{counts: make(map[string]int)}

func cacheTabCount(tab string, n int) {
	tabCountCache.Lock()
	tabCountCache.counts[tab] = n
	tabCountCache.Unlock()
}

// refreshTabCounts reloads all three badge counts. Only reached from the
// explicit Refresh control; badge errors are not worth failing the page over.
func refreshTabCounts(r *http.Request) {
	deps := projections.GetTabCountsDeps{
		Events:        services.Events,
		Users:         services.Users,
		Registrations: services.Registrations,
	}
	counts, err := projections.QueryGetTabCounts(r.Context(), deps)
	if err != nil {
		return
	}
	cacheTabCount("events", counts.Events)
	cacheTabCount("users", counts.Users)
	cacheTabCount("registrations", counts.Registrations)
}

// tabBadges returns the display value per tab, "" for never-visited ones.
func tabBadges() map[string]string {
	tabCountCache.Lock()
	defer tabCountCache.Unlock()
	badges := map[string]string{"events": "", "users": "", "registrations": ""}
	for tab, n := range tabCountCache.counts {
		badges[tab] = strconv.Itoa(n)
	}
	return badges
}

// handleAdminDashboard renders the tabbed admin view. The tab query parameter
// selects events, users, or registrations; only the active tab's data is
// fetched. The Refresh control adds counts=1, which also reloads every badge.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("counts") == "1" {
		refreshTabCounts(r)
	}

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "users":
		renderAdminUsers(w, r)
	case "registrations":
		renderAdminRegistrations(w, r)
	default:
		renderAdminEvents(w, r)
	}
}

func renderAdminEvents(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetAdminEventsDeps{Events: services.Events, ImageBase: services.ImageBase}
	result, err := projections.QueryGetAdminEvents(r.Context(), deps)
	if err != nil {
		renderTemplate(w, r, "admin_dashboard.html", map[string]any{"Tab": "events", "Badges": tabBadges(), "Error": err.Error()})
		return
	}
	cacheTabCount("events", result.Total)

	renderTemplate(w, r, "admin_dashboard.html", map[string]any{
		"Tab":    "events",
		"Badges": tabBadges(),
		"Rows":   result.Rows,
	})
}

func renderAdminUsers(w http.ResponseWriter, r *http.Request) {
	params := listutil.Parse(r.URL.Query())
	deps := projections.GetAdminUsersDeps{Users: services.Users}
	result, err := projections.QueryGetAdminUsers(r.Context(), params, deps)
	if err != nil {
		renderTemplate(w, r, "admin_dashboard.html", map[string]any{"Tab": "users", "Badges": tabBadges(), "Error": err.Error(), "Search": params.Search})
		return
	}
	if params.Search == "" {
		cacheTabCount("users", result.Page.Total)
	}

	renderTemplate(w, r, "admin_dashboard.html", map[string]any{
		"Tab":    "users",
		"Badges": tabBadges(),
		"Users":  result.Users,
		"Page":   result.Page,
		"Search": params.Search,
	})
}

func renderAdminRegistrations(w http.ResponseWriter, r *http.Request) {
	params := listutil.Parse(r.URL.Query())
	deps := projections.GetAdminRegistrationsDeps{Registrations: services.Registrations}
	result, err := projections.QueryGetAdminRegistrations(r.Context(), params, deps)
	if err != nil {
		renderTemplate(w, r, "admin_dashboard.html", map[string]any{"Tab": "registrations", "Badges": tabBadges(), "Error": err.Error(), "Search": params.Search})
		return
	}
	if params.Search == "" {
		cacheTabCount("registrations", result.Page.Total)
	}

	renderTemplate(w, r, "admin_dashboard.html", map[string]any{
		"Tab":           "registrations",
		"Badges":        tabBadges(),
		"Registrations": result.Rows,
		"Page":          result.Page,
		"Search":        params.Search,
	})
}

// catalogueJSON feeds the department-to-title cascade in the event form.
func catalogueJSON() template.JS {
	byDept := make(map[string][]string, len(event.Catalogue))
	for _, d := range event.Catalogue {
		byDept[d.Name] = d.Events
	}
	data, err := json.Marshal(byDept)
	if err != nil {
		return "{}"
	}
	return template.JS(data)
}

type eventFormData struct {
	ID          string
	Title       string
	Description string
	Department  string
	MinTeamSize string
	MaxTeamSize string
	Date        string // datetime-local value
	Venue       string
	Rules       string
	ImageURL    string
}

// handleAdminEventNew renders an empty add-event form.
func handleAdminEventNew(w http.ResponseWriter, r *http.Request) {
	renderEventForm(w, r, eventFormData{MinTeamSize: "1", MaxTeamSize: "1"}, "")
}

// handleAdminEventEdit renders the form pre-filled from the backend record.
func handleAdminEventEdit(w http.ResponseWriter, r *http.Request) {
	e, err := services.Events.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	form := eventFormData{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Department:  e.Department,
		MinTeamSize: strconv.Itoa(e.MinTeamSize),
		MaxTeamSize: strconv.Itoa(e.MaxTeamSize),
		Venue:       e.Venue,
		Rules:       e.Rules,
		ImageURL:    event.ImageURL(services.ImageBase, e.ImagePath),
	}
	if t, perr := time.Parse(time.RFC3339, e.Date); perr == nil {
		form.Date = t.Format("2006-01-02T15:04")
	}
	renderEventForm(w, r, form, "")
}

func renderEventForm(w http.ResponseWriter, r *http.Request, form eventFormData, errMsg string) {
	renderTemplate(w, r, "admin_event_form.html", map[string]any{
		"Form":          form,
		"Departments":   event.DepartmentNames(),
		"CatalogueJSON": catalogueJSON(),
		"Error":         errMsg,
	})
}

// handleAdminEventSave services both create and update; an id field selects
// update. The body is multipart because of the optional poster image.
func handleAdminEventSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := eventFormData{
		ID:          r.FormValue("id"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Department:  r.FormValue("department"),
		MinTeamSize: r.FormValue("min_team_size"),
		MaxTeamSize: r.FormValue("max_team_size"),
		Date:        r.FormValue("date"),
		Venue:       r.FormValue("venue"),
		Rules:       r.FormValue("rules"),
	}

	draft, err := draftFromEventForm(form)
	if err != nil {
		renderEventForm(w, r, form, err.Error())
		return
	}

	image, err := imageFromForm(r)
	if err != nil {
		renderEventForm(w, r, form, err.Error())
		return
	}

	input := orchestrators.SaveEventInput{ID: form.ID, Draft: draft, Image: image}
	if err := orchestrators.ExecuteSaveEvent(r.Context(), input, orchestrators.EventAdminDeps{Events: services.Events}); err != nil {
		renderEventForm(w, r, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin?tab=events", http.StatusSeeOther)
}

func draftFromEventForm(form eventFormData) (event.Draft, error) {
	minSize, _ := strconv.Atoi(form.MinTeamSize)
	maxSize, _ := strconv.Atoi(form.MaxTeamSize)

	draft := event.Draft{
		Title:       form.Title,
		Description: form.Description,
		Department:  form.Department,
		MinTeamSize: minSize,
		MaxTeamSize: maxSize,
		Venue:       form.Venue,
		Rules:       form.Rules,
	}
	if form.Date != "" {
		// datetime-local first, then full RFC3339 for round-tripped values
		t, err := time.Parse("2006-01-02T15:04", form.Date)
		if err != nil {
			t, err = time.Parse(time.RFC3339, form.Date)
		}
		if err != nil {
			return draft, event.ErrDateRequired
		}
		draft.Date = t
	}
	return draft, draft.Validate()
}

func imageFromForm(r *http.Request) (*event.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUpload))
	if err != nil {
		return nil, err
	}
	return &event.ImageUpload{Filename: filepath.Base(header.Filename), Data: data}, nil
}

// handleAdminEventDeleteConfirm shows the confirm dialog naming the exact
// event; nothing is deleted until the POST lands.
func handleAdminEventDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	e, err := services.Events.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	renderTemplate(w, r, "admin_delete.html", map[string]any{"Event": e})
}

// handleAdminEventDelete issues exactly one delete for the confirmed event.
func handleAdminEventDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteEvent(r.Context(), r.PathValue("id"),
		orchestrators.EventAdminDeps{Events: services.Events})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/admin?tab=events", http.StatusSeeOther)
}
