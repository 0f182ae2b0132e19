package web

import (
	"net/http"
	"strconv"
	"strings"

	"technova/internal/application/orchestrators"
	"technova/internal/application/projections"
	"technova/internal/domain/registration"
)

// handleEvents renders the public event directory.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	query := projections.GetEventDirectoryQuery{
		Department: r.URL.Query().Get("department"),
		Search:     r.URL.Query().Get("q"),
	}
	deps := projections.GetEventDirectoryDeps{Events: services.Events, ImageBase: services.ImageBase}

	result, err := projections.QueryGetEventDirectory(r.Context(), query, deps)
	if err != nil {
		renderTemplate(w, r, "events.html", map[string]any{"Error": err.Error()})
		return
	}

	renderTemplate(w, r, "events.html", map[string]any{
		"Cards":       result.Cards,
		"Departments": result.Departments,
		"Department":  query.Department,
		"Search":      query.Search,
	})
}

// handleEventDetail renders one event page.
func handleEventDetail(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetEventDetailDeps{Events: services.Events, ImageBase: services.ImageBase}
	detail, err := projections.QueryGetEventDetail(r.Context(), r.PathValue("id"), deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	renderTemplate(w, r, "event_detail.html", map[string]any{"Detail": detail})
}

// handleRegisterForm renders the registration form with the event's minimum
// number of member slots.
func handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetEventDetailDeps{Events: services.Events, ImageBase: services.ImageBase}
	detail, err := projections.QueryGetEventDetail(r.Context(), r.PathValue("id"), deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	draft := registration.NewDraftFor(detail.Event)
	renderRegisterForm(w, r, detail, draft, "")
}

// handleRegisterSubmit services the form's three actions: add a slot, remove
// a slot, or submit the team. Add and remove round-trip the entered values so
// nothing the user typed is lost.
func handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetEventDetailDeps{Events: services.Events, ImageBase: services.ImageBase}
	detail, err := projections.QueryGetEventDetail(r.Context(), r.PathValue("id"), deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	draft := draftFromForm(r, detail)
	action := r.FormValue("action")

	switch {
	case action == "add":
		draft.AddMember()
		renderRegisterForm(w, r, detail, draft, "")
		return

	case strings.HasPrefix(action, "remove:"):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, "remove:")); err == nil {
			draft.RemoveMember(i)
		}
		renderRegisterForm(w, r, detail, draft, "")
		return

	case action == "submit":
		input := orchestrators.RegisterTeamInput{
			Event:    detail.Event,
			TeamName: draft.TeamName,
			Members:  draft.Members,
		}
		err := orchestrators.ExecuteRegisterTeam(r.Context(), input,
			orchestrators.RegisterTeamDeps{Registrations: services.Registrations})
		if err != nil {
			renderRegisterForm(w, r, detail, draft, err.Error())
			return
		}
		renderTemplate(w, r, "register.html", map[string]any{
			"Detail":  detail,
			"Success": true,
		})
		return
	}

	http.Error(w, "Invalid form submission", http.StatusBadRequest)
}

// draftFromForm rebuilds the in-progress draft from posted values. The slot
// count is clamped into the event's allowed range.
func draftFromForm(r *http.Request, detail projections.EventDetail) *registration.Draft {
	draft := registration.NewDraftFor(detail.Event)
	draft.TeamName = r.FormValue("team_name")

	count, err := strconv.Atoi(r.FormValue("slots"))
	if err != nil || count < draft.MinSize() {
		count = draft.MinSize()
	}
	if count > draft.MaxSize() {
		count = draft.MaxSize()
	}

	members := make([]registration.Member, count)
	for i := range members {
		idx := strconv.Itoa(i)
		members[i] = registration.Member{
			Name:         r.FormValue("member_name_" + idx),
			MobileNumber: r.FormValue("member_mobile_" + idx),
			Email:        r.FormValue("member_email_" + idx),
		}
	}
	draft.Members = members
	return draft
}

func renderRegisterForm(w http.ResponseWriter, r *http.Request, detail projections.EventDetail, draft *registration.Draft, errMsg string) {
	renderTemplate(w, r, "register.html", map[string]any{
		"Detail": detail,
		"Draft":  draft,
		"Error":  errMsg,
	})
}
