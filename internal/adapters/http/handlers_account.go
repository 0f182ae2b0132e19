package web

import (
	"net/http"
	"strconv"

	"technova/internal/adapters/ticket"
	"technova/internal/application/projections"
)

// handleAccount renders the dashboard of the caller's registrations.
func handleAccount(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetAccountDeps{Registrations: services.Registrations, ImageBase: services.ImageBase}
	result, err := projections.QueryGetAccount(r.Context(), deps)
	if err != nil {
		renderTemplate(w, r, "account.html", map[string]any{"Error": err.Error()})
		return
	}
	renderTemplate(w, r, "account.html", map[string]any{"Entries": result.Entries})
}

// handleTicket serves the check-in QR code for one registered event.
func handleTicket(w http.ResponseWriter, r *http.Request) {
	png, err := ticket.PNG(r.PathValue("id"), r.URL.Query().Get("team"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}
