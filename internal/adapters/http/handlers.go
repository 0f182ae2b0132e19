package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"technova/internal/adapters/http/middleware"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func handleStatic() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	loggedIn := middleware.IsLoggedIn(r)

	funcMap := template.FuncMap{
		"csrfToken":  func() string { return csrf.Token(r) },
		"isLoggedIn": func() bool { return loggedIn },
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		"dash": func(s string) string {
			if s == "" {
				return "—"
			}
			return s
		},
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"paginationQuery": func(page int, search, tab string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if tab != "" {
				q += "&tab=" + tab
			}
			if search != "" {
				q += "&q=" + url.QueryEscape(search)
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS,
		"templates/layout.html", "templates/"+templateName)
	if err != nil {
		internalError(w, err)
		return
	}

	// Render to a buffer first so a mid-render failure never sends half a page.
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
