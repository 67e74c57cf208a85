// Package site serves pages that embed a navigation menu activated for the
// requested path, plus a JSON view of the same menu.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/server"
)

// ErrNoSite is returned by Ready until a site definition is set.
var ErrNoSite = errors.New("no site definition loaded")

const pageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
<header>{{ .Menu }}</header>
{{- with .Crumbs }}
<ol class="breadcrumb">{{ range . }}<li>{{ if .URL }}<a href="{{ .URL }}">{{ .Label }}</a>{{ else }}{{ .Label }}{{ end }}</li>{{ end }}</ol>
{{- end }}
<main><h1>{{ .Heading }}</h1></main>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type page struct {
	Title   string
	Heading string
	Menu    template.HTML
	Crumbs  []menu.Crumb
}

// Handler renders pages for the current site definition. The definition can
// be swapped at any time with SetSite; every request builds its own menu.
type Handler struct {
	site    atomic.Pointer[config.Site]
	renders metric.IncrementalCounter
	latency metric.DurationObserver
}

// NewHandler creates a handler serving s and registers its render metrics
// with reg. s may be nil until the first SetSite.
func NewHandler(s *config.Site, reg prometheus.Registerer) *Handler {
	h := &Handler{
		renders: metric.NewCounterWithRegistry(reg, "navmenu_renders_total",
			"Number of rendered menus by whether any item was active.", "active"),
		latency: metric.NewHistogramWithRegistry(reg, "navmenu_render_seconds",
			"Time spent building, activating and rendering a menu.", "route"),
	}
	if s != nil {
		h.SetSite(s)
	}
	return h
}

// SetSite replaces the site definition used for subsequent requests. A nil
// site unloads the definition, so requests get 503 until the next SetSite.
func (h *Handler) SetSite(s *config.Site) {
	h.site.Store(s)

	if s == nil {
		slog.Warn("site cleared")
		return
	}

	links := 0
	s.Menu().Walk(func(item menu.Item, _ int) {
		if _, ok := item.(*menu.Link); ok {
			links++
		}
	})
	slog.Info("site updated", "title", s.Title, "root", s.Root, "links", links)
}

// Site returns the current definition, or nil.
func (h *Handler) Site() *config.Site {
	return h.site.Load()
}

// Ready implements server.ReadinessChecker.
func (h *Handler) Ready(_ context.Context) error {
	if h.site.Load() == nil {
		return ErrNoSite
	}
	return nil
}

// Activated builds a fresh menu for the current site, marked active for path.
func (h *Handler) Activated(path string) (*menu.Menu, *config.Site, error) {
	s := h.site.Load()
	if s == nil {
		return nil, nil, ErrNoSite
	}
	return s.Menu().SetActiveFromURL(path, s.Root), s, nil
}

// ServeHTTP renders the page for r.URL.Path. Any path gets a page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer h.latency.ObserveSince(start, "page")

	m, s, err := h.Activated(r.URL.Path)
	if err != nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, err)
		return
	}

	p := page{
		Title:   s.Title,
		Heading: s.Title,
		Menu:    template.HTML(m.Render()), // trusted: built from the site definition
		Crumbs:  m.Crumbs(),
	}
	if n := len(p.Crumbs); n > 0 {
		p.Heading = p.Crumbs[n-1].Label
	}

	h.renders.Increment(strconv.FormatBool(m.IsActive()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		slog.Error("failed to render page", "request_id", server.RequestID(r.Context()), "error", err)
	}
}

// TreeHandler serves the menu activated for the "url" query parameter
// (default "/") as JSON, along with its breadcrumb.
func (h *Handler) TreeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer h.latency.ObserveSince(start, "tree")

		path := r.URL.Query().Get("url")
		if path == "" {
			path = menu.DefaultRoot
		}

		m, _, err := h.Activated(path)
		if err != nil {
			writeError(r.Context(), w, http.StatusServiceUnavailable, err)
			return
		}

		h.renders.Increment(strconv.FormatBool(m.IsActive()))

		writeJSON(r.Context(), w, http.StatusOK, treeResponse{
			URL:        path,
			Menu:       m.Tree(),
			Breadcrumb: m.Breadcrumb(),
		})
	})
}

type treeResponse struct {
	URL        string    `json:"url"`
	Menu       menu.Node `json:"menu"`
	Breadcrumb []string  `json:"breadcrumb"`
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	slog.Error("handling error response",
		"request_id", server.RequestID(ctx),
		"status", status,
		"error", err)
	writeJSON(ctx, w, status, map[string]string{"error": err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "request_id", server.RequestID(ctx), "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		slog.Error("failed to write JSON response", "request_id", server.RequestID(ctx), "error", err)
	}
}
