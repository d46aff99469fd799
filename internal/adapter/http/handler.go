package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lully/dayplan/internal/config"
	"github.com/lully/dayplan/internal/port"
	"github.com/lully/dayplan/internal/usecase/planner"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the admin page, the caregiver schedule page and the JSON
// API. All state lives in the request URL; the handler itself only carries
// configuration and collaborators.
type Handler struct {
	cfg       *config.Config
	clock     port.Clock
	cache     port.PlanCache
	logger    zerolog.Logger
	templates *template.Template
}

func NewHandler(cfg *config.Config, clock port.Clock, cache port.PlanCache, logger zerolog.Logger) (*Handler, error) {
	funcMap := template.FuncMap{
		"formatClock": formatClock,
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		cfg:       cfg,
		clock:     clock,
		cache:     cache,
		logger:    logger,
		templates: tmpl,
	}, nil
}

// SystemClock passes time.Now through the port.Clock interface.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (h *Handler) defaults() planner.Defaults {
	return planner.Defaults{
		Name:          h.cfg.DefaultName,
		First:         h.cfg.DefaultFirstFeed,
		Last:          h.cfg.DefaultLastFeed,
		IntervalHours: h.cfg.DefaultIntervalHours,
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// formatClock renders an instant as a short local time, e.g. "7:30 AM".
func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
