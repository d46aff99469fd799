package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lully/dayplan/internal/domain"
	"github.com/lully/dayplan/internal/telemetry"
	"github.com/lully/dayplan/internal/usecase/planner"
)

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/schedule", h.SchedulePage)
	r.Get("/admin", h.AdminPage)
	r.Get("/api/plan", h.Plan)
	r.Get("/api/plan/active", h.ActiveBlock)
	r.Get("/healthz", h.Healthz)
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/schedule", http.StatusFound)
}

// plan resolves the request's carrier params into a generated plan, going
// through the cache. The name is display-only and patched onto cached plans.
func (h *Handler) plan(r *http.Request, now time.Time) (planner.Params, domain.Plan) {
	p := planner.ParamsFromQuery(r.URL.Query(), h.defaults())
	key := p.CacheKey(now)
	if cached, ok := h.cache.Get(key); ok {
		telemetry.PlanCacheHitsTotal.Inc()
		cached.Name = p.Name
		return p, cached
	}
	telemetry.PlanCacheMissesTotal.Inc()
	plan := planner.BuildPlan(now, p)
	telemetry.PlanGenerationsTotal.Inc()
	h.cache.Put(key, plan)
	return p, plan
}

type planResponse struct {
	Name       string         `json:"name"`
	Date       string         `json:"date"`
	Blocks     []domain.Block `json:"blocks"`
	Active     *string        `json:"active"`
	NextChange *time.Time     `json:"next_change,omitempty"`
	ShareURL   string         `json:"share_url"`
}

func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	p, plan := h.plan(r, now)

	resp := planResponse{
		Name:     plan.Name,
		Date:     plan.Day.Format("2006-01-02"),
		Blocks:   plan.Blocks,
		ShareURL: h.shareURL(r, p),
	}
	if resp.Blocks == nil {
		resp.Blocks = []domain.Block{}
	}
	if id, ok := domain.FindActiveBlock(plan.Blocks, now); ok {
		resp.Active = &id
	}
	if next := planner.NextChange(plan.Blocks, now); !next.IsZero() {
		resp.NextChange = &next
	}
	writeJSON(w, resp)
}

// ActiveBlock is the minute-tick poll target for the pages: it returns only
// the id of the block in effect right now, or null.
func (h *Handler) ActiveBlock(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	_, plan := h.plan(r, now)

	var resp struct {
		Active *string `json:"active"`
	}
	if id, ok := domain.FindActiveBlock(plan.Blocks, now); ok {
		resp.Active = &id
	}
	writeJSON(w, resp)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// shareURL builds the read-only /schedule link carrying the normalized
// params. The configured base URL wins; otherwise the request host is used.
func (h *Handler) shareURL(r *http.Request, p planner.Params) string {
	base := h.cfg.BaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return strings.TrimRight(base, "/") + "/schedule?" + p.Query().Encode()
}
