package http

import (
	"net/http"
	"strconv"

	"github.com/lully/dayplan/internal/domain"
	"github.com/lully/dayplan/internal/usecase/planner"
)

type blockRow struct {
	ID     string
	Type   domain.BlockType
	Start  string
	End    string
	Active bool
}

type schedulePageData struct {
	Name            string
	Rows            []blockRow
	HasPlan         bool
	HasNightRoutine bool
	HiddenCount     int
	ShowPast        bool
	TogglePastURL   string
	PollURL         string
}

type adminPageData struct {
	Name        string
	First       string
	Interval    string
	Last        string
	Rows        []blockRow
	HasPlan     bool
	ShareURL    string
	ScheduleURL string
	PollURL     string
}

// SchedulePage is the read-only caregiver view: upcoming blocks with the
// active one highlighted. Past blocks are hidden unless past=1.
func (h *Handler) SchedulePage(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	p, plan := h.plan(r, now)
	activeID, _ := domain.FindActiveBlock(plan.Blocks, now)

	visible, hidden := planner.Upcoming(plan.Blocks, now)
	showPast := r.URL.Query().Get("past") == "1"
	shown := visible
	if showPast {
		shown = plan.Blocks
	}

	toggle := "/schedule?" + p.Query().Encode()
	if !showPast {
		toggle += "&past=1"
	}

	h.render(w, "schedule.html", schedulePageData{
		Name:            plan.Name,
		Rows:            h.rows(shown, activeID),
		HasPlan:         len(shown) > 0,
		HasNightRoutine: planner.HasNightRoutine(plan.Blocks),
		HiddenCount:     hidden,
		ShowPast:        showPast,
		TogglePastURL:   toggle,
		PollURL:         "/api/plan/active?" + p.Query().Encode(),
	})
}

// AdminPage shows the configuration form and a full-day preview of what
// caregivers will see once the link is shared.
func (h *Handler) AdminPage(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	p, plan := h.plan(r, now)
	activeID, _ := domain.FindActiveBlock(plan.Blocks, now)

	h.render(w, "admin.html", adminPageData{
		Name:        p.Name,
		First:       p.First,
		Interval:    strconv.FormatFloat(p.IntervalHours, 'f', -1, 64),
		Last:        p.Last,
		Rows:        h.rows(plan.Blocks, activeID),
		HasPlan:     len(plan.Blocks) > 0,
		ShareURL:    h.shareURL(r, p),
		ScheduleURL: "/schedule?" + p.Query().Encode(),
		PollURL:     "/api/plan/active?" + p.Query().Encode(),
	})
}

func (h *Handler) rows(blocks []domain.Block, activeID string) []blockRow {
	rows := make([]blockRow, 0, len(blocks))
	for _, b := range blocks {
		end := "—"
		if b.End != nil {
			end = formatClock(*b.End)
		}
		rows = append(rows, blockRow{
			ID:     b.ID,
			Type:   b.Type,
			Start:  formatClock(b.Start),
			End:    end,
			Active: b.ID == activeID,
		})
	}
	return rows
}
