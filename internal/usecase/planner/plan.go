package planner

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lully/dayplan/internal/domain"
)

// Params are the normalized inputs of a day plan. They round-trip losslessly
// through the four link-carrier keys (name, first, interval, last).
type Params struct {
	Name          string
	First         string
	Last          string
	IntervalHours float64
}

// Defaults seed normalization fallbacks, typically from server config.
// Zero values fall back to the built-in domain defaults.
type Defaults struct {
	Name          string
	First         string
	Last          string
	IntervalHours float64
}

func (d Defaults) filled() Defaults {
	if d.Name == "" {
		d.Name = domain.DefaultName
	}
	if d.First == "" {
		d.First = domain.DefaultFirstFeed
	}
	if d.Last == "" {
		d.Last = domain.DefaultLastFeed
	}
	if d.IntervalHours <= 0 {
		d.IntervalHours = domain.DefaultIntervalHours
	}
	return d
}

// ParamsFromQuery normalizes the raw carrier values. Malformed times and
// intervals silently fall back; there is no error path here.
func ParamsFromQuery(q url.Values, d Defaults) Params {
	d = d.filled()
	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		name = d.Name
	}
	interval := d.IntervalHours
	if raw := q.Get("interval"); raw != "" {
		interval = domain.NormalizeInterval(raw)
	}
	return Params{
		Name:          name,
		First:         domain.NormalizeTimeInput(q.Get("first"), d.First),
		Last:          domain.NormalizeTimeInput(q.Get("last"), d.Last),
		IntervalHours: interval,
	}
}

// Query serializes the params back into the four carrier keys.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("name", p.Name)
	q.Set("first", p.First)
	q.Set("interval", formatInterval(p.IntervalHours))
	q.Set("last", p.Last)
	return q
}

// CacheKey identifies a generated plan for one calendar day. The name is
// display-only and excluded, so renaming does not invalidate the cache.
func (p Params) CacheKey(day time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s", day.Format("2006-01-02"), p.First, formatInterval(p.IntervalHours), p.Last)
}

func formatInterval(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// BuildPlan generates the day plan for now's calendar date in now's location.
// Params are already normalized, so the time parses cannot fail.
func BuildPlan(now time.Time, p Params) domain.Plan {
	first, _ := domain.ParseTimeOfDay(p.First)
	last, _ := domain.ParseTimeOfDay(p.Last)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return domain.Plan{
		Name:   p.Name,
		Day:    day,
		Blocks: domain.GenerateSchedule(day, first, p.IntervalHours, last),
	}
}

// NextChange returns the earliest block boundary strictly after now, or the
// zero time once the plan has settled into its final block.
func NextChange(blocks []domain.Block, now time.Time) time.Time {
	var next time.Time
	consider := func(t time.Time) {
		if t.After(now) && (next.IsZero() || t.Before(next)) {
			next = t
		}
	}
	for _, b := range blocks {
		consider(b.Start)
		if b.End != nil {
			consider(*b.End)
		}
	}
	return next
}

// Upcoming filters out blocks that already ended, returning the remaining
// blocks and the hidden count. The open-ended night sleep is always kept.
func Upcoming(blocks []domain.Block, now time.Time) ([]domain.Block, int) {
	hidden := 0
	visible := make([]domain.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.End != nil && !b.End.After(now) {
			hidden++
			continue
		}
		visible = append(visible, b)
	}
	return visible, hidden
}

// HasNightRoutine reports whether the plan includes a wind-down block.
func HasNightRoutine(blocks []domain.Block) bool {
	for _, b := range blocks {
		if b.Type == domain.BlockNightRoutine {
			return true
		}
	}
	return false
}
