package planner

import (
	"net/url"
	"testing"
	"time"

	"github.com/lully/dayplan/internal/domain"
)

func TestParamsFromQuery_Normalizes(t *testing.T) {
	q := url.Values{}
	q.Set("name", "  Maeve  ")
	q.Set("first", "06:30")
	q.Set("interval", "2.5")
	q.Set("last", "25:99")

	p := ParamsFromQuery(q, Defaults{})
	if p.Name != "Maeve" {
		t.Errorf("name: want Maeve, got %q", p.Name)
	}
	if p.First != "06:30" {
		t.Errorf("first: want 06:30, got %q", p.First)
	}
	if p.IntervalHours != 2.5 {
		t.Errorf("interval: want 2.5, got %v", p.IntervalHours)
	}
	if p.Last != domain.DefaultLastFeed {
		t.Errorf("last: want fallback %q, got %q", domain.DefaultLastFeed, p.Last)
	}
}

func TestParamsFromQuery_EmptyCarrier(t *testing.T) {
	p := ParamsFromQuery(url.Values{}, Defaults{})
	want := Params{
		Name:          domain.DefaultName,
		First:         domain.DefaultFirstFeed,
		Last:          domain.DefaultLastFeed,
		IntervalHours: domain.DefaultIntervalHours,
	}
	if p != want {
		t.Fatalf("want %+v, got %+v", want, p)
	}
}

func TestParamsFromQuery_ConfiguredDefaults(t *testing.T) {
	d := Defaults{Name: "Wren", First: "06:00", Last: "20:00", IntervalHours: 4}
	p := ParamsFromQuery(url.Values{"first": {"bogus"}}, d)
	if p.Name != "Wren" || p.First != "06:00" || p.Last != "20:00" || p.IntervalHours != 4 {
		t.Fatalf("configured defaults not applied: %+v", p)
	}
}

func TestParamsQueryRoundTrip(t *testing.T) {
	p := Params{Name: "Francis", First: "07:00", Last: "19:00", IntervalHours: 2.5}
	q := p.Query()
	if got := q.Get("interval"); got != "2.5" {
		t.Errorf("interval serialized as %q, want 2.5", got)
	}
	if back := ParamsFromQuery(q, Defaults{}); back != p {
		t.Fatalf("round trip changed params: %+v -> %+v", p, back)
	}
}

func TestBuildPlan(t *testing.T) {
	now := time.Date(2026, 3, 5, 11, 42, 0, 0, time.UTC)
	p := Params{Name: "Francis", First: "07:00", Last: "19:00", IntervalHours: 3}
	plan := BuildPlan(now, p)

	if plan.Name != "Francis" {
		t.Errorf("name: got %q", plan.Name)
	}
	if !plan.Day.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day: got %v", plan.Day)
	}
	if len(plan.Blocks) == 0 {
		t.Fatal("want a non-empty plan")
	}
	if !plan.Blocks[0].Start.Equal(time.Date(2026, 3, 5, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("first block anchored to %v, want today 07:00", plan.Blocks[0].Start)
	}
}

func TestBuildPlan_Degenerate(t *testing.T) {
	now := time.Date(2026, 3, 5, 11, 0, 0, 0, time.UTC)
	plan := BuildPlan(now, Params{Name: "Francis", First: "07:00", Last: "06:00", IntervalHours: 3})
	if len(plan.Blocks) != 0 {
		t.Fatalf("want empty plan for last before first, got %d blocks", len(plan.Blocks))
	}
}

func TestNextChange(t *testing.T) {
	now := time.Date(2026, 3, 5, 7, 10, 0, 0, time.UTC)
	p := Params{Name: "Francis", First: "07:00", Last: "19:00", IntervalHours: 3}
	plan := BuildPlan(now, p)

	next := NextChange(plan.Blocks, now)
	want := time.Date(2026, 3, 5, 7, 30, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next change: want %v, got %v", want, next)
	}

	// After the open-ended night sleep starts nothing changes anymore.
	settled := time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC)
	if next := NextChange(plan.Blocks, settled); !next.IsZero() {
		t.Errorf("want zero next change once settled, got %v", next)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 15, 0, 0, time.UTC)
	p := Params{Name: "Francis", First: "07:00", Last: "19:00", IntervalHours: 3}
	plan := BuildPlan(now, p)

	visible, hidden := Upcoming(plan.Blocks, now)
	// feed-0, awake-0, nap-0 ended by 10:00; feed-1 runs until 10:30.
	if hidden != 3 {
		t.Errorf("hidden: want 3, got %d", hidden)
	}
	if len(visible)+hidden != len(plan.Blocks) {
		t.Errorf("visible %d + hidden %d != total %d", len(visible), hidden, len(plan.Blocks))
	}
	if visible[0].ID != "feed-1" {
		t.Errorf("first visible: want feed-1, got %s", visible[0].ID)
	}
	for _, b := range visible {
		if b.Type == domain.BlockNightSleep && b.End != nil {
			t.Errorf("night sleep should stay open-ended")
		}
	}
}

func TestHasNightRoutine(t *testing.T) {
	now := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
	with := BuildPlan(now, Params{Name: "F", First: "07:00", Last: "19:00", IntervalHours: 3})
	if !HasNightRoutine(with.Blocks) {
		t.Error("want a night routine with a 3h grid")
	}
	without := BuildPlan(now, Params{Name: "F", First: "07:00", Last: "11:00", IntervalHours: 2})
	if HasNightRoutine(without.Blocks) {
		t.Error("want no night routine when the nap leaves no slack")
	}
}
