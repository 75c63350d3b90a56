package planner

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kilianp07/releasepilot/core/model"
)

func janRelease() model.ReleaseConfig {
	return model.ReleaseConfig{
		Name:             "2025.1",
		Start:            model.Date(2025, time.January, 6),
		End:              model.Date(2025, time.January, 31),
		SprintLengthDays: 10,
		Developers:       2,
	}
}

func ticketIDs(plan model.ReleasePlan) map[string]int {
	seen := map[string]int{}
	for _, s := range plan.Sprints {
		for _, t := range s.Tickets {
			seen[t.ID]++
		}
	}
	for _, t := range plan.Overflow {
		seen[t.ID]++
	}
	return seen
}

func TestSprintSlicing(t *testing.T) {
	p := New(janRelease(), nil)
	sprints, err := p.Sprints()
	if err != nil {
		t.Fatalf("sprints: %v", err)
	}
	if len(sprints) != 3 {
		t.Fatalf("expected 3 sprints got %d", len(sprints))
	}
	// 10/10/6 calendar days, final sprint clamped to the release end.
	if !sprints[0].Start.Equal(model.Date(2025, time.January, 6)) || !sprints[0].End.Equal(model.Date(2025, time.January, 15)) {
		t.Fatalf("sprint 1 range wrong: %v - %v", sprints[0].Start, sprints[0].End)
	}
	if !sprints[1].Start.Equal(model.Date(2025, time.January, 16)) || !sprints[1].End.Equal(model.Date(2025, time.January, 25)) {
		t.Fatalf("sprint 2 range wrong: %v - %v", sprints[1].Start, sprints[1].End)
	}
	if !sprints[2].Start.Equal(model.Date(2025, time.January, 26)) || !sprints[2].End.Equal(model.Date(2025, time.January, 31)) {
		t.Fatalf("sprint 3 range wrong: %v - %v", sprints[2].Start, sprints[2].End)
	}
	// Contiguous, non-overlapping ranges.
	for i := 1; i < len(sprints); i++ {
		if !sprints[i].Start.Equal(sprints[i-1].End.AddDate(0, 0, 1)) {
			t.Fatalf("sprints %d and %d not contiguous", i-1, i)
		}
	}
	for _, s := range sprints {
		if s.CapacityDays != s.WorkingDays*2 {
			t.Fatalf("capacity must be working days x team size: %+v", s)
		}
	}
}

func TestSprintsSingleWindow(t *testing.T) {
	cfg := janRelease()
	cfg.SprintLengthDays = 0
	sprints, err := New(cfg, nil).Sprints()
	if err != nil {
		t.Fatalf("sprints: %v", err)
	}
	if len(sprints) != 1 {
		t.Fatalf("expected single window got %d", len(sprints))
	}
	if !sprints[0].Start.Equal(cfg.Start) || !sprints[0].End.Equal(cfg.End) {
		t.Fatalf("window range wrong: %+v", sprints[0])
	}
}

func TestBuildPlanEndBeforeStart(t *testing.T) {
	cfg := janRelease()
	cfg.Start, cfg.End = cfg.End, cfg.Start
	if _, err := New(cfg, nil).BuildPlan(nil); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart got %v", err)
	}
}

func TestBuildPlanConservation(t *testing.T) {
	// 40 effort-days against roughly 32 capacity-days: some tickets must
	// overflow, but every ticket appears exactly once.
	var tickets []model.Ticket
	for i := 0; i < 8; i++ {
		tickets = append(tickets, model.Ticket{ID: string(rune('a' + i)), EffortDays: 5, Priority: 1})
	}
	plan, err := New(janRelease(), nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	seen := ticketIDs(plan)
	if len(seen) != len(tickets) {
		t.Fatalf("expected %d distinct tickets got %d", len(tickets), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("ticket %s appears %d times", id, n)
		}
	}
	if plan.ScheduledCount()+len(plan.Overflow) != len(tickets) {
		t.Fatalf("conservation violated: %d + %d != %d", plan.ScheduledCount(), len(plan.Overflow), len(tickets))
	}
	// No sprint exceeds its own capacity.
	for _, s := range plan.Sprints {
		if s.AssignedDays() > s.CapacityDays {
			t.Fatalf("%s overfilled: %d > %d", s.Name, s.AssignedDays(), s.CapacityDays)
		}
	}
	if plan.TotalBacklogDays != 40 {
		t.Fatalf("backlog total wrong: %d", plan.TotalBacklogDays)
	}
}

func TestBuildPlanDeterminism(t *testing.T) {
	tickets := []model.Ticket{
		{ID: "t1", EffortDays: 3, Priority: 2},
		{ID: "t2", EffortDays: 3, Priority: 1},
		{ID: "t3", EffortDays: 3, Priority: 2},
		{ID: "t4", EffortDays: 8, Priority: 1},
	}
	p := New(janRelease(), nil)
	a, err := p.BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	b, err := p.BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different plans")
	}
}

func TestBuildPlanStableTieBreak(t *testing.T) {
	tickets := []model.Ticket{
		{ID: "first", EffortDays: 2, Priority: 1},
		{ID: "second", EffortDays: 2, Priority: 1},
		{ID: "third", EffortDays: 2, Priority: 1},
	}
	plan, err := New(janRelease(), nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	got := plan.Sprints[0].Tickets
	if len(got) != 3 || got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Fatalf("tie break not stable: %+v", got)
	}
}

func TestBuildPlanOversizedTicketOverflows(t *testing.T) {
	tickets := []model.Ticket{{ID: "huge", EffortDays: 1000, Priority: 1}}
	plan, err := New(janRelease(), nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Overflow) != 1 || plan.Overflow[0].ID != "huge" {
		t.Fatalf("oversized ticket must overflow: %+v", plan.Overflow)
	}
	if plan.ScheduledCount() != 0 {
		t.Fatalf("nothing should be scheduled")
	}
}

func TestBuildPlanSkipsToLaterSprint(t *testing.T) {
	// The big ticket no longer fits sprint 1 after the small ones land there,
	// so it must be tried against sprint 2 rather than dropped.
	cfg := janRelease()
	tickets := []model.Ticket{
		{ID: "s1", EffortDays: 10, Priority: 1},
		{ID: "s2", EffortDays: 5, Priority: 1},
		{ID: "big", EffortDays: 12, Priority: 2},
	}
	plan, err := New(cfg, nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Overflow) != 0 {
		t.Fatalf("unexpected overflow: %+v", plan.Overflow)
	}
	var bigSprint int
	for _, s := range plan.Sprints {
		for _, tk := range s.Tickets {
			if tk.ID == "big" {
				bigSprint = s.Index
			}
		}
	}
	if bigSprint != 1 {
		t.Fatalf("big ticket should land in sprint 2, got sprint index %d", bigSprint)
	}
}

func TestBuildPlanZeroCapacitySprint(t *testing.T) {
	cfg := janRelease()
	// Sprint 1 fully consumed by a holiday: it accepts nothing and passes the
	// backlog to sprint 2.
	cfg.Holidays = []model.Holiday{{Name: "shutdown", Start: model.Date(2025, time.January, 6), End: model.Date(2025, time.January, 15)}}
	tickets := []model.Ticket{{ID: "t1", EffortDays: 4, Priority: 1}}
	plan, err := New(cfg, nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.Sprints[0].CapacityDays != 0 || len(plan.Sprints[0].Tickets) != 0 {
		t.Fatalf("sprint 1 should be empty with zero capacity: %+v", plan.Sprints[0])
	}
	if len(plan.Sprints[1].Tickets) != 1 {
		t.Fatalf("ticket should move to sprint 2: %+v", plan.Sprints[1])
	}
}

func TestBuildPlanFeasibility(t *testing.T) {
	plan, err := New(janRelease(), nil).BuildPlan(nil)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.FeasiblePercent != 100 {
		t.Fatalf("empty backlog should be 100%% feasible, got %v", plan.FeasiblePercent)
	}

	tickets := []model.Ticket{{ID: "t", EffortDays: plan.TotalCapacityDays * 2, Priority: 1}}
	plan2, err := New(janRelease(), nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan2.FeasiblePercent != 50 {
		t.Fatalf("expected 50%% feasible got %v", plan2.FeasiblePercent)
	}
}

func TestBuildPlanClampsEffort(t *testing.T) {
	tickets := []model.Ticket{{ID: "zero", EffortDays: 0, Priority: 1}}
	plan, err := New(janRelease(), nil).BuildPlan(tickets)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.TotalBacklogDays != 1 {
		t.Fatalf("zero effort must clamp to 1 day, got %d", plan.TotalBacklogDays)
	}
	if plan.ScheduledCount() != 1 {
		t.Fatalf("clamped ticket should schedule")
	}
}
