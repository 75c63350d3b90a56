package planner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kilianp07/releasepilot/core/capacity"
	"github.com/kilianp07/releasepilot/core/logger"
	"github.com/kilianp07/releasepilot/core/model"
)

// ErrEndBeforeStart is returned when no sprint sequence can be derived from
// the configured window.
var ErrEndBeforeStart = errors.New("release end precedes release start")

// Planner assigns a prioritized backlog into the sprints of one release.
// Every computation is a pure function over the immutable configuration;
// repeated runs with identical input yield identical plans.
type Planner struct {
	cfg model.ReleaseConfig
	log logger.Logger
}

// New creates a Planner for the given release configuration.
func New(cfg model.ReleaseConfig, log logger.Logger) *Planner {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Planner{cfg: cfg, log: log}
}

// Config returns the release configuration the planner was built with.
func (p *Planner) Config() model.ReleaseConfig { return p.cfg }

// Sprints slices the release window into consecutive time boxes and computes
// each box's capacity. The final sprint is clamped to the release end and may
// be shorter than a full period. A zero sprint length yields a single sprint
// covering the whole window.
func (p *Planner) Sprints() ([]model.Sprint, error) {
	start := model.Midnight(p.cfg.Start)
	end := model.Midnight(p.cfg.End)
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	if p.cfg.SprintLengthDays < 0 {
		return nil, fmt.Errorf("sprint length must be positive, got %d", p.cfg.SprintLengthDays)
	}

	pto := p.allPTO()
	length := p.cfg.SprintLengthDays
	if length == 0 {
		b := capacity.Calculate(start, end, p.cfg.Developers, p.cfg.Holidays, pto)
		return []model.Sprint{{
			Index:        0,
			Name:         "Release window",
			Start:        start,
			End:          end,
			WorkingDays:  b.WorkingDays,
			PTODays:      b.PTODays,
			CapacityDays: b.CapacityDays,
		}}, nil
	}

	var sprints []model.Sprint
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, length) {
		sprintEnd := cur.AddDate(0, 0, length-1)
		if sprintEnd.After(end) {
			sprintEnd = end
		}
		b := capacity.Calculate(cur, sprintEnd, p.cfg.Developers, p.cfg.Holidays, pto)
		idx := len(sprints)
		sprints = append(sprints, model.Sprint{
			Index:        idx,
			Name:         fmt.Sprintf("Sprint %d", idx+1),
			Start:        cur,
			End:          sprintEnd,
			WorkingDays:  b.WorkingDays,
			PTODays:      b.PTODays,
			CapacityDays: b.CapacityDays,
		})
	}
	return sprints, nil
}

// BuildPlan derives the sprint sequence and greedily assigns tickets in
// priority order. Each ticket lands in the first sprint, in time order, with
// enough remaining capacity; tickets are never split. Tickets that fit
// nowhere end up in the overflow list, which is an expected outcome, not an
// error.
func (p *Planner) BuildPlan(tickets []model.Ticket) (model.ReleasePlan, error) {
	sprints, err := p.Sprints()
	if err != nil {
		return model.ReleasePlan{}, err
	}

	backlog := make([]model.Ticket, len(tickets))
	copy(backlog, tickets)
	// Stable sort keeps input order on priority ties so repeated runs over
	// the same backlog are deterministic.
	sort.SliceStable(backlog, func(i, j int) bool {
		return backlog[i].Priority < backlog[j].Priority
	})

	used := make([]int, len(sprints))
	var overflow []model.Ticket
	for _, t := range backlog {
		placed := false
		for i := range sprints {
			if used[i]+t.Effort() <= sprints[i].CapacityDays {
				sprints[i].Tickets = append(sprints[i].Tickets, t)
				used[i] += t.Effort()
				placed = true
				break
			}
		}
		if !placed {
			overflow = append(overflow, t)
		}
	}

	totalBacklog := 0
	for _, t := range tickets {
		totalBacklog += t.Effort()
	}
	totalCapacity := 0
	for _, s := range sprints {
		totalCapacity += s.CapacityDays
	}

	feasible := 100.0
	if totalBacklog > 0 {
		feasible = float64(totalCapacity) / float64(totalBacklog) * 100
		if feasible > 100 {
			feasible = 100
		}
	}

	plan := model.ReleasePlan{
		Release:           p.cfg.Name,
		Sprints:           sprints,
		Overflow:          overflow,
		TotalBacklogDays:  totalBacklog,
		TotalCapacityDays: totalCapacity,
		FeasiblePercent:   feasible,
	}
	p.log.Debugw("plan computed", map[string]any{
		"sprints":   len(sprints),
		"scheduled": plan.ScheduledCount(),
		"overflow":  len(overflow),
		"feasible":  feasible,
	})
	return plan, nil
}

// allPTO flattens every roster member's PTO entries. Each member's day counts
// once, so overlapping absences across members subtract per person.
func (p *Planner) allPTO() []model.PTOEntry {
	var entries []model.PTOEntry
	for _, m := range p.cfg.Team {
		entries = append(entries, m.PTO...)
	}
	return entries
}
