package model

import "time"

// ReleaseConfig defines the planning window and the resources available in it.
type ReleaseConfig struct {
	Name             string
	Start            time.Time
	End              time.Time
	SprintLengthDays int // 0 means a single unscheduled window
	Developers       int // uniform capacity multiplier
	Holidays         []Holiday
	Team             []TeamMember
}

// Sprint is one time box of a release, carrying its own computed capacity.
type Sprint struct {
	Index        int
	Name         string
	Start        time.Time
	End          time.Time
	WorkingDays  int
	PTODays      int
	CapacityDays int
	Tickets      []Ticket
}

// AssignedDays returns the effort already packed into the sprint.
func (s Sprint) AssignedDays() int {
	total := 0
	for _, t := range s.Tickets {
		total += t.Effort()
	}
	return total
}

// ReleasePlan is the result of one planning run. It carries no hidden state:
// identical inputs always produce a structurally identical plan.
type ReleasePlan struct {
	Release           string
	Sprints           []Sprint
	Overflow          []Ticket
	TotalBacklogDays  int
	TotalCapacityDays int
	FeasiblePercent   float64
}

// ScheduledCount returns the number of tickets placed into sprints.
func (p ReleasePlan) ScheduledCount() int {
	n := 0
	for _, s := range p.Sprints {
		n += len(s.Tickets)
	}
	return n
}

// Placement is a ticket pinned to concrete calendar dates for one assignee.
// Dates are inclusive calendar days.
type Placement struct {
	TicketID string
	Assignee string // empty when the ticket is unassigned
	Start    time.Time
	End      time.Time
}
