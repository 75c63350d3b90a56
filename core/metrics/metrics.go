package metrics

import "time"

// PlanResult summarizes one planning run for observability purposes.
type PlanResult struct {
	RunID             string
	Release           string
	Sprints           int
	ScheduledTickets  int
	OverflowTickets   int
	TotalBacklogDays  int
	TotalCapacityDays int
	FeasiblePercent   float64
	Time              time.Time
}

// MetricsSink records plan results. Additional event kinds are supported via
// the optional recorder interfaces below.
type MetricsSink interface {
	RecordPlanResult(res PlanResult) error
}

// OverflowEvent captures one ticket that could not be scheduled.
type OverflowEvent struct {
	RunID      string
	TicketID   string
	EffortDays int
	Time       time.Time
}

// OverflowRecorder records overflow tickets.
type OverflowRecorder interface {
	RecordOverflow(ev OverflowEvent) error
}

// ConflictEvent captures a double-booked assignee between two tickets.
type ConflictEvent struct {
	RunID       string
	TicketID    string
	OtherID     string
	Assignee    string
	OverlapDays int
	Time        time.Time
}

// ConflictRecorder records assignment conflicts.
type ConflictRecorder interface {
	RecordConflict(ev ConflictEvent) error
}

// UtilizationEvent is a per-member utilization snapshot.
type UtilizationEvent struct {
	RunID           string
	Member          string
	AvgAssignedDays float64
	AvgUtilization  float64
	Risk            string
	Time            time.Time
}

// UtilizationRecorder records member utilization snapshots.
type UtilizationRecorder interface {
	RecordUtilization(ev UtilizationEvent) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordPlanResult(PlanResult) error        { return nil }
func (NopSink) RecordOverflow(OverflowEvent) error       { return nil }
func (NopSink) RecordConflict(ConflictEvent) error       { return nil }
func (NopSink) RecordUtilization(UtilizationEvent) error { return nil }
