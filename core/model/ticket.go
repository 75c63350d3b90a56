package model

import "strings"

// Status defines the workflow state of a ticket.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusInReview
	StatusDone
	StatusCancelled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in_progress"
	case StatusInReview:
		return "in_review"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the status releases tickets blocked on this one.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// ParseStatus maps a raw status string to a Status. Unknown values default to
// todo so that user-edited fields never fail a planning run.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in_progress", "in-progress", "doing":
		return StatusInProgress
	case "in_review", "in-review", "review":
		return StatusInReview
	case "done", "closed", "completed":
		return StatusDone
	case "cancelled", "canceled", "wont_do":
		return StatusCancelled
	default:
		return StatusTodo
	}
}

// Ticket is a unit of backlog work submitted to the planner. It is treated as
// immutable for the duration of a planning run.
type Ticket struct {
	ID         string
	Title      string
	Epic       string
	EffortDays int // raw estimate before velocity adjustment
	Priority   int // lower schedules earlier
	AssignedTo string // free-text assignee name, may be empty
	Status     Status
	BlockedBy  []string
}

// Effort returns the effort estimate clamped to the one-day minimum.
func (t Ticket) Effort() int {
	if t.EffortDays <= 0 {
		return 1
	}
	return t.EffortDays
}
