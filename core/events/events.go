// Package events defines the payloads exchanged on the internal event bus
// between the planning pipeline and its observers.
package events

import (
	"time"

	"github.com/kilianp07/releasepilot/core/conflict"
	"github.com/kilianp07/releasepilot/core/model"
)

// PlanComputed is published after every planning run.
type PlanComputed struct {
	RunID string
	Plan  model.ReleasePlan
	Time  time.Time
}

// OverflowDetected is published once per ticket that fit no sprint.
type OverflowDetected struct {
	RunID  string
	Ticket model.Ticket
	Time   time.Time
}

// ConflictDetected is published once per conflicting ticket pair entry.
type ConflictDetected struct {
	RunID    string
	Conflict conflict.Conflict
	Time     time.Time
}
