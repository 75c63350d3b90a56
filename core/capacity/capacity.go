// Package capacity converts a date range, team size and calendar exceptions
// into a usable work-day breakdown.
package capacity

import (
	"time"

	"github.com/kilianp07/releasepilot/core/calendar"
	"github.com/kilianp07/releasepilot/core/model"
)

// Breakdown is the structured output of a capacity computation.
type Breakdown struct {
	WorkingDays   int // Mon-Fri days minus holidays
	PTODays       int // member-days lost to PTO on working days
	AvailableDays int // max(0, WorkingDays - PTODays)
	CapacityDays  int // AvailableDays * team size
}

// Calculate computes the capacity of [start, end] for a team of teamSize.
//
// PTO entries are counted per entry occurrence: callers passing every
// member's entries get per-member subtraction summed, while callers passing
// an already-flattened team-wide list get aggregate granularity. A PTO day
// falling on a weekend or holiday contributes no additional reduction.
//
// A non-positive team size yields an all-zero breakdown rather than an error;
// team size comes from a user-editable field and must never crash a run.
func Calculate(start, end time.Time, teamSize int, holidays []model.Holiday, pto []model.PTOEntry) Breakdown {
	if teamSize <= 0 || model.Midnight(end).Before(model.Midnight(start)) {
		return Breakdown{}
	}
	working := calendar.WorkDays(start, end, holidays)
	ptoDays := calendar.PTOWorkDays(start, end, holidays, pto)
	available := working - ptoDays
	if available < 0 {
		available = 0
	}
	return Breakdown{
		WorkingDays:   working,
		PTODays:       ptoDays,
		AvailableDays: available,
		CapacityDays:  available * teamSize,
	}
}
