// Package conflict scans ticket placements for double-booked assignees.
package conflict

import (
	"strings"

	"github.com/kilianp07/releasepilot/core/model"
)

// Conflict records an overlapping commitment between two tickets for one
// assignee. OverlapDays counts raw calendar days, not work days; callers
// needing work-day overlap post-filter.
type Conflict struct {
	TicketID    string
	OtherID     string
	Assignee    string
	OverlapDays int
}

// Detect finds per-assignee overlapping date ranges and reports each overlap
// on both tickets involved. Unassigned placements are never compared. The
// pairwise scan is O(n^2) per assignee bucket, which is fine for per-release
// ticket counts; if scale ever demands it, sort each bucket by start date and
// sweep once instead of changing this contract.
func Detect(placements []model.Placement) map[string][]Conflict {
	buckets := make(map[string][]model.Placement)
	for _, p := range placements {
		assignee := strings.TrimSpace(p.Assignee)
		if assignee == "" {
			continue
		}
		buckets[assignee] = append(buckets[assignee], p)
	}

	conflicts := make(map[string][]Conflict)
	for assignee, group := range buckets {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				days := overlapDays(a, b)
				if days <= 0 {
					continue
				}
				conflicts[a.TicketID] = append(conflicts[a.TicketID], Conflict{
					TicketID: a.TicketID, OtherID: b.TicketID, Assignee: assignee, OverlapDays: days,
				})
				conflicts[b.TicketID] = append(conflicts[b.TicketID], Conflict{
					TicketID: b.TicketID, OtherID: a.TicketID, Assignee: assignee, OverlapDays: days,
				})
			}
		}
	}
	return conflicts
}

// overlapDays returns the inclusive calendar-day overlap of two placements,
// or zero when they are disjoint.
func overlapDays(a, b model.Placement) int {
	aStart, aEnd := model.Midnight(a.Start), model.Midnight(a.End)
	bStart, bEnd := model.Midnight(b.Start), model.Midnight(b.End)
	if aStart.After(bEnd) || bStart.After(aEnd) {
		return 0
	}
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return int(end.Sub(start).Hours()/24) + 1
}
