package planner

import (
	"strings"

	"github.com/kilianp07/releasepilot/core/calendar"
	"github.com/kilianp07/releasepilot/core/model"
	"github.com/kilianp07/releasepilot/core/velocity"
)

// Placements pins every scheduled ticket to concrete calendar dates. Each
// ticket starts on its sprint's first work day and runs for its
// velocity-adjusted duration, skipping weekends and holidays. Tickets sharing
// an assignee within a sprint will overlap until someone reschedules them;
// surfacing that is the conflict detector's job, not the planner's.
func (p *Planner) Placements(plan model.ReleasePlan) []model.Placement {
	var placements []model.Placement
	for _, s := range plan.Sprints {
		for _, t := range s.Tickets {
			member, ok := p.resolveAssignee(t.AssignedTo)
			mult := 1.0
			assignee := strings.TrimSpace(t.AssignedTo)
			if ok {
				mult = member.Velocity()
				assignee = member.Name
			}
			start := calendar.NextWorkDay(s.Start, p.cfg.Holidays)
			dur := velocity.ResolveDuration(t.EffortDays, mult)
			end := calendar.AddWorkDays(start, dur, p.cfg.Holidays)
			placements = append(placements, model.Placement{
				TicketID: t.ID,
				Assignee: assignee,
				Start:    start,
				End:      end,
			})
		}
	}
	return placements
}

// resolveAssignee matches a free-text assignee name against the roster.
func (p *Planner) resolveAssignee(raw string) (model.TeamMember, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return model.TeamMember{}, false
	}
	for _, m := range p.cfg.Team {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return model.TeamMember{}, false
}
