// Package insight aggregates allocator output into per-member utilization
// statistics and risk labels. It is read-only and advisory: nothing here may
// feed back into allocator decisions within the same run.
package insight

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/releasepilot/core/capacity"
	"github.com/kilianp07/releasepilot/core/model"
)

// RiskLevel buckets a member's average utilization.
type RiskLevel int

const (
	RiskLow    RiskLevel = iota // < 70%
	RiskMedium                  // 70-95%
	RiskHigh                    // > 95%
)

// String returns a human-readable representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SprintLoad captures one member's share of one sprint.
type SprintLoad struct {
	Member       string
	AssignedDays float64
	CapacityDays float64
}

// MemberInsight is the aggregated view of one member across sprints.
type MemberInsight struct {
	Member          string
	Sprints         int
	AvgAssignedDays float64
	AvgUtilization  float64 // percent
	Risk            RiskLevel
}

// Aggregate computes per-member averages across the provided sprint loads.
// Loads with zero assigned work and zero capacity carry no signal and are
// excluded. Output is sorted by member name for stable reporting.
func Aggregate(loads []SprintLoad) []MemberInsight {
	assigned := make(map[string][]float64)
	utilization := make(map[string][]float64)
	for _, l := range loads {
		if l.AssignedDays == 0 && l.CapacityDays <= 0 {
			continue
		}
		assigned[l.Member] = append(assigned[l.Member], l.AssignedDays)
		util := 100.0
		if l.CapacityDays > 0 {
			util = l.AssignedDays / l.CapacityDays * 100
		}
		utilization[l.Member] = append(utilization[l.Member], util)
	}

	insights := make([]MemberInsight, 0, len(assigned))
	for member, days := range assigned {
		avgUtil := stat.Mean(utilization[member], nil)
		insights = append(insights, MemberInsight{
			Member:          member,
			Sprints:         len(days),
			AvgAssignedDays: stat.Mean(days, nil),
			AvgUtilization:  avgUtil,
			Risk:            riskFor(avgUtil),
		})
	}
	sort.Slice(insights, func(i, j int) bool { return insights[i].Member < insights[j].Member })
	return insights
}

func riskFor(utilization float64) RiskLevel {
	switch {
	case utilization < 70:
		return RiskLow
	case utilization <= 95:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// LoadsFromPlan derives per-member sprint loads from a release plan. A
// member's capacity in a sprint is their own available work days after
// holidays and personal PTO; assigned days are the raw effort of tickets
// carrying their name.
func LoadsFromPlan(plan model.ReleasePlan, team []model.TeamMember, holidays []model.Holiday) []SprintLoad {
	var loads []SprintLoad
	for _, s := range plan.Sprints {
		for _, m := range team {
			b := capacity.Calculate(s.Start, s.End, 1, holidays, m.PTO)
			assigned := 0
			for _, t := range s.Tickets {
				if strings.EqualFold(strings.TrimSpace(t.AssignedTo), m.Name) {
					assigned += t.Effort()
				}
			}
			loads = append(loads, SprintLoad{
				Member:       m.Name,
				AssignedDays: float64(assigned),
				CapacityDays: float64(b.AvailableDays),
			})
		}
	}
	return loads
}
