// Package depgraph evaluates blocked-by relationships between tickets.
package depgraph

import "github.com/kilianp07/releasepilot/core/model"

// Analysis is the derived dependency state of one ticket. Ready and blocked
// are recomputed on demand from the current status of each blocker; no state
// is stored on the ticket itself.
type Analysis struct {
	TicketID string
	Ready    bool
	Blocked  bool
	// InCycle flags a data error: the ticket participates in a blocked-by
	// cycle (including self-reference) and is treated as blocked.
	InCycle bool
	// MissingRefs lists blocker IDs that reference no known ticket. They are
	// reported but do not block.
	MissingRefs []string
	// BlocksCount is the number of tickets this ticket transitively blocks.
	BlocksCount int
}

type visitState int

const (
	unvisited visitState = iota
	inProgress
	visited
)

// Analyze computes the ready/blocked state of every ticket. Cycles are
// detected with a visited/in-progress walk and surfaced as flagged conditions
// on the affected tickets so the rest of the result stays usable; malformed
// input can never make the walk non-terminating.
func Analyze(tickets []model.Ticket) map[string]Analysis {
	byID := make(map[string]model.Ticket, len(tickets))
	for _, t := range tickets {
		byID[t.ID] = t
	}

	inCycle := detectCycles(tickets, byID)
	dependents := reverseEdges(tickets, byID)

	result := make(map[string]Analysis, len(tickets))
	for _, t := range tickets {
		a := Analysis{TicketID: t.ID, InCycle: inCycle[t.ID]}
		for _, ref := range t.BlockedBy {
			blocker, ok := byID[ref]
			if !ok {
				a.MissingRefs = append(a.MissingRefs, ref)
				continue
			}
			if !blocker.Status.IsTerminal() {
				a.Blocked = true
			}
		}
		if a.InCycle {
			a.Blocked = true
		}
		a.Ready = !a.Blocked
		a.BlocksCount = countReachable(t.ID, dependents)
		result[t.ID] = a
	}
	return result
}

// detectCycles runs a three-color DFS over blocked-by edges and marks every
// node on a back-edge path.
func detectCycles(tickets []model.Ticket, byID map[string]model.Ticket) map[string]bool {
	state := make(map[string]visitState, len(tickets))
	onCycle := make(map[string]bool)

	var walk func(id string, stack []string)
	walk = func(id string, stack []string) {
		state[id] = inProgress
		stack = append(stack, id)
		for _, ref := range byID[id].BlockedBy {
			if _, ok := byID[ref]; !ok {
				continue
			}
			switch state[ref] {
			case unvisited:
				walk(ref, stack)
			case inProgress:
				// Everything from ref to the top of the stack is on the cycle.
				for i := len(stack) - 1; i >= 0; i-- {
					onCycle[stack[i]] = true
					if stack[i] == ref {
						break
					}
				}
			}
		}
		state[id] = visited
	}

	for _, t := range tickets {
		if state[t.ID] == unvisited {
			walk(t.ID, nil)
		}
	}
	return onCycle
}

// reverseEdges builds blocker -> dependents adjacency.
func reverseEdges(tickets []model.Ticket, byID map[string]model.Ticket) map[string][]string {
	dependents := make(map[string][]string)
	for _, t := range tickets {
		for _, ref := range t.BlockedBy {
			if _, ok := byID[ref]; !ok || ref == t.ID {
				continue
			}
			dependents[ref] = append(dependents[ref], t.ID)
		}
	}
	return dependents
}

// countReachable counts distinct tickets reachable from id over dependent
// edges, excluding id itself. The visited set guards against cycles.
func countReachable(id string, dependents map[string][]string) int {
	seen := map[string]bool{id: true}
	stack := append([]string(nil), dependents[id]...)
	count := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		count++
		stack = append(stack, dependents[cur]...)
	}
	return count
}
