package metrics

import (
	"context"
	"time"

	"github.com/kilianp07/releasepilot/core/events"
	coremetrics "github.com/kilianp07/releasepilot/core/metrics"
	"github.com/kilianp07/releasepilot/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// planning events. It stops when the context is canceled or the bus closes;
// the returned channel is closed once the collector has drained.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[any], sink coremetrics.MetricsSink) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				record(sink, ev)
			}
		}
	}()
	return done
}

func record(sink coremetrics.MetricsSink, ev any) {
	switch e := ev.(type) {
	case events.PlanComputed:
		_ = sink.RecordPlanResult(coremetrics.PlanResult{
			RunID:             e.RunID,
			Release:           e.Plan.Release,
			Sprints:           len(e.Plan.Sprints),
			ScheduledTickets:  e.Plan.ScheduledCount(),
			OverflowTickets:   len(e.Plan.Overflow),
			TotalBacklogDays:  e.Plan.TotalBacklogDays,
			TotalCapacityDays: e.Plan.TotalCapacityDays,
			FeasiblePercent:   e.Plan.FeasiblePercent,
			Time:              eventTime(e.Time),
		})
	case events.OverflowDetected:
		if r, ok := sink.(coremetrics.OverflowRecorder); ok {
			_ = r.RecordOverflow(coremetrics.OverflowEvent{
				RunID:      e.RunID,
				TicketID:   e.Ticket.ID,
				EffortDays: e.Ticket.Effort(),
				Time:       eventTime(e.Time),
			})
		}
	case events.ConflictDetected:
		if r, ok := sink.(coremetrics.ConflictRecorder); ok {
			_ = r.RecordConflict(coremetrics.ConflictEvent{
				RunID:       e.RunID,
				TicketID:    e.Conflict.TicketID,
				OtherID:     e.Conflict.OtherID,
				Assignee:    e.Conflict.Assignee,
				OverlapDays: e.Conflict.OverlapDays,
				Time:        eventTime(e.Time),
			})
		}
	}
}

func eventTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
