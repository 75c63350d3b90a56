package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/releasepilot/config"
	"github.com/kilianp07/releasepilot/core/conflict"
	"github.com/kilianp07/releasepilot/core/depgraph"
	"github.com/kilianp07/releasepilot/core/events"
	"github.com/kilianp07/releasepilot/core/insight"
	coremetrics "github.com/kilianp07/releasepilot/core/metrics"
	"github.com/kilianp07/releasepilot/core/model"
	"github.com/kilianp07/releasepilot/core/planner"
	"github.com/kilianp07/releasepilot/infra/logger"
	"github.com/kilianp07/releasepilot/infra/metrics"
	"github.com/kilianp07/releasepilot/internal/eventbus"
)

// Result bundles everything one planning run produces.
type Result struct {
	RunID     string
	Plan      model.ReleasePlan
	Conflicts map[string][]conflict.Conflict
	Analyses  map[string]depgraph.Analysis
	Insights  []insight.MemberInsight
}

// Service wires the planner, the event bus and the metrics sinks.
type Service struct {
	Planner  *planner.Planner
	tickets  []model.Ticket
	bus      *eventbus.Bus[any]
	sink     coremetrics.MetricsSink
	log      logger.Logger
	promPort string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("service")

	release, tickets, err := cfg.Release.ToModel()
	if err != nil {
		return nil, fmt.Errorf("release config: %w", err)
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	return &Service{
		Planner:  planner.New(release, logg),
		tickets:  tickets,
		bus:      eventbus.New[any](),
		sink:     sink,
		log:      logg,
		promPort: cfg.Metrics.PrometheusPort,
	}, nil
}

// Run executes one planning run, publishes its events and waits for the
// metrics collector to drain before returning.
func (s *Service) Run(ctx context.Context) (Result, error) {
	if s.promPort != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	done := metrics.StartEventCollector(ctx, s.bus, s.sink)

	res, err := s.compute()
	if err != nil {
		s.bus.Close()
		<-done
		return Result{}, err
	}

	s.publish(res)
	s.recordInsights(res)

	s.bus.Close()
	select {
	case <-done:
	case <-ctx.Done():
	}
	if s.promPort != "" {
		// Keep the exposition endpoint scrapeable until shutdown.
		<-ctx.Done()
	}
	return res, nil
}

// Compute runs the planning pipeline without touching the bus or sinks. It is
// what the one-shot CLI commands use.
func (s *Service) Compute() (Result, error) { return s.compute() }

func (s *Service) compute() (Result, error) {
	runID := uuid.NewString()
	plan, err := s.Planner.BuildPlan(s.tickets)
	if err != nil {
		return Result{}, err
	}
	placements := s.Planner.Placements(plan)
	cfg := s.Planner.Config()

	res := Result{
		RunID:     runID,
		Plan:      plan,
		Conflicts: conflict.Detect(placements),
		Analyses:  depgraph.Analyze(s.tickets),
		Insights:  insight.Aggregate(insight.LoadsFromPlan(plan, cfg.Team, cfg.Holidays)),
	}
	s.log.Infof("plan %s computed: %d sprints, %d scheduled, %d overflow, %.1f%% feasible",
		plan.Release, len(plan.Sprints), plan.ScheduledCount(), len(plan.Overflow), plan.FeasiblePercent)
	return res, nil
}

func (s *Service) publish(res Result) {
	now := time.Now()
	s.bus.Publish(events.PlanComputed{RunID: res.RunID, Plan: res.Plan, Time: now})
	for _, t := range res.Plan.Overflow {
		s.bus.Publish(events.OverflowDetected{RunID: res.RunID, Ticket: t, Time: now})
	}
	for _, ticketID := range sortedKeys(res.Conflicts) {
		for _, c := range res.Conflicts[ticketID] {
			// Pairs appear mirrored in the conflict map; publish each once.
			if c.TicketID < c.OtherID {
				s.bus.Publish(events.ConflictDetected{RunID: res.RunID, Conflict: c, Time: now})
			}
		}
	}
}

// recordInsights pushes utilization snapshots straight to the sink: they are
// derived reporting data, not pipeline events.
func (s *Service) recordInsights(res Result) {
	r, ok := s.sink.(coremetrics.UtilizationRecorder)
	if !ok {
		return
	}
	now := time.Now()
	for _, ins := range res.Insights {
		_ = r.RecordUtilization(coremetrics.UtilizationEvent{
			RunID:           res.RunID,
			Member:          ins.Member,
			AvgAssignedDays: ins.AvgAssignedDays,
			AvgUtilization:  ins.AvgUtilization,
			Risk:            ins.Risk.String(),
			Time:            now,
		})
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
