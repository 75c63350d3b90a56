package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/releasepilot/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	feasibility *prometheus.GaugeVec
	overflow    *prometheus.GaugeVec
	conflicts   prometheus.Counter
	utilization *prometheus.GaugeVec
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The exposition server is started separately using
// cfg.PrometheusPort.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of planning runs",
	}, []string{"release"})
	feasibility := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plan_feasibility_percent",
		Help: "Capacity over backlog effort of the last plan, capped at 100",
	}, []string{"release"})
	overflow := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plan_overflow_tickets",
		Help: "Tickets that fit no sprint in the last plan",
	}, []string{"release"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_conflicts_total",
		Help: "Total number of assignment conflicts detected",
	})
	utilization := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "member_utilization_percent",
		Help: "Average utilization per team member across sprints",
	}, []string{"member"})

	s := &PromSink{runs: runs, feasibility: feasibility, overflow: overflow, conflicts: conflicts, utilization: utilization}
	if err := register(reg, &s.runs); err != nil {
		return nil, err
	}
	if err := register(reg, &s.feasibility); err != nil {
		return nil, err
	}
	if err := register(reg, &s.overflow); err != nil {
		return nil, err
	}
	if err := register(reg, &s.conflicts); err != nil {
		return nil, err
	}
	if err := register(reg, &s.utilization); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds the collector, reusing an existing one when it was already
// registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	if err := reg.Register(*c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*c = are.ExistingCollector.(C)
			return nil
		}
		return err
	}
	return nil
}

// RecordPlanResult updates run, feasibility and overflow metrics.
func (s *PromSink) RecordPlanResult(res coremetrics.PlanResult) error {
	s.runs.WithLabelValues(res.Release).Inc()
	s.feasibility.WithLabelValues(res.Release).Set(res.FeasiblePercent)
	s.overflow.WithLabelValues(res.Release).Set(float64(res.OverflowTickets))
	return nil
}

// RecordConflict increments the conflict counter.
func (s *PromSink) RecordConflict(coremetrics.ConflictEvent) error {
	s.conflicts.Inc()
	return nil
}

// RecordUtilization sets the per-member utilization gauge.
func (s *PromSink) RecordUtilization(ev coremetrics.UtilizationEvent) error {
	s.utilization.WithLabelValues(ev.Member).Set(ev.AvgUtilization)
	return nil
}
