package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/releasepilot/core/metrics"
	"github.com/kilianp07/releasepilot/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlanResult writes the planning run summary as a point.
func (s *InfluxSink) RecordPlanResult(res coremetrics.PlanResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_run").
		AddTag("run_id", res.RunID).
		AddTag("release", res.Release).
		AddField("sprints", res.Sprints).
		AddField("scheduled_tickets", res.ScheduledTickets).
		AddField("overflow_tickets", res.OverflowTickets).
		AddField("backlog_days", res.TotalBacklogDays).
		AddField("capacity_days", res.TotalCapacityDays).
		AddField("feasible_percent", round3(res.FeasiblePercent)).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordOverflow writes one point per unschedulable ticket.
func (s *InfluxSink) RecordOverflow(ev coremetrics.OverflowEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_overflow").
		AddTag("run_id", ev.RunID).
		AddTag("ticket_id", ev.TicketID).
		AddField("effort_days", ev.EffortDays).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflict writes one point per conflicting ticket pair entry.
func (s *InfluxSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_conflict").
		AddTag("run_id", ev.RunID).
		AddTag("ticket_id", ev.TicketID).
		AddTag("other_id", ev.OtherID).
		AddTag("assignee", ev.Assignee).
		AddField("overlap_days", ev.OverlapDays).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordUtilization writes a per-member utilization snapshot.
func (s *InfluxSink) RecordUtilization(ev coremetrics.UtilizationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("member_utilization").
		AddTag("run_id", ev.RunID).
		AddTag("member", ev.Member).
		AddTag("risk", ev.Risk).
		AddField("avg_assigned_days", round3(ev.AvgAssignedDays)).
		AddField("avg_utilization", round3(ev.AvgUtilization)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
