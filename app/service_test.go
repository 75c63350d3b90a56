package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/releasepilot/config"
	"github.com/kilianp07/releasepilot/core/conflict"
	"github.com/kilianp07/releasepilot/core/factory"
	coremetrics "github.com/kilianp07/releasepilot/core/metrics"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Release: config.ReleaseConfig{
			Name:             "2025.1",
			Start:            "2025-01-06",
			End:              "2025-01-31",
			SprintLengthDays: 10,
			Developers:       2,
			Team: []config.MemberConfig{
				{Name: "Alice", Level: "senior"},
				{Name: "Bob", Level: "junior"},
			},
			Tickets: []config.TicketConfig{
				{ID: "T-1", Title: "Login flow", EffortDays: 5, Priority: 1, AssignedTo: "Alice"},
				{ID: "T-2", Title: "Billing", EffortDays: 5, Priority: 2, AssignedTo: "Bob"},
				{ID: "T-3", Title: "Search rework", EffortDays: 60, Priority: 3},
				{ID: "T-4", Title: "Cleanup", EffortDays: 2, Priority: 4, AssignedTo: "Alice", BlockedBy: []string{"T-1"}},
			},
		},
		Metrics: coremetrics.Config{Sinks: []factory.ModuleConfig{{Type: "nop"}}},
		Logging: config.LoggingConfig{Level: "error"},
	}
	cfg.Release.SetDefaults()
	cfg.Logging.SetDefaults()
	return cfg
}

func TestServiceCompute(t *testing.T) {
	svc, err := New(testConfig())
	require.NoError(t, err)

	res, err := svc.Compute()
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "2025.1", res.Plan.Release)
	assert.Len(t, res.Plan.Sprints, 3)
	// T-3 needs 60 days against a 40-day window and must overflow.
	require.Len(t, res.Plan.Overflow, 1)
	assert.Equal(t, "T-3", res.Plan.Overflow[0].ID)

	// T-1 and T-4 share Alice in the first sprint and must collide. The map is
	// keyed by ticket ID with the overlap mirrored on both tickets.
	require.NotEmpty(t, res.Conflicts["T-1"])
	require.NotEmpty(t, res.Conflicts["T-4"])
	var forward, backward *conflict.Conflict
	for i, c := range res.Conflicts["T-1"] {
		if c.OtherID == "T-4" {
			forward = &res.Conflicts["T-1"][i]
		}
	}
	for i, c := range res.Conflicts["T-4"] {
		if c.OtherID == "T-1" {
			backward = &res.Conflicts["T-4"][i]
		}
	}
	require.NotNil(t, forward)
	require.NotNil(t, backward)
	assert.Equal(t, "Alice", forward.Assignee)
	assert.Equal(t, forward.OverlapDays, backward.OverlapDays)

	// T-4 is blocked by the still-open T-1.
	require.Contains(t, res.Analyses, "T-4")
	assert.True(t, res.Analyses["T-4"].Blocked)
	assert.True(t, res.Analyses["T-1"].Ready)

	assert.NotEmpty(t, res.Insights)
}

func TestServiceRun(t *testing.T) {
	svc, err := New(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.NotZero(t, res.Plan.TotalCapacityDays)
}

func TestServiceNew_BadRelease(t *testing.T) {
	cfg := testConfig()
	cfg.Release.Start = "not-a-date"
	_, err := New(cfg)
	assert.Error(t, err)
}
