package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilianp07/releasepilot/core/model"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `release:
  name: "2025.1"
  start: "2025-01-06"
  end: "2025-01-31"
  sprint_length_days: 10
  developers: 2
  holidays:
    - name: "Offsite"
      start: "2025-01-20"
      end: "2025-01-20"
  team:
    - name: "Alice"
      level: "senior"
      pto:
        - start: "2025-01-13"
          end: "2025-01-14"
    - name: "Bob"
      level: "junior"
      velocity: 0.8
  tickets:
    - id: "T-1"
      title: "Login flow"
      effort_days: 5
      priority: 1
      assigned_to: "Alice"
    - id: "T-2"
      title: "Billing"
      effort_days: 3
      priority: 2
      status: "in_progress"
      blocked_by: ["T-1"]
metrics:
  sinks:
    - type: "nop"
logging:
  level: "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"release.name", cfg.Release.Name, "2025.1"},
		{"release.start", cfg.Release.Start, "2025-01-06"},
		{"sprint_length", cfg.Release.SprintLengthDays, 10},
		{"developers", cfg.Release.Developers, 2},
		{"holidays", len(cfg.Release.Holidays), 1},
		{"team", len(cfg.Release.Team), 2},
		{"alice_pto", len(cfg.Release.Team[0].PTO), 1},
		{"bob_velocity", cfg.Release.Team[1].Velocity, 0.8},
		{"tickets", len(cfg.Release.Tickets), 2},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"logging.level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "release": {
    "name": "2025.2",
    "start": "2025-03-03",
    "end": "2025-03-28",
    "sprint_length_days": 14
  },
  "logging": {"level": "info"}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Release.Name != "2025.2" {
		t.Errorf("name mismatch: %s", cfg.Release.Name)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", "release = 1")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "config.yaml", `release:
  name: "2025.3"
  start: "2025-05-05"
  end: "2025-05-16"
  team:
    - name: "Carol"
    - name: "Dave"
    - name: "Erin"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Release.Developers != 3 {
		t.Errorf("expected developers defaulted to roster size, got %d", cfg.Release.Developers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestReleaseConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		cfg  ReleaseConfig
	}{
		{"missing name", ReleaseConfig{Start: "2025-01-06", End: "2025-01-31"}},
		{"bad start", ReleaseConfig{Name: "r", Start: "06/01/2025", End: "2025-01-31"}},
		{"end before start", ReleaseConfig{Name: "r", Start: "2025-01-31", End: "2025-01-06"}},
		{"duplicate ticket", ReleaseConfig{
			Name: "r", Start: "2025-01-06", End: "2025-01-31",
			Tickets: []TicketConfig{{ID: "T-1"}, {ID: "T-1"}},
		}},
		{"member without name", ReleaseConfig{
			Name: "r", Start: "2025-01-06", End: "2025-01-31",
			Team: []MemberConfig{{Role: "dev"}},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestReleaseConfig_ToModel(t *testing.T) {
	cfg := ReleaseConfig{
		Name:             "2025.1",
		Start:            "2025-01-06",
		End:              "2025-01-31",
		SprintLengthDays: 10,
		Developers:       2,
		Team: []MemberConfig{
			{Name: "Alice", Level: "senior"},
			{Name: "Bob", Level: "junior", Velocity: 0.8},
		},
		Tickets: []TicketConfig{
			{ID: "T-1", Title: "Login flow", EffortDays: 5, Priority: 1, Status: "in_progress"},
		},
	}
	rc, tickets, err := cfg.ToModel()
	if err != nil {
		t.Fatalf("to model: %v", err)
	}
	if !rc.Start.Equal(model.Date(2025, 1, 6)) {
		t.Errorf("start mismatch: %v", rc.Start)
	}
	if rc.Team[0].Level != model.LevelSenior {
		t.Errorf("level mismatch: %v", rc.Team[0].Level)
	}
	if rc.Team[1].Velocity() != 0.8 {
		t.Errorf("velocity mismatch: %v", rc.Team[1].Velocity())
	}
	if len(tickets) != 1 || tickets[0].Status != model.StatusInProgress {
		t.Errorf("ticket conversion mismatch: %+v", tickets)
	}
}
