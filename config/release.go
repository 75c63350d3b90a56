package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/releasepilot/core/model"
)

const dateLayout = "2006-01-02"

// ReleaseConfig is the file-facing release definition. Dates are plain
// "2006-01-02" strings; ToModel converts them into domain types.
type ReleaseConfig struct {
	Name             string          `json:"name"`
	Start            string          `json:"start"`
	End              string          `json:"end"`
	SprintLengthDays int             `json:"sprint_length_days"`
	Developers       int             `json:"developers"`
	Holidays         []HolidayConfig `json:"holidays"`
	Team             []MemberConfig  `json:"team"`
	Tickets          []TicketConfig  `json:"tickets"`
}

type HolidayConfig struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type MemberConfig struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Role     string      `json:"role"`
	Level    string      `json:"level"`
	Velocity float64     `json:"velocity"`
	PTO      []PTOConfig `json:"pto"`
}

type PTOConfig struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type TicketConfig struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Epic       string   `json:"epic"`
	EffortDays int      `json:"effort_days"`
	Priority   int      `json:"priority"`
	AssignedTo string   `json:"assigned_to"`
	Status     string   `json:"status"`
	BlockedBy  []string `json:"blocked_by"`
}

// SetDefaults applies sane defaults.
func (c *ReleaseConfig) SetDefaults() {
	if c.SprintLengthDays < 0 {
		c.SprintLengthDays = 0
	}
	if c.Developers == 0 {
		c.Developers = len(c.Team)
	}
}

// Validate checks mandatory fields and date ordering.
func (c ReleaseConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("release name is required")
	}
	start, err := parseDate(c.Start)
	if err != nil {
		return fmt.Errorf("release start: %w", err)
	}
	end, err := parseDate(c.End)
	if err != nil {
		return fmt.Errorf("release end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("release end %s before start %s", c.End, c.Start)
	}
	for _, h := range c.Holidays {
		if _, err := parseDate(h.Start); err != nil {
			return fmt.Errorf("holiday %s start: %w", h.Name, err)
		}
		if _, err := parseDate(h.End); err != nil {
			return fmt.Errorf("holiday %s end: %w", h.Name, err)
		}
	}
	for _, m := range c.Team {
		if m.Name == "" {
			return fmt.Errorf("team member without a name")
		}
		for _, p := range m.PTO {
			if _, err := parseDate(p.Start); err != nil {
				return fmt.Errorf("pto for %s start: %w", m.Name, err)
			}
			if _, err := parseDate(p.End); err != nil {
				return fmt.Errorf("pto for %s end: %w", m.Name, err)
			}
		}
	}
	seen := make(map[string]bool, len(c.Tickets))
	for _, t := range c.Tickets {
		if t.ID == "" {
			return fmt.Errorf("ticket without an id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate ticket id %s", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// ToModel converts the file representation into domain types. Validate must
// have succeeded first; date errors here are impossible on validated input.
func (c ReleaseConfig) ToModel() (model.ReleaseConfig, []model.Ticket, error) {
	start, err := parseDate(c.Start)
	if err != nil {
		return model.ReleaseConfig{}, nil, err
	}
	end, err := parseDate(c.End)
	if err != nil {
		return model.ReleaseConfig{}, nil, err
	}
	holidays := make([]model.Holiday, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		hs, err := parseDate(h.Start)
		if err != nil {
			return model.ReleaseConfig{}, nil, err
		}
		he, err := parseDate(h.End)
		if err != nil {
			return model.ReleaseConfig{}, nil, err
		}
		holidays = append(holidays, model.Holiday{ID: h.ID, Name: h.Name, Start: hs, End: he})
	}
	team := make([]model.TeamMember, 0, len(c.Team))
	for _, m := range c.Team {
		pto := make([]model.PTOEntry, 0, len(m.PTO))
		for _, p := range m.PTO {
			ps, err := parseDate(p.Start)
			if err != nil {
				return model.ReleaseConfig{}, nil, err
			}
			pe, err := parseDate(p.End)
			if err != nil {
				return model.ReleaseConfig{}, nil, err
			}
			pto = append(pto, model.PTOEntry{Name: p.Name, Start: ps, End: pe})
		}
		team = append(team, model.TeamMember{
			ID:                 m.ID,
			Name:               m.Name,
			Role:               m.Role,
			Level:              model.ParseExperienceLevel(m.Level),
			VelocityMultiplier: m.Velocity,
			PTO:                pto,
		})
	}
	tickets := make([]model.Ticket, 0, len(c.Tickets))
	for _, t := range c.Tickets {
		tickets = append(tickets, model.Ticket{
			ID:         t.ID,
			Title:      t.Title,
			Epic:       t.Epic,
			EffortDays: t.EffortDays,
			Priority:   t.Priority,
			AssignedTo: t.AssignedTo,
			Status:     model.ParseStatus(t.Status),
			BlockedBy:  t.BlockedBy,
		})
	}
	rc := model.ReleaseConfig{
		Name:             c.Name,
		Start:            start,
		End:              end,
		SprintLengthDays: c.SprintLengthDays,
		Developers:       c.Developers,
		Holidays:         holidays,
		Team:             team,
	}
	return rc, tickets, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	return model.Midnight(t), nil
}
