package model

import (
	"strings"
	"time"
)

// ExperienceLevel classifies a team member's seniority.
type ExperienceLevel int

const (
	LevelJunior ExperienceLevel = iota
	LevelMid
	LevelSenior
	LevelLead
)

// String returns a human-readable representation of the level.
func (l ExperienceLevel) String() string {
	switch l {
	case LevelJunior:
		return "junior"
	case LevelMid:
		return "mid"
	case LevelSenior:
		return "senior"
	case LevelLead:
		return "lead"
	default:
		return "unknown"
	}
}

// DefaultVelocity returns the conventional multiplier for the level. Users may
// override it per member.
func (l ExperienceLevel) DefaultVelocity() float64 {
	switch l {
	case LevelJunior:
		return 0.7
	case LevelSenior:
		return 1.3
	case LevelLead:
		return 1.5
	default:
		return 1.0
	}
}

// ParseExperienceLevel maps a raw level string to an ExperienceLevel.
// Unknown values default to mid.
func ParseExperienceLevel(raw string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "junior", "jr":
		return LevelJunior
	case "senior", "sr":
		return LevelSenior
	case "lead", "principal":
		return LevelLead
	default:
		return LevelMid
	}
}

// PTOEntry is a personal time-off range. Dates are inclusive calendar days;
// entries spanning weekends or holidays cost nothing extra since those days
// are already excluded from work-day counts.
type PTOEntry struct {
	Name  string
	Start time.Time
	End   time.Time
}

// TeamMember describes one person on the release roster.
type TeamMember struct {
	ID                 string
	Name               string
	Role               string
	Level              ExperienceLevel
	VelocityMultiplier float64 // 0 means "use the level default"
	PTO                []PTOEntry
}

// Velocity returns the member's multiplier, falling back to the level default
// when no override is set.
func (m TeamMember) Velocity() float64 {
	if m.VelocityMultiplier > 0 {
		return m.VelocityMultiplier
	}
	return m.Level.DefaultVelocity()
}
