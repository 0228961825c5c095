package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Skill rating bounds. Registration accepts the full 1-100 range;
// rating updates never move a player outside [MinSkill, MaxSkill].
const (
	SkillFloor = 1
	MinSkill   = 20
	MaxSkill   = 100
)

// Player represents a club member (or guest) who can be rostered into matches
type Player struct {
	ID          PlayerID
	DisplayName string
	Skill       int  // 1-100; mutated only by rating updates
	IsGuest     bool // true for drop-in players without an account

	// Availability holds dates (YYYY-MM-DD) the player signed up for
	Availability []string

	Stats     PlayerStats
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerStats holds cumulative per-player statistics.
// Mutated only by rating updates after a completed match.
type PlayerStats struct {
	MatchesPlayed int
	MatchesWon    int
	MatchesLost   int
	GamesWon      int
	GamesLost     int
	// Streak is signed: +n for n consecutive wins, -n for n consecutive losses
	Streak       int
	Points       int
	LastPlayedAt time.Time
}

// IsAvailableOn reports whether the player signed up for the given date
func (p *Player) IsAvailableOn(date string) bool {
	for _, d := range p.Availability {
		if d == date {
			return true
		}
	}
	return false
}

// ClampSkill bounds a skill value to the range rating updates may produce
func ClampSkill(skill int) int {
	if skill < MinSkill {
		return MinSkill
	}
	if skill > MaxSkill {
		return MaxSkill
	}
	return skill
}
