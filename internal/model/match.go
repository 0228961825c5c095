package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusWaiting   MatchStatus = "waiting"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
)

// TeamSide identifies one side of a match
type TeamSide string

const (
	SideNone TeamSide = ""
	SideA    TeamSide = "A"
	SideB    TeamSide = "B"
)

// GamesToWin is the games-won threshold that completes a match
const GamesToWin = 4

// MatchPreview is a generated-but-unconfirmed match assignment.
// It exists only between generation and user confirmation.
type MatchPreview struct {
	Court string
	TeamA Team
	TeamB Team
}

// PlayerIDs returns the four player ids in the preview
func (p MatchPreview) PlayerIDs() []PlayerID {
	return []PlayerID{p.TeamA.Players[0], p.TeamA.Players[1], p.TeamB.Players[0], p.TeamB.Players[1]}
}

// ScoreEvent records the state of a match immediately before a scoring
// increment, so the increment can be undone.
type ScoreEvent struct {
	ScoringSide TeamSide
	GamesWonA   int // score before the increment
	GamesWonB   int
	At          time.Time
}

// Match is a persisted, confirmed match on a court
type Match struct {
	ID        MatchID
	SessionID SessionID
	Round     int
	Court     string
	Status    MatchStatus

	TeamA [2]PlayerID
	TeamB [2]PlayerID

	GamesWonA int
	GamesWonB int
	Winner    TeamSide

	StartedAt *time.Time
	EndedAt   *time.Time

	// History is the ordered log of scoring events, newest last
	History []ScoreEvent

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerIDs returns the four player ids in the match
func (m *Match) PlayerIDs() []PlayerID {
	return []PlayerID{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]}
}

// SideOf returns which side the given player is on, or SideNone
func (m *Match) SideOf(id PlayerID) TeamSide {
	if m.TeamA[0] == id || m.TeamA[1] == id {
		return SideA
	}
	if m.TeamB[0] == id || m.TeamB[1] == id {
		return SideB
	}
	return SideNone
}

// GamesWon returns the games-won counter for the given side
func (m *Match) GamesWon(side TeamSide) int {
	if side == SideA {
		return m.GamesWonA
	}
	return m.GamesWonB
}
