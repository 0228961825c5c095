package model

import "time"

// SessionID uniquely identifies a session
type SessionID string

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	SessionStatusPlanning  SessionStatus = "planning"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
)

// Session aggregates the matches generated by one matchmaking run
// for a given club night
type Session struct {
	ID        SessionID
	Date      string // YYYY-MM-DD
	PlayerIDs []PlayerID
	MatchIDs  []MatchID
	Status    SessionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
