package model

import "time"

// OrganizerID uniquely identifies an organizer account
type OrganizerID string

// Organizer is a club organizer account used to authenticate API mutations.
// Stored separately from players: organizers run sessions, players play in them.
type Organizer struct {
	ID           OrganizerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
