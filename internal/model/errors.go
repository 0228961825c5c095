package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrDuplicatePlayer = errors.New("team contains the same player twice")
	ErrInvalidSkill    = errors.New("skill rating out of range")
	ErrInvalidName     = errors.New("display name must not be empty")

	// Matchmaking errors
	ErrInvalidRosterSize = errors.New("player count must be a positive multiple of four")
	ErrUnknownStrategy   = errors.New("unknown matchmaking strategy")
	ErrInvalidPreview    = errors.New("invalid match preview")

	// Match errors
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchNotWaiting = errors.New("match has already started")
	ErrMatchNotLive    = errors.New("match is not live")
	ErrMatchCompleted  = errors.New("match is already completed")
	ErrMatchNotDone    = errors.New("match is not completed")

	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionState = errors.New("invalid session state transition")

	// Organizer errors
	ErrOrganizerNotFound = errors.New("organizer not found")
)
