package request

// RegisterOrganizerRequest is the request body for registering an organizer
type RegisterOrganizerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	DisplayName string `json:"display_name"`
	Skill       int    `json:"skill"`
	IsGuest     bool   `json:"is_guest,omitempty"`
}

// SetAvailabilityRequest is the request body for setting a player's availability
type SetAvailabilityRequest struct {
	Dates []string `json:"dates"`
}

// MatchPreview is a candidate court assignment in request bodies
type MatchPreview struct {
	Court string    `json:"court"`
	TeamA [2]string `json:"team_a"`
	TeamB [2]string `json:"team_b"`
}

// GenerateRequest is the request body for generating match assignments
type GenerateRequest struct {
	PlayerIDs []string `json:"player_ids"`
	Strategy  string   `json:"strategy"`
}

// ValidatePreviewRequest is the request body for validating an assignment
type ValidatePreviewRequest struct {
	Previews []MatchPreview `json:"previews"`
}

// QualityRequest is the request body for scoring an assignment
type QualityRequest struct {
	Previews []MatchPreview `json:"previews"`
}

// CreateSessionRequest is the request body for persisting an assignment
// as a session
type CreateSessionRequest struct {
	Date     string         `json:"date"`
	Previews []MatchPreview `json:"previews"`
}

// RecordGameRequest is the request body for recording a game result
type RecordGameRequest struct {
	Side string `json:"side"`
}
