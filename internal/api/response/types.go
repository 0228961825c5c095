package response

import (
	"time"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/quality"
)

// PlayerStats represents a player's cumulative record
type PlayerStats struct {
	MatchesPlayed int        `json:"matches_played"`
	MatchesWon    int        `json:"matches_won"`
	MatchesLost   int        `json:"matches_lost"`
	GamesWon      int        `json:"games_won"`
	GamesLost     int        `json:"games_lost"`
	Streak        int        `json:"streak"`
	Points        int        `json:"points"`
	LastPlayedAt  *time.Time `json:"last_played_at,omitempty"`
}

// Player represents a player in API responses
type Player struct {
	ID           string      `json:"id"`
	DisplayName  string      `json:"display_name"`
	Skill        int         `json:"skill"`
	IsGuest      bool        `json:"is_guest,omitempty"`
	Availability []string    `json:"availability,omitempty"`
	Stats        PlayerStats `json:"stats"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	var lastPlayed *time.Time
	if !p.Stats.LastPlayedAt.IsZero() {
		t := p.Stats.LastPlayedAt
		lastPlayed = &t
	}
	return Player{
		ID:           string(p.ID),
		DisplayName:  p.DisplayName,
		Skill:        p.Skill,
		IsGuest:      p.IsGuest,
		Availability: p.Availability,
		Stats: PlayerStats{
			MatchesPlayed: p.Stats.MatchesPlayed,
			MatchesWon:    p.Stats.MatchesWon,
			MatchesLost:   p.Stats.MatchesLost,
			GamesWon:      p.Stats.GamesWon,
			GamesLost:     p.Stats.GamesLost,
			Streak:        p.Stats.Streak,
			Points:        p.Stats.Points,
			LastPlayedAt:  lastPlayed,
		},
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	OrganizerID  string `json:"organizer_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token,omitempty"`
}

// Team represents a doubles pairing in API responses
type Team struct {
	Players       [2]string `json:"players"`
	CombinedSkill int       `json:"combined_skill"`
}

// TeamFromModel converts a model.Team
func TeamFromModel(t model.Team) Team {
	return Team{
		Players:       [2]string{string(t.Players[0]), string(t.Players[1])},
		CombinedSkill: t.CombinedSkill,
	}
}

// MatchPreview represents a candidate court assignment
type MatchPreview struct {
	Court     string `json:"court"`
	TeamA     Team   `json:"team_a"`
	TeamB     Team   `json:"team_b"`
	Imbalance int    `json:"imbalance"`
	Balance   string `json:"balance"`
	Warning   string `json:"warning,omitempty"`
}

// QualityReport represents an assignment quality summary
type QualityReport struct {
	BalanceScore    float64 `json:"balance_score"`
	FreshnessScore  float64 `json:"freshness_score"`
	OverallScore    int     `json:"overall_score"`
	Rating          string  `json:"rating"`
	PerfectCount    int     `json:"perfect_count"`
	GoodCount       int     `json:"good_count"`
	UnbalancedCount int     `json:"unbalanced_count"`
	AvgSkillDiff    float64 `json:"avg_skill_diff"`
}

// QualityReportFromModel converts a quality.Report
func QualityReportFromModel(r quality.Report) QualityReport {
	return QualityReport{
		BalanceScore:    r.BalanceScore,
		FreshnessScore:  r.FreshnessScore,
		OverallScore:    r.OverallScore,
		Rating:          string(r.Rating),
		PerfectCount:    r.PerfectCount,
		GoodCount:       r.GoodCount,
		UnbalancedCount: r.UnbalancedCount,
		AvgSkillDiff:    r.AvgSkillDiff,
	}
}

// GenerateResponse is the response for assignment generation
type GenerateResponse struct {
	Previews []MatchPreview `json:"previews"`
	Quality  QualityReport  `json:"quality"`
}

// ValidatePreviewResponse is the response for assignment validation
type ValidatePreviewResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// Match represents a match in API responses
type Match struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Round     int        `json:"round"`
	Court     string     `json:"court"`
	Status    string     `json:"status"`
	TeamA     [2]string  `json:"team_a"`
	TeamB     [2]string  `json:"team_b"`
	GamesWonA int        `json:"games_won_a"`
	GamesWonB int        `json:"games_won_b"`
	Winner    string     `json:"winner,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// MatchFromModel converts a model.Match
func MatchFromModel(m *model.Match) Match {
	return Match{
		ID:        string(m.ID),
		SessionID: string(m.SessionID),
		Round:     m.Round,
		Court:     m.Court,
		Status:    string(m.Status),
		TeamA:     [2]string{string(m.TeamA[0]), string(m.TeamA[1])},
		TeamB:     [2]string{string(m.TeamB[0]), string(m.TeamB[1])},
		GamesWonA: m.GamesWonA,
		GamesWonB: m.GamesWonB,
		Winner:    string(m.Winner),
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
	}
}

// Session represents a session in API responses
type Session struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Status    string   `json:"status"`
	PlayerIDs []string `json:"player_ids"`
	MatchIDs  []string `json:"match_ids"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	playerIDs := make([]string, len(s.PlayerIDs))
	for i, id := range s.PlayerIDs {
		playerIDs[i] = string(id)
	}
	matchIDs := make([]string, len(s.MatchIDs))
	for i, id := range s.MatchIDs {
		matchIDs[i] = string(id)
	}
	return Session{
		ID:        string(s.ID),
		Date:      s.Date,
		Status:    string(s.Status),
		PlayerIDs: playerIDs,
		MatchIDs:  matchIDs,
	}
}

// SessionWithMatches is the response for session creation
type SessionWithMatches struct {
	Session Session `json:"session"`
	Matches []Match `json:"matches"`
}
