package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case AuthResult:
		o.printAuthResult(v)
	case GenerateResult:
		o.printGenerateResult(v)
	case ValidateResult:
		o.printValidateResult(v)
	case Session:
		o.printSession(v)
	case []Session:
		for _, s := range v {
			o.printSession(s)
		}
	case SessionWithMatches:
		o.printSession(v.Session)
		for _, m := range v.Matches {
			o.printMatch(m)
		}
	case Match:
		o.printMatch(v)
	case []Match:
		for _, m := range v {
			o.printMatch(m)
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerStats response type (matches API)
type PlayerStats struct {
	MatchesPlayed int `json:"matches_played"`
	MatchesWon    int `json:"matches_won"`
	MatchesLost   int `json:"matches_lost"`
	GamesWon      int `json:"games_won"`
	GamesLost     int `json:"games_lost"`
	Streak        int `json:"streak"`
	Points        int `json:"points"`
}

// Player response type
type Player struct {
	ID           string      `json:"id"`
	DisplayName  string      `json:"display_name"`
	Skill        int         `json:"skill"`
	IsGuest      bool        `json:"is_guest"`
	Availability []string    `json:"availability,omitempty"`
	Stats        PlayerStats `json:"stats"`
}

// AuthResult response type
type AuthResult struct {
	OrganizerID  string `json:"organizer_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token,omitempty"`
}

// Team response type
type Team struct {
	Players       [2]string `json:"players"`
	CombinedSkill int       `json:"combined_skill"`
}

// MatchPreview response type
type MatchPreview struct {
	Court     string `json:"court"`
	TeamA     Team   `json:"team_a"`
	TeamB     Team   `json:"team_b"`
	Imbalance int    `json:"imbalance"`
	Balance   string `json:"balance"`
	Warning   string `json:"warning,omitempty"`
}

// QualityReport response type
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

// GenerateResult response type
type GenerateResult struct {
	Previews []MatchPreview `json:"previews"`
	Quality  QualityReport  `json:"quality"`
}

// ValidateResult response type
type ValidateResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// Session response type
type Session struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Status    string   `json:"status"`
	PlayerIDs []string `json:"player_ids"`
	MatchIDs  []string `json:"match_ids"`
}

// SessionWithMatches response type
type SessionWithMatches struct {
	Session Session `json:"session"`
	Matches []Match `json:"matches"`
}

// Match response type
type Match struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Court     string    `json:"court"`
	Status    string    `json:"status"`
	TeamA     [2]string `json:"team_a"`
	TeamB     [2]string `json:"team_b"`
	GamesWonA int       `json:"games_won_a"`
	GamesWonB int       `json:"games_won_b"`
	Winner    string    `json:"winner,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := ""
	if p.IsGuest {
		guestStr = " [guest]"
	}
	fmt.Printf("Player: %s (%s)%s\n", p.DisplayName, p.ID, guestStr)
	fmt.Printf("Skill: %d\n", p.Skill)
	fmt.Printf("Record: %d-%d (streak %+d, %d points)\n",
		p.Stats.MatchesWon, p.Stats.MatchesLost, p.Stats.Streak, p.Stats.Points)
	if len(p.Availability) > 0 {
		fmt.Printf("Available: %s\n", strings.Join(p.Availability, ", "))
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		guestStr := ""
		if p.IsGuest {
			guestStr = " [guest]"
		}
		fmt.Printf("  - %s (%s) skill %d%s\n", p.DisplayName, p.ID, p.Skill, guestStr)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Organizer: %s (%s)\n", a.Username, a.OrganizerID)
	if a.SessionToken != "" {
		fmt.Printf("Token: %s\n", a.SessionToken)
	}
}

func (o *Output) printGenerateResult(g GenerateResult) {
	for _, p := range g.Previews {
		fmt.Printf("Court %s: [%s + %s] (%d) vs [%s + %s] (%d)\n",
			p.Court,
			p.TeamA.Players[0], p.TeamA.Players[1], p.TeamA.CombinedSkill,
			p.TeamB.Players[0], p.TeamB.Players[1], p.TeamB.CombinedSkill,
		)
		fmt.Printf("  Balance: %s (diff %d)\n", p.Balance, p.Imbalance)
		if p.Warning != "" {
			fmt.Printf("  Warning: %s\n", p.Warning)
		}
	}
	fmt.Printf("\nQuality: %s (%d/100)\n", g.Quality.Rating, g.Quality.OverallScore)
	fmt.Printf("  Balance score: %.1f, freshness score: %.1f\n",
		g.Quality.BalanceScore, g.Quality.FreshnessScore)
	fmt.Printf("  Matches: %d perfect, %d good, %d unbalanced (avg diff %.1f)\n",
		g.Quality.PerfectCount, g.Quality.GoodCount, g.Quality.UnbalancedCount,
		g.Quality.AvgSkillDiff)
}

func (o *Output) printValidateResult(v ValidateResult) {
	if v.Valid {
		fmt.Println("Preview is valid")
		return
	}
	fmt.Printf("Preview is invalid (%d violations):\n", len(v.Violations))
	for _, violation := range v.Violations {
		fmt.Printf("  - %s\n", violation)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Date: %s\n", s.Date)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Players: %d, Matches: %d\n", len(s.PlayerIDs), len(s.MatchIDs))
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match %s (court %s): %s\n", m.ID, m.Court, m.Status)
	fmt.Printf("  [%s + %s] %d - %d [%s + %s]\n",
		m.TeamA[0], m.TeamA[1], m.GamesWonA, m.GamesWonB, m.TeamB[0], m.TeamB[1])
	if m.Winner != "" {
		fmt.Printf("  Winner: team %s\n", m.Winner)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
