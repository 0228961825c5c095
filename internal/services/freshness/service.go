package freshness

import (
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/history"
)

// MaxScore is the freshness of a match with no repeated pairings
const MaxScore = 100

// Penalties applied to MaxScore. The per-pair proximity penalty
// deliberately double-counts with the teammate and rematch penalties:
// repeated proximity compounds.
const (
	teammateRepeatPenalty = 30
	rematchPenalty        = 50
	proximityPenalty      = 5
)

// Service scores how much recently-repeated player pairing a candidate
// match contains. Higher is fresher.
type Service struct{}

// New creates a new freshness Service
func New() *Service {
	return &Service{}
}

// MatchFreshness scores one candidate match against recent history,
// clamped to [0, MaxScore]. A nil index means no history: maximal freshness.
func (s *Service) MatchFreshness(teamA, teamB model.Team, idx *history.Index) int {
	if idx == nil {
		return MaxScore
	}

	score := MaxScore

	if idx.PlayedAsTeammates(teamA.Players[0], teamA.Players[1]) {
		score -= teammateRepeatPenalty
	}
	if idx.PlayedAsTeammates(teamB.Players[0], teamB.Players[1]) {
		score -= teammateRepeatPenalty
	}
	if idx.PlayedAsOpponents(teamA, teamB) {
		score -= rematchPenalty
	}

	ids := []model.PlayerID{teamA.Players[0], teamA.Players[1], teamB.Players[0], teamB.Players[1]}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if idx.PlayedTogether(ids[i], ids[j]) {
				score -= proximityPenalty
			}
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

// AssignmentFreshness sums MatchFreshness over a full candidate
// assignment. The sum is unnormalized; it only ranks candidates of the
// same size against each other.
func (s *Service) AssignmentFreshness(previews []model.MatchPreview, idx *history.Index) int {
	total := 0
	for _, p := range previews {
		total += s.MatchFreshness(p.TeamA, p.TeamB, idx)
	}
	return total
}
