package matchmaking

import (
	"sort"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/freshness"
	"github.com/azzbr/padelx/internal/services/history"
	"github.com/azzbr/padelx/internal/services/partition"
)

// Weighting of balance against freshness when choosing among the
// alternative local pairings of a block of four
const (
	smallRosterBalanceWeight = 0.6
	largeRosterBalanceWeight = 0.7
)

// freshSkillTiered is the history-aware variant of the skill-tiered
// strategy. It walks the skill-sorted roster in the same strongest/
// weakest blocks of four as the plain strategy, but for each block
// evaluates the three structurally different pairings and keeps the one
// with the best weighted balance+freshness score.
//
// The walk is greedy and order-dependent: earlier blocks consume players
// and constrain later ones. That is the intended heuristic, not a global
// optimum.
func (s *Service) freshSkillTiered(players []*model.Player, idx *history.Index) ([]model.MatchPreview, error) {
	sorted := make([]*model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skill > sorted[j].Skill
	})

	balanceWeight := largeRosterBalanceWeight
	if len(sorted) == 4 {
		balanceWeight = smallRosterBalanceWeight
	}

	previews := make([]model.MatchPreview, 0, len(sorted)/4)
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		// Block of four in descending skill order
		a, b := sorted[lo], sorted[lo+1]
		c, d := sorted[hi-1], sorted[hi]

		best, err := s.bestBlockPairing(a, b, c, d, idx, balanceWeight)
		if err != nil {
			return nil, err
		}
		best.Court = partition.CourtLabel(len(previews))
		previews = append(previews, best)

		lo += 2
		hi -= 2
	}
	return previews, nil
}

// bestBlockPairing scores the three possible team splits of four players
// (given in descending skill order) and returns the highest scoring one
func (s *Service) bestBlockPairing(
	a, b, c, d *model.Player,
	idx *history.Index,
	balanceWeight float64,
) (model.MatchPreview, error) {
	splits := [3][2][2]*model.Player{
		{{a, d}, {b, c}}, // plain skill-tiered split
		{{a, c}, {b, d}},
		{{a, b}, {c, d}},
	}

	var best model.MatchPreview
	bestScore := 0.0
	found := false

	for _, split := range splits {
		teamA, err := model.NewTeam(split[0][0], split[0][1])
		if err != nil {
			return model.MatchPreview{}, err
		}
		teamB, err := model.NewTeam(split[1][0], split[1][1])
		if err != nil {
			return model.MatchPreview{}, err
		}

		imbalance := s.balance.Imbalance(teamA, teamB)
		fresh := s.freshness.MatchFreshness(teamA, teamB, idx)
		score := balanceWeight*float64(freshness.MaxScore-imbalance) + (1-balanceWeight)*float64(fresh)

		if !found || score > bestScore {
			best = model.MatchPreview{TeamA: teamA, TeamB: teamB}
			bestScore = score
			found = true
		}
	}

	return best, nil
}
