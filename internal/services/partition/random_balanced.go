package partition

import (
	"sort"

	"github.com/azzbr/padelx/internal/model"
)

// randomBalanced shuffles the roster, then for larger rosters builds
// every possible two-player team, greedily selects player-disjoint teams
// in ascending combined-skill order, and pairs the selected teams
// outside-in. Four players are simply paired consecutively.
func (s *Service) randomBalanced(players []*model.Player) ([]model.MatchPreview, error) {
	shuffled := make([]*model.Player, len(players))
	copy(shuffled, players)
	s.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) == 4 {
		return consecutivePairing(shuffled)
	}

	// All C(N,2) candidate teams, cheapest combined skill first
	candidates := make([]model.Team, 0, len(shuffled)*(len(shuffled)-1)/2)
	for i := 0; i < len(shuffled); i++ {
		for j := i + 1; j < len(shuffled); j++ {
			team, err := model.NewTeam(shuffled[i], shuffled[j])
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, team)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CombinedSkill < candidates[j].CombinedSkill
	})

	wanted := len(shuffled) / 2
	used := make(map[model.PlayerID]struct{}, len(shuffled))
	selected := make([]model.Team, 0, wanted)
	for _, team := range candidates {
		if len(selected) == wanted {
			break
		}
		if _, ok := used[team.Players[0]]; ok {
			continue
		}
		if _, ok := used[team.Players[1]]; ok {
			continue
		}
		selected = append(selected, team)
		used[team.Players[0]] = struct{}{}
		used[team.Players[1]] = struct{}{}
	}

	// The greedy pass can come up short when overlaps exhaust the
	// candidate list; fall back to consecutive pairing of the shuffle.
	if len(selected) < wanted {
		return consecutivePairing(shuffled)
	}

	return pairOutsideIn(selected), nil
}

// consecutivePairing forms matches directly from roster order:
// players 1+2 vs 3+4 on the first court, and so on
func consecutivePairing(players []*model.Player) ([]model.MatchPreview, error) {
	previews := make([]model.MatchPreview, 0, len(players)/4)
	for i := 0; i+3 < len(players); i += 4 {
		teamA, err := model.NewTeam(players[i], players[i+1])
		if err != nil {
			return nil, err
		}
		teamB, err := model.NewTeam(players[i+2], players[i+3])
		if err != nil {
			return nil, err
		}
		previews = append(previews, model.MatchPreview{
			Court: CourtLabel(len(previews)),
			TeamA: teamA,
			TeamB: teamB,
		})
	}
	return previews, nil
}
