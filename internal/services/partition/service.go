package partition

import (
	"sort"

	"github.com/azzbr/padelx/internal/dependencies/random"
	"github.com/azzbr/padelx/internal/model"
)

// Strategy selects one of the fixed roster-partitioning algorithms.
// The set is closed: every consumer (selector, API, CLI) switches over
// these three values.
type Strategy string

const (
	StrategySkillTiered    Strategy = "skill_tiered"
	StrategyRandomBalanced Strategy = "random_balanced"
	StrategyMixedTier      Strategy = "mixed_tier"
)

// ParseStrategy converts a string to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySkillTiered, StrategyRandomBalanced, StrategyMixedTier:
		return Strategy(s), nil
	default:
		return "", model.ErrUnknownStrategy
	}
}

// CourtLabel returns the court label for the i-th generated match:
// A..Z, then AA, AB, ... so large rosters never run out of labels
func CourtLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

// Service produces complete match assignments: every input player in
// exactly one team, teams paired onto courts
type Service struct {
	random random.Random
}

// New creates a new partition Service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Generate partitions the players using the given strategy. The roster
// size must be a positive multiple of four.
func (s *Service) Generate(players []*model.Player, strategy Strategy) ([]model.MatchPreview, error) {
	if err := ValidateRoster(len(players)); err != nil {
		return nil, err
	}

	switch strategy {
	case StrategySkillTiered:
		return s.skillTiered(players)
	case StrategyRandomBalanced:
		return s.randomBalanced(players)
	case StrategyMixedTier:
		return s.mixedTier(players)
	default:
		return nil, model.ErrUnknownStrategy
	}
}

// ValidateRoster checks that n players can be partitioned into doubles matches
func ValidateRoster(n int) error {
	if n < 4 || n%4 != 0 {
		return model.ErrInvalidRosterSize
	}
	return nil
}

// sortBySkillDesc returns a copy of players sorted strongest first
func sortBySkillDesc(players []*model.Player) []*model.Player {
	sorted := make([]*model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skill > sorted[j].Skill
	})
	return sorted
}

// pairOutsideIn sorts teams by combined skill ascending and pairs
// team[i] with team[last-i], spreading skill across matches. Courts are
// assigned in generation order.
func pairOutsideIn(teams []model.Team) []model.MatchPreview {
	sorted := make([]model.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CombinedSkill < sorted[j].CombinedSkill
	})

	previews := make([]model.MatchPreview, 0, len(sorted)/2)
	for i := 0; i < len(sorted)/2; i++ {
		previews = append(previews, model.MatchPreview{
			Court: CourtLabel(i),
			TeamA: sorted[i],
			TeamB: sorted[len(sorted)-1-i],
		})
	}
	return previews
}
