package partition

import "github.com/azzbr/padelx/internal/model"

// mixedTier splits the skill-sorted roster into a strong half and a weak
// half, shuffles each half independently, and teams shuffled-strong[i]
// with shuffled-weak[i]. Teams are then paired outside-in. Every team
// gets one stronger and one weaker player, with randomness inside the tiers.
func (s *Service) mixedTier(players []*model.Player) ([]model.MatchPreview, error) {
	sorted := sortBySkillDesc(players)

	// Four players leave one pairing choice per tier; identical to the
	// skill-tiered single-match split
	if len(sorted) == 4 {
		return s.skillTiered(sorted)
	}

	half := len(sorted) / 2
	strong := make([]*model.Player, half)
	weak := make([]*model.Player, half)
	copy(strong, sorted[:half])
	copy(weak, sorted[half:])

	s.random.Shuffle(len(strong), func(i, j int) {
		strong[i], strong[j] = strong[j], strong[i]
	})
	s.random.Shuffle(len(weak), func(i, j int) {
		weak[i], weak[j] = weak[j], weak[i]
	})

	teams := make([]model.Team, 0, half)
	for i := 0; i < half; i++ {
		team, err := model.NewTeam(strong[i], weak[i])
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return pairOutsideIn(teams), nil
}
