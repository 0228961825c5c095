package partition

import "github.com/azzbr/padelx/internal/model"

// skillTiered sorts players by skill descending and repeatedly teams the
// strongest remaining player with the weakest, and the next-strongest
// with the next-weakest, forming one match per block of four. This
// greedily minimizes the skill gap within each pair of teams at each
// step; it does not re-balance across matches. Deterministic.
func (s *Service) skillTiered(players []*model.Player) ([]model.MatchPreview, error) {
	sorted := sortBySkillDesc(players)

	previews := make([]model.MatchPreview, 0, len(sorted)/4)
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		teamA, err := model.NewTeam(sorted[lo], sorted[hi])
		if err != nil {
			return nil, err
		}
		teamB, err := model.NewTeam(sorted[lo+1], sorted[hi-1])
		if err != nil {
			return nil, err
		}
		previews = append(previews, model.MatchPreview{
			Court: CourtLabel(len(previews)),
			TeamA: teamA,
			TeamB: teamB,
		})
		lo += 2
		hi -= 2
	}
	return previews, nil
}
