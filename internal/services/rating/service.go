package rating

import (
	"math"
	"time"

	"github.com/azzbr/padelx/internal/model"
)

// Point awards per completed match
const (
	winnerPoints     = 10
	closeLossPoints  = 2 // lost 3-4
	decentLossPoints = 1 // lost 2-4
)

// Elo-like skill adjustment parameters
const (
	kFactor               = 32
	dominantWinMultiplier = 1.2 // won 4-0 or 4-1
	closeLossMultiplier   = 0.8 // lost 3-4
	shutoutBonus          = 3   // 4-0 result, + for winner, - for loser
	nearShutoutBonus      = 2   // 4-1 result
)

// Service applies post-match points, streak and skill-rating updates
type Service struct{}

// New creates a new rating Service
func New() *Service {
	return &Service{}
}

// Apply updates all four players of a completed match: points, streaks,
// cumulative stats and an Elo-like skill delta clamped to [20,100].
// The players slice must contain all four participants; they are
// mutated in place and also returned.
func (s *Service) Apply(m *model.Match, players []*model.Player, now time.Time) ([]*model.Player, error) {
	if m.Status != model.MatchStatusCompleted || m.Winner == model.SideNone {
		return nil, model.ErrMatchNotDone
	}

	byID := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	updated := make([]*model.Player, 0, 4)
	for _, id := range m.PlayerIDs() {
		p, ok := byID[id]
		if !ok {
			return nil, model.ErrPlayerNotFound
		}
		updated = append(updated, p)
	}

	playedAt := now
	if m.EndedAt != nil {
		playedAt = *m.EndedAt
	}

	// Snapshot skills before any mutation so every player's expected
	// score is computed against pre-match opponent strength
	skills := make(map[model.PlayerID]int, 4)
	for _, p := range updated {
		skills[p.ID] = p.Skill
	}

	loserGames := m.GamesWonA
	if m.Winner == model.SideA {
		loserGames = m.GamesWonB
	}

	for _, p := range updated {
		side := m.SideOf(p.ID)
		won := side == m.Winner

		opponents := m.TeamB
		if side == model.SideB {
			opponents = m.TeamA
		}
		opponentAvg := float64(skills[opponents[0]]+skills[opponents[1]]) / 2

		s.applyToPlayer(p, won, loserGames, opponentAvg, m.GamesWon(side), m.GamesWon(otherSide(side)), playedAt)
	}

	return updated, nil
}

func (s *Service) applyToPlayer(
	p *model.Player,
	won bool,
	loserGames int,
	opponentAvg float64,
	gamesWon, gamesLost int,
	playedAt time.Time,
) {
	// Points
	if won {
		p.Stats.Points += winnerPoints
	} else {
		switch loserGames {
		case 3:
			p.Stats.Points += closeLossPoints
		case 2:
			p.Stats.Points += decentLossPoints
		}
	}

	// Streak
	if won {
		if p.Stats.Streak >= 0 {
			p.Stats.Streak++
		} else {
			p.Stats.Streak = 1
		}
	} else {
		if p.Stats.Streak <= 0 {
			p.Stats.Streak--
		} else {
			p.Stats.Streak = -1
		}
	}

	// Skill delta
	p.Skill = model.ClampSkill(p.Skill + skillDelta(p.Skill, opponentAvg, won, loserGames))

	// Cumulative stats
	p.Stats.MatchesPlayed++
	if won {
		p.Stats.MatchesWon++
	} else {
		p.Stats.MatchesLost++
	}
	p.Stats.GamesWon += gamesWon
	p.Stats.GamesLost += gamesLost
	p.Stats.LastPlayedAt = playedAt
}

// skillDelta computes the Elo-like adjustment for one player
func skillDelta(skill int, opponentAvg float64, won bool, loserGames int) int {
	expected := 1 / (1 + math.Pow(10, (opponentAvg-float64(skill))/400))

	actual := 0.0
	if won {
		actual = 1.0
	}

	multiplier := 1.0
	if won && loserGames <= 1 {
		multiplier = dominantWinMultiplier
	}
	if !won && loserGames == 3 {
		multiplier = closeLossMultiplier
	}

	delta := int(math.Round(kFactor * (actual - expected) * multiplier))

	// Flat bonus/penalty for lopsided results, applied after the
	// multiplied delta
	switch loserGames {
	case 0:
		if won {
			delta += shutoutBonus
		} else {
			delta -= shutoutBonus
		}
	case 1:
		if won {
			delta += nearShutoutBonus
		} else {
			delta -= nearShutoutBonus
		}
	}

	return delta
}

func otherSide(side model.TeamSide) model.TeamSide {
	if side == model.SideA {
		return model.SideB
	}
	return model.SideA
}
