package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/azzbr/padelx/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.now = time.Date(2024, 1, 15, 21, 30, 0, 0, time.UTC)
}

func (s *ServiceSuite) player(id string, skill int) *model.Player {
	return &model.Player{
		ID:          model.PlayerID(id),
		DisplayName: id,
		Skill:       skill,
	}
}

func (s *ServiceSuite) equalSkillPlayers() []*model.Player {
	return []*model.Player{
		s.player("p1", 50),
		s.player("p2", 50),
		s.player("p3", 50),
		s.player("p4", 50),
	}
}

func (s *ServiceSuite) completedMatch(gamesA, gamesB int, winner model.TeamSide) *model.Match {
	ended := s.now
	return &model.Match{
		ID:        "m1",
		Status:    model.MatchStatusCompleted,
		TeamA:     [2]model.PlayerID{"p1", "p2"},
		TeamB:     [2]model.PlayerID{"p3", "p4"},
		GamesWonA: gamesA,
		GamesWonB: gamesB,
		Winner:    winner,
		EndedAt:   &ended,
	}
}

func (s *ServiceSuite) TestApplyRequiresCompletedMatch() {
	match := s.completedMatch(3, 2, model.SideNone)
	match.Status = model.MatchStatusLive

	_, err := s.service.Apply(match, s.equalSkillPlayers(), s.now)
	s.ErrorIs(err, model.ErrMatchNotDone)
}

func (s *ServiceSuite) TestApplyRequiresWinner() {
	match := s.completedMatch(4, 2, model.SideNone)

	_, err := s.service.Apply(match, s.equalSkillPlayers(), s.now)
	s.ErrorIs(err, model.ErrMatchNotDone)
}

func (s *ServiceSuite) TestApplyRequiresAllParticipants() {
	match := s.completedMatch(4, 2, model.SideA)
	players := s.equalSkillPlayers()[:3]

	_, err := s.service.Apply(match, players, s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDecentLossAtEqualSkill() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(4, 2, model.SideA)

	updated, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)
	s.Require().Len(updated, 4)

	for _, p := range players[:2] {
		s.Equal(66, p.Skill)
		s.Equal(10, p.Stats.Points)
		s.Equal(1, p.Stats.Streak)
		s.Equal(1, p.Stats.MatchesPlayed)
		s.Equal(1, p.Stats.MatchesWon)
		s.Equal(4, p.Stats.GamesWon)
		s.Equal(2, p.Stats.GamesLost)
		s.Equal(s.now, p.Stats.LastPlayedAt)
	}
	for _, p := range players[2:] {
		s.Equal(34, p.Skill)
		s.Equal(1, p.Stats.Points)
		s.Equal(-1, p.Stats.Streak)
		s.Equal(1, p.Stats.MatchesLost)
		s.Equal(2, p.Stats.GamesWon)
		s.Equal(4, p.Stats.GamesLost)
	}
}

func (s *ServiceSuite) TestShutoutAmplifiesDeltas() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(4, 0, model.SideA)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	// Winner: round(32*0.5*1.2)+3 = 22, loser: -16-3 = -19
	s.Equal(72, players[0].Skill)
	s.Equal(31, players[2].Skill)
	s.Equal(0, players[2].Stats.Points)
}

func (s *ServiceSuite) TestNearShutout() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(4, 1, model.SideA)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	// Winner: round(32*0.5*1.2)+2 = 21, loser: -16-2 = -18
	s.Equal(71, players[0].Skill)
	s.Equal(32, players[2].Skill)
	s.Equal(0, players[2].Stats.Points)
}

func (s *ServiceSuite) TestCloseLossSoftensPenalty() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(4, 3, model.SideA)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	s.Equal(66, players[0].Skill)
	// Loser: round(32*-0.5*0.8) = -13
	s.Equal(37, players[2].Skill)
	s.Equal(2, players[2].Stats.Points)
}

func (s *ServiceSuite) TestSideBCanWin() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(2, 4, model.SideB)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	s.Equal(34, players[0].Skill)
	s.Equal(1, players[0].Stats.Points)
	s.Equal(66, players[2].Skill)
	s.Equal(10, players[2].Stats.Points)
	s.Equal(4, players[2].Stats.GamesWon)
	s.Equal(2, players[2].Stats.GamesLost)
}

func (s *ServiceSuite) TestSkillClampsToBounds() {
	players := []*model.Player{
		s.player("p1", 99),
		s.player("p2", 99),
		s.player("p3", 21),
		s.player("p4", 21),
	}
	match := s.completedMatch(4, 0, model.SideA)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	s.Equal(model.MaxSkill, players[0].Skill)
	s.Equal(model.MinSkill, players[2].Skill)
}

func (s *ServiceSuite) TestStreaksExtendAndReset() {
	players := s.equalSkillPlayers()
	players[0].Stats.Streak = 3
	players[2].Stats.Streak = -2

	match := s.completedMatch(4, 2, model.SideA)
	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	s.Equal(4, players[0].Stats.Streak)
	s.Equal(-3, players[2].Stats.Streak)

	// The next result in the other direction resets both streaks
	players2 := s.equalSkillPlayers()
	players2[0].Stats.Streak = -2
	players2[2].Stats.Streak = 5

	_, err = s.service.Apply(s.completedMatch(4, 2, model.SideA), players2, s.now)
	s.Require().NoError(err)

	s.Equal(1, players2[0].Stats.Streak)
	s.Equal(-1, players2[2].Stats.Streak)
}

func (s *ServiceSuite) TestPlayedAtFallsBackToNow() {
	players := s.equalSkillPlayers()
	match := s.completedMatch(4, 2, model.SideA)
	match.EndedAt = nil

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)
	s.Equal(s.now, players[0].Stats.LastPlayedAt)
}

func (s *ServiceSuite) TestUnderdogGainsMoreThanFavorite() {
	players := []*model.Player{
		s.player("p1", 40),
		s.player("p2", 40),
		s.player("p3", 80),
		s.player("p4", 80),
	}
	match := s.completedMatch(4, 2, model.SideA)

	_, err := s.service.Apply(match, players, s.now)
	s.Require().NoError(err)

	underdogGain := players[0].Skill - 40
	s.Greater(underdogGain, 16)
	favoriteLoss := 80 - players[2].Skill
	s.Greater(favoriteLoss, 16)
	s.Equal(underdogGain, favoriteLoss)
}
