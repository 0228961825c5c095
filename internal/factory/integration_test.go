package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/history"
	"github.com/azzbr/padelx/internal/services/partition"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// registerPlayers registers four equal-skill players: alice, bob, carol, dave
func (s *IntegrationSuite) registerPlayers() []*model.Player {
	players := make([]*model.Player, 0, 4)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		s.app.MockRandom.QueueString(name + "00001")
		p, err := s.app.RosterController.Register(s.ctx, name, 50, false)
		s.Require().NoError(err)
		players = append(players, p)
	}
	return players
}

// Test: Complete club night from roster to rated players
func (s *IntegrationSuite) TestCompleteClubNightFlow() {
	players := s.registerPlayers()
	alice, bob, carol, dave := players[0], players[1], players[2], players[3]

	// Step 1: Generate an assignment (no history yet)
	idx, err := s.app.SessionController.BuildHistoryIndex(s.ctx, history.DefaultWindow)
	s.Require().NoError(err)

	previews, err := s.app.MatchmakingService.GenerateMatchesWithDuplicatePrevention(
		players, partition.StrategySkillTiered, idx)
	s.Require().NoError(err)
	s.Require().Len(previews, 1)
	s.Equal([2]model.PlayerID{alice.ID, dave.ID}, previews[0].TeamA.Players)
	s.Equal([2]model.PlayerID{bob.ID, carol.ID}, previews[0].TeamB.Players)

	// Step 2: Confirm the previews into a session
	s.app.MockRandom.QueueString("night00001", "match00001")
	session, matches, err := s.app.SessionController.CreateFromPreview(s.ctx, "2024-01-20", previews)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusPlanning, session.Status)
	s.Require().Len(matches, 1)

	_, err = s.app.SessionController.Activate(s.ctx, session.ID)
	s.Require().NoError(err)

	// Step 3: Play the match: team A wins 4-2
	matchID := matches[0].ID
	_, err = s.app.LiveMatchController.Start(s.ctx, matchID)
	s.Require().NoError(err)

	for _, side := range []model.TeamSide{
		model.SideA, model.SideB, model.SideA, model.SideB, model.SideA, model.SideA,
	} {
		_, err = s.app.LiveMatchController.RecordGame(s.ctx, matchID, side)
		s.Require().NoError(err)
	}

	match, err := s.app.LiveMatchController.GetMatch(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(model.MatchStatusCompleted, match.Status)
	s.Equal(model.SideA, match.Winner)

	// Step 4: Ratings landed on all four players
	for _, winner := range []model.PlayerID{alice.ID, dave.ID} {
		p, err := s.app.RosterController.GetPlayer(s.ctx, winner)
		s.Require().NoError(err)
		s.Equal(66, p.Skill)
		s.Equal(10, p.Stats.Points)
		s.Equal(1, p.Stats.Streak)
	}
	for _, loser := range []model.PlayerID{bob.ID, carol.ID} {
		p, err := s.app.RosterController.GetPlayer(s.ctx, loser)
		s.Require().NoError(err)
		s.Equal(34, p.Skill)
		s.Equal(1, p.Stats.Points)
		s.Equal(-1, p.Stats.Streak)
	}

	// Step 5: Close out the night
	completed, err := s.app.SessionController.Complete(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusCompleted, completed.Status)
}

// Test: History from one night steers the next night's teams
func (s *IntegrationSuite) TestNextNightAvoidsRepeatTeammates() {
	players := s.registerPlayers()
	alice, bob, carol, dave := players[0], players[1], players[2], players[3]

	// First night: alice+dave vs bob+carol, confirmed and completed
	idx, err := s.app.SessionController.BuildHistoryIndex(s.ctx, history.DefaultWindow)
	s.Require().NoError(err)
	previews, err := s.app.MatchmakingService.GenerateMatchesWithDuplicatePrevention(
		players, partition.StrategySkillTiered, idx)
	s.Require().NoError(err)

	s.app.MockRandom.QueueString("night00001", "match00001")
	session, _, err := s.app.SessionController.CreateFromPreview(s.ctx, "2024-01-20", previews)
	s.Require().NoError(err)
	_, err = s.app.SessionController.Activate(s.ctx, session.ID)
	s.Require().NoError(err)
	_, err = s.app.SessionController.Complete(s.ctx, session.ID)
	s.Require().NoError(err)

	// Second night: the index now knows the repeat pairings
	idx, err = s.app.SessionController.BuildHistoryIndex(s.ctx, history.DefaultWindow)
	s.Require().NoError(err)
	s.True(idx.PlayedAsTeammates(alice.ID, dave.ID))

	roster, err := s.app.RosterController.ListPlayers(s.ctx)
	s.Require().NoError(err)

	next, err := s.app.MatchmakingService.GenerateMatchesWithDuplicatePrevention(
		roster, partition.StrategySkillTiered, idx)
	s.Require().NoError(err)
	s.Require().Len(next, 1)

	s.Equal([2]model.PlayerID{alice.ID, carol.ID}, next[0].TeamA.Players)
	s.Equal([2]model.PlayerID{dave.ID, bob.ID}, next[0].TeamB.Players)
}

// Test: Undoing the final game reopens the match for rescoring
func (s *IntegrationSuite) TestUndoReopensFinishedMatch() {
	players := s.registerPlayers()

	idx, err := s.app.SessionController.BuildHistoryIndex(s.ctx, history.DefaultWindow)
	s.Require().NoError(err)
	previews, err := s.app.MatchmakingService.GenerateMatchesWithDuplicatePrevention(
		players, partition.StrategySkillTiered, idx)
	s.Require().NoError(err)

	s.app.MockRandom.QueueString("night00001", "match00001")
	_, matches, err := s.app.SessionController.CreateFromPreview(s.ctx, "2024-01-20", previews)
	s.Require().NoError(err)

	matchID := matches[0].ID
	_, err = s.app.LiveMatchController.Start(s.ctx, matchID)
	s.Require().NoError(err)

	for i := 0; i < 4; i++ {
		_, err = s.app.LiveMatchController.RecordGame(s.ctx, matchID, model.SideA)
		s.Require().NoError(err)
	}

	match, err := s.app.LiveMatchController.UndoLastGame(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(model.MatchStatusLive, match.Status)
	s.Equal(3, match.GamesWonA)
	s.Equal(model.SideNone, match.Winner)

	// The other side can still take the match
	for i := 0; i < 4; i++ {
		_, err = s.app.LiveMatchController.RecordGame(s.ctx, matchID, model.SideB)
		s.Require().NoError(err)
	}
	match, err = s.app.LiveMatchController.GetMatch(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(model.SideB, match.Winner)
}
