package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/azzbr/padelx/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "p_alice",
		DisplayName: "Alice",
		Skill:       65,
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "p_alice")
	s.Require().NoError(err)
	s.Equal(player.ID, got.ID)
	s.Equal("Alice", got.DisplayName)
	s.Equal(65, got.Skill)
}

func (s *StorageSuite) TestGetMissingPlayer() {
	_, err := s.storage.GetPlayer(s.ctx, "nope")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersSortedByID() {
	for _, id := range []model.PlayerID{"p_c", "p_a", "p_b"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: id, Skill: 50}))
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("p_a"), players[0].ID)
	s.Equal(model.PlayerID("p_b"), players[1].ID)
	s.Equal(model.PlayerID("p_c"), players[2].ID)
}

func (s *StorageSuite) TestGuestPlayerExpires() {
	guest := &model.Player{ID: "p_guest", DisplayName: "Guest", Skill: 40, IsGuest: true}
	member := &model.Player{ID: "p_member", DisplayName: "Member", Skill: 60}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, guest))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, member))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetPlayer(s.ctx, "p_guest")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	// Members never expire, and listing skips the stale guest index entry
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("p_member"), players[0].ID)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_a", Skill: 50}))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "p_a"))

	_, err := s.storage.GetPlayer(s.ctx, "p_a")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		ID:        "s_night1",
		Date:      "2024-01-20",
		Status:    model.SessionStatusPlanning,
		PlayerIDs: []model.PlayerID{"p1", "p2", "p3", "p4"},
		MatchIDs:  []model.MatchID{"m1"},
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "s_night1")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal("2024-01-20", got.Date)
	s.Equal(model.SessionStatusPlanning, got.Status)
	s.Equal(session.PlayerIDs, got.PlayerIDs)
}

func (s *StorageSuite) TestGetMissingSession() {
	_, err := s.storage.GetSession(s.ctx, "nope")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestListSessions() {
	for _, id := range []model.SessionID{"s_b", "s_a"} {
		s.Require().NoError(s.storage.SaveSession(s.ctx, &model.Session{ID: id}))
	}

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("s_a"), sessions[0].ID)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	started := time.Date(2024, 1, 20, 19, 0, 0, 0, time.UTC)
	match := &model.Match{
		ID:        "m_1",
		SessionID: "s_night1",
		Round:     1,
		Court:     "A",
		Status:    model.MatchStatusLive,
		TeamA:     [2]model.PlayerID{"p1", "p2"},
		TeamB:     [2]model.PlayerID{"p3", "p4"},
		GamesWonA: 2,
		GamesWonB: 1,
		StartedAt: &started,
		History: []model.ScoreEvent{
			{ScoringSide: model.SideA, GamesWonA: 0, GamesWonB: 0, At: started},
		},
	}

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	got, err := s.storage.GetMatch(s.ctx, "m_1")
	s.Require().NoError(err)
	s.Equal(match.TeamA, got.TeamA)
	s.Equal(2, got.GamesWonA)
	s.Require().Len(got.History, 1)
	s.Equal(model.SideA, got.History[0].ScoringSide)
}

func (s *StorageSuite) TestGetMissingMatch() {
	_, err := s.storage.GetMatch(s.ctx, "nope")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestGetMatchesForSession() {
	for _, m := range []*model.Match{
		{ID: "m_1", SessionID: "s_a"},
		{ID: "m_2", SessionID: "s_a"},
		{ID: "m_3", SessionID: "s_b"},
	} {
		s.Require().NoError(s.storage.SaveMatch(s.ctx, m))
	}

	matches, err := s.storage.GetMatchesForSession(s.ctx, "s_a")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(model.MatchID("m_1"), matches[0].ID)
	s.Equal(model.MatchID("m_2"), matches[1].ID)

	all, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

// Organizer tests

func (s *StorageSuite) TestSaveAndGetOrganizer() {
	organizer := &model.Organizer{
		ID:           "o_admin",
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
	}

	s.Require().NoError(s.storage.SaveOrganizer(s.ctx, organizer))

	got, err := s.storage.GetOrganizer(s.ctx, "o_admin")
	s.Require().NoError(err)
	s.Equal("admin", got.Username)

	byName, err := s.storage.GetOrganizerByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal(organizer.ID, byName.ID)
}

func (s *StorageSuite) TestGetMissingOrganizer() {
	_, err := s.storage.GetOrganizer(s.ctx, "nope")
	s.ErrorIs(err, model.ErrOrganizerNotFound)

	_, err = s.storage.GetOrganizerByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrOrganizerNotFound)
}
