package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.Player
	sessions      map[model.SessionID]*model.Session
	matches       map[model.MatchID]*model.Match
	organizers    map[model.OrganizerID]*model.Organizer
	usernameIndex map[string]model.OrganizerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.Player),
		sessions:      make(map[model.SessionID]*model.Session),
		matches:       make(map[model.MatchID]*model.Match),
		organizers:    make(map[model.OrganizerID]*model.Organizer),
		usernameIndex: make(map[string]model.OrganizerID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]*model.Match, 0, len(s.matches))
	for _, m := range s.matches {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func (s *Storage) GetMatchesForSession(ctx context.Context, id model.SessionID) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []*model.Match
	for _, m := range s.matches {
		if m.SessionID == id {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

// Organizer operations

func (s *Storage) SaveOrganizer(ctx context.Context, organizer *model.Organizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizers[organizer.ID] = organizer
	s.usernameIndex[organizer.Username] = organizer.ID
	return nil
}

func (s *Storage) GetOrganizer(ctx context.Context, id model.OrganizerID) (*model.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	organizer, ok := s.organizers[id]
	if !ok {
		return nil, model.ErrOrganizerNotFound
	}
	return organizer, nil
}

func (s *Storage) GetOrganizerByUsername(ctx context.Context, username string) (*model.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrOrganizerNotFound
	}
	organizer, ok := s.organizers[id]
	if !ok {
		return nil, model.ErrOrganizerNotFound
	}
	return organizer, nil
}
