package storage

import (
	"context"

	"github.com/azzbr/padelx/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context) ([]*model.Match, error)
	GetMatchesForSession(ctx context.Context, id model.SessionID) ([]*model.Match, error)

	// Organizer operations
	SaveOrganizer(ctx context.Context, organizer *model.Organizer) error
	GetOrganizer(ctx context.Context, id model.OrganizerID) (*model.Organizer, error)
	GetOrganizerByUsername(ctx context.Context, username string) (*model.Organizer, error)
}
