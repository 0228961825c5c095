package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/azzbr/padelx/internal/dependencies/clock"
	"github.com/azzbr/padelx/internal/dependencies/random"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/history"
	"github.com/azzbr/padelx/internal/services/matchmaking"
	"github.com/azzbr/padelx/internal/storage"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// Controller manages club-night sessions and the matches persisted under them
type Controller struct {
	storage     storage.Storage
	matchmaking *matchmaking.Service
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	matchmaking *matchmaking.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		matchmaking: matchmaking,
		clock:       clock,
		random:      random,
		logger:      logger,
	}
}

// CreateFromPreview validates a set of match previews and persists them as a
// planning session with one waiting match per court
func (c *Controller) CreateFromPreview(ctx context.Context, date string, previews []model.MatchPreview) (*model.Session, []*model.Match, error) {
	if violations := c.matchmaking.ValidatePreview(previews); len(violations) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", model.ErrInvalidPreview, strings.Join(violations, "; "))
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID("s_" + c.random.String(idLength, idAlphabet)),
		Date:      date,
		Status:    model.SessionStatusPlanning,
		CreatedAt: now,
		UpdatedAt: now,
	}

	matches := make([]*model.Match, 0, len(previews))
	for _, preview := range previews {
		match := &model.Match{
			ID:        model.MatchID("m_" + c.random.String(idLength, idAlphabet)),
			SessionID: session.ID,
			Round:     1,
			Court:     preview.Court,
			Status:    model.MatchStatusWaiting,
			TeamA:     preview.TeamA.Players,
			TeamB:     preview.TeamB.Players,
			CreatedAt: now,
			UpdatedAt: now,
		}
		matches = append(matches, match)
		session.MatchIDs = append(session.MatchIDs, match.ID)
		session.PlayerIDs = append(session.PlayerIDs, preview.PlayerIDs()...)
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	for _, match := range matches {
		if err := c.storage.SaveMatch(ctx, match); err != nil {
			return nil, nil, err
		}
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("date", date),
		slog.Int("matches", len(matches)),
	)

	return session, matches, nil
}

// Activate transitions a planning session to active
func (c *Controller) Activate(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.transition(ctx, id, model.SessionStatusPlanning, model.SessionStatusActive)
}

// Complete transitions an active session to completed
func (c *Controller) Complete(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.transition(ctx, id, model.SessionStatusActive, model.SessionStatusCompleted)
}

func (c *Controller) transition(ctx context.Context, id model.SessionID, from, to model.SessionStatus) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status != from {
		return nil, model.ErrInvalidSessionState
	}

	session.Status = to
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session transitioned",
		slog.String("session_id", string(session.ID)),
		slog.String("status", string(to)),
	)

	return session, nil
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns all stored sessions
func (c *Controller) ListSessions(ctx context.Context) ([]*model.Session, error) {
	return c.storage.ListSessions(ctx)
}

// GetMatchesForSession returns all matches persisted under a session
func (c *Controller) GetMatchesForSession(ctx context.Context, id model.SessionID) ([]*model.Match, error) {
	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return nil, err
	}
	return c.storage.GetMatchesForSession(ctx, id)
}

// BuildHistoryIndex loads stored sessions and matches and indexes the most
// recent window of them for freshness queries
func (c *Controller) BuildHistoryIndex(ctx context.Context, window int) (*history.Index, error) {
	sessions, err := c.storage.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	return history.NewIndex(sessions, matches, window), nil
}
