package livematch

import (
	"context"
	"log/slog"
	"time"

	"github.com/azzbr/padelx/internal/dependencies/clock"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/rating"
	"github.com/azzbr/padelx/internal/storage"
)

// Controller manages the match state machine: waiting -> live -> completed,
// with an explicit completed -> live undo transition
type Controller struct {
	storage storage.Storage
	rating  *rating.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new live-match Controller
func NewController(
	storage storage.Storage,
	rating *rating.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		rating:  rating,
		clock:   clock,
		logger:  logger,
	}
}

// GetMatch retrieves a match by id
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// Start transitions a waiting match to live and records the start time
func (c *Controller) Start(ctx context.Context, id model.MatchID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if match.Status != model.MatchStatusWaiting {
		return nil, model.ErrMatchNotWaiting
	}

	now := c.clock.Now()
	match.Status = model.MatchStatusLive
	match.StartedAt = &now
	match.UpdatedAt = now

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("match_id", string(match.ID)),
		slog.String("court", match.Court),
	)

	return match, nil
}

// RecordGame increments the scoring side's games-won counter on a live
// match, appending an undo history entry. Reaching the win threshold
// completes the match, sets the winner and applies rating updates to
// all four players.
func (c *Controller) RecordGame(ctx context.Context, id model.MatchID, side model.TeamSide) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if match.Status == model.MatchStatusCompleted {
		return nil, model.ErrMatchCompleted
	}
	if match.Status != model.MatchStatusLive {
		return nil, model.ErrMatchNotLive
	}
	if side != model.SideA && side != model.SideB {
		return nil, model.ErrMatchNotLive
	}

	now := c.clock.Now()
	match.History = append(match.History, model.ScoreEvent{
		ScoringSide: side,
		GamesWonA:   match.GamesWonA,
		GamesWonB:   match.GamesWonB,
		At:          now,
	})

	if side == model.SideA {
		match.GamesWonA++
	} else {
		match.GamesWonB++
	}
	match.UpdatedAt = now

	if match.GamesWon(side) >= model.GamesToWin {
		match.Status = model.MatchStatusCompleted
		match.Winner = side
		match.EndedAt = &now

		if err := c.applyRatings(ctx, match, now); err != nil {
			return nil, err
		}

		c.logger.Info("match completed",
			slog.String("match_id", string(match.ID)),
			slog.String("winner", string(side)),
			slog.Int("games_a", match.GamesWonA),
			slog.Int("games_b", match.GamesWonB),
		)
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// UndoLastGame reverts the most recent scoring event, restoring the
// pre-event score. A completed match reopens to live with winner and
// end time cleared. Undo with no history is a no-op, not an error.
func (c *Controller) UndoLastGame(ctx context.Context, id model.MatchID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(match.History) == 0 {
		return match, nil
	}

	last := match.History[len(match.History)-1]
	match.History = match.History[:len(match.History)-1]
	match.GamesWonA = last.GamesWonA
	match.GamesWonB = last.GamesWonB

	if match.Status == model.MatchStatusCompleted {
		match.Status = model.MatchStatusLive
		match.Winner = model.SideNone
		match.EndedAt = nil
	}
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("score event undone",
		slog.String("match_id", string(match.ID)),
		slog.Int("games_a", match.GamesWonA),
		slog.Int("games_b", match.GamesWonB),
	)

	return match, nil
}

// applyRatings loads the four participants and applies the post-match updates
func (c *Controller) applyRatings(ctx context.Context, match *model.Match, now time.Time) error {
	players := make([]*model.Player, 0, 4)
	for _, id := range match.PlayerIDs() {
		p, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return err
		}
		players = append(players, p)
	}

	updated, err := c.rating.Apply(match, players, now)
	if err != nil {
		return err
	}

	for _, p := range updated {
		p.UpdatedAt = now
		if err := c.storage.SavePlayer(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	Start(ctx context.Context, id model.MatchID) (*model.Match, error)
	RecordGame(ctx context.Context, id model.MatchID, side model.TeamSide) (*model.Match, error)
	UndoLastGame(ctx context.Context, id model.MatchID) (*model.Match, error)
}

var _ ControllerInterface = (*Controller)(nil)
