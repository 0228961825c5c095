package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/azzbr/padelx/internal/dependencies/clock"
	"github.com/azzbr/padelx/internal/dependencies/random"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/storage"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// Controller manages the club roster: registration, availability and lookups
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new roster Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Register validates and stores a new player. Skill outside [1, 100] is
// rejected, never silently corrected.
func (c *Controller) Register(ctx context.Context, name string, skill int, isGuest bool) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	if skill < model.SkillFloor || skill > model.MaxSkill {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidSkill, skill)
	}

	now := c.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID("p_" + c.random.String(idLength, idAlphabet)),
		DisplayName: name,
		Skill:       skill,
		IsGuest:     isGuest,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("name", name),
		slog.Int("skill", skill),
		slog.Bool("guest", isGuest),
	)

	return player, nil
}

// SetAvailability replaces a player's list of available session dates
func (c *Controller) SetAvailability(ctx context.Context, id model.PlayerID, dates []string) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Availability = dates
	player.UpdatedAt = c.clock.Now()

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// AvailableOn returns all players who marked themselves available for a date
func (c *Controller) AvailableOn(ctx context.Context, date string) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if p.IsAvailableOn(date) {
			available = append(available, p)
		}
	}
	return available, nil
}

// GetPlayer retrieves a player by id
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// GetPlayers resolves a list of player ids, failing if any is missing
func (c *Controller) GetPlayers(ctx context.Context, ids []model.PlayerID) ([]*model.Player, error) {
	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		p, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", model.ErrPlayerNotFound, id)
		}
		players = append(players, p)
	}
	return players, nil
}

// ListPlayers returns the full roster
func (c *Controller) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return c.storage.ListPlayers(ctx)
}

// RemovePlayer deletes a player from the roster
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := c.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	return c.storage.DeletePlayer(ctx, id)
}
