package matchmaking

import (
	"fmt"
	"log/slog"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/balance"
	"github.com/azzbr/padelx/internal/services/freshness"
	"github.com/azzbr/padelx/internal/services/history"
	"github.com/azzbr/padelx/internal/services/partition"
)

// SelectionAttempts is the number of candidate assignments generated
// and compared per history-aware matchmaking run
const SelectionAttempts = 5

// MaxMatchesPerRun bounds how many courts one generation run may fill
const MaxMatchesPerRun = 4

// Service generates match assignments and selects the best of several
// candidates by freshness
type Service struct {
	partition *partition.Service
	balance   *balance.Service
	freshness *freshness.Service
	logger    *slog.Logger
}

// New creates a new matchmaking Service
func New(
	partition *partition.Service,
	balance *balance.Service,
	freshness *freshness.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		partition: partition,
		balance:   balance,
		freshness: freshness,
		logger:    logger,
	}
}

// GenerateMatches produces an assignment with the plain strategy, with
// no history weighting
func (s *Service) GenerateMatches(players []*model.Player, strategy partition.Strategy) ([]model.MatchPreview, error) {
	return s.partition.Generate(players, strategy)
}

// GenerateMatchesWithDuplicatePrevention runs the strategy several times
// and keeps the candidate assignment with the highest total freshness
// against recent history. Random strategies vary naturally per attempt;
// the deterministic skill-tiered strategy is replaced by a freshness-aware
// variant that weighs alternative local pairings. If every attempt fails
// the plain strategy result is returned instead; for a valid roster that
// fallback cannot fail.
func (s *Service) GenerateMatchesWithDuplicatePrevention(
	players []*model.Player,
	strategy partition.Strategy,
	idx *history.Index,
) ([]model.MatchPreview, error) {
	if err := partition.ValidateRoster(len(players)); err != nil {
		return nil, err
	}

	var best []model.MatchPreview
	bestScore := -1

	for attempt := 0; attempt < SelectionAttempts; attempt++ {
		candidate, err := s.generateAttempt(players, strategy, idx)
		if err != nil {
			s.logger.Warn("matchmaking attempt failed",
				slog.Int("attempt", attempt+1),
				slog.String("strategy", string(strategy)),
				slog.String("error", err.Error()),
			)
			continue
		}
		score := s.freshness.AssignmentFreshness(candidate, idx)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if best == nil {
		s.logger.Warn("all matchmaking attempts failed, using plain strategy",
			slog.String("strategy", string(strategy)),
		)
		return s.partition.Generate(players, strategy)
	}
	return best, nil
}

// generateAttempt produces one candidate assignment
func (s *Service) generateAttempt(
	players []*model.Player,
	strategy partition.Strategy,
	idx *history.Index,
) ([]model.MatchPreview, error) {
	if strategy == partition.StrategySkillTiered {
		return s.freshSkillTiered(players, idx)
	}
	return s.partition.Generate(players, strategy)
}

// ValidatePreview checks a candidate assignment and returns human-readable
// violation messages; an empty slice means the preview is valid.
func (s *Service) ValidatePreview(previews []model.MatchPreview) []string {
	var violations []string

	if len(previews) < 1 || len(previews) > MaxMatchesPerRun {
		violations = append(violations,
			fmt.Sprintf("match count must be between 1 and %d, got %d", MaxMatchesPerRun, len(previews)))
	}

	seen := make(map[model.PlayerID]string)
	for _, p := range previews {
		for _, team := range []model.Team{p.TeamA, p.TeamB} {
			if team.Players[0] == team.Players[1] {
				violations = append(violations,
					fmt.Sprintf("court %s: team fields the same player twice (%s)", p.Court, team.Players[0]))
			}
		}
		for _, id := range p.PlayerIDs() {
			prev, ok := seen[id]
			switch {
			case !ok:
				seen[id] = p.Court
			case prev != p.Court:
				violations = append(violations,
					fmt.Sprintf("player %s assigned to both court %s and court %s", id, prev, p.Court))
			default:
				violations = append(violations,
					fmt.Sprintf("player %s appears more than once on court %s", id, p.Court))
			}
		}
	}

	return violations
}
