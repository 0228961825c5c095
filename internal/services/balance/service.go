package balance

import (
	"fmt"

	"github.com/azzbr/padelx/internal/model"
)

// Severity thresholds on the absolute combined-skill difference.
// These drive advisory warnings during generation.
const (
	BalancedMax = 10
	ModerateMax = 20
)

// Display thresholds, tighter than the severity bands. These drive
// the quality report labels shown to users and are intentionally kept
// separate from the severity classification.
const (
	DisplayPerfectMax = 5
	DisplayGoodMax    = 10
)

// Tier classifies an imbalance for warning purposes
type Tier string

const (
	TierBalanced Tier = "balanced"
	TierModerate Tier = "moderate"
	TierSevere   Tier = "severe"
)

// DisplayTier classifies an imbalance for display purposes
type DisplayTier string

const (
	DisplayPerfect    DisplayTier = "perfectly_balanced"
	DisplayGood       DisplayTier = "good_match"
	DisplayUnbalanced DisplayTier = "unbalanced"
)

// Service scores the skill balance between two teams
type Service struct{}

// New creates a new balance Service
func New() *Service {
	return &Service{}
}

// Imbalance returns the absolute difference in combined skill between two teams
func (s *Service) Imbalance(a, b model.Team) int {
	diff := a.CombinedSkill - b.CombinedSkill
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// Classify maps an imbalance to its severity tier. For moderate and
// severe tiers a human-readable advisory warning is returned; the
// warning never blocks generation.
func (s *Service) Classify(imbalance int) (Tier, string) {
	switch {
	case imbalance <= BalancedMax:
		return TierBalanced, ""
	case imbalance <= ModerateMax:
		return TierModerate, fmt.Sprintf("moderate skill imbalance (%d points)", imbalance)
	default:
		return TierSevere, fmt.Sprintf("severe skill imbalance (%d points)", imbalance)
	}
}

// DisplayClassify maps an imbalance to its display tier
func (s *Service) DisplayClassify(imbalance int) DisplayTier {
	switch {
	case imbalance <= DisplayPerfectMax:
		return DisplayPerfect
	case imbalance <= DisplayGoodMax:
		return DisplayGood
	default:
		return DisplayUnbalanced
	}
}
