package quality

import (
	"math"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/balance"
	"github.com/azzbr/padelx/internal/services/freshness"
	"github.com/azzbr/padelx/internal/services/history"
)

// Rating labels for the overall score, best to worst
const (
	RatingExcellent = "Excellent"
	RatingVeryGood  = "Very Good"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

// Report summarizes the balance and freshness of a full assignment
type Report struct {
	BalanceScore   float64
	FreshnessScore float64
	OverallScore   int
	Rating         string

	// Display-tier counts over the assignment's matches
	PerfectCount    int
	GoodCount       int
	UnbalancedCount int

	// AvgSkillDiff is the mean raw combined-skill difference per match
	AvgSkillDiff float64
}

// Service aggregates per-match balance and freshness into display metrics
type Service struct {
	balance   *balance.Service
	freshness *freshness.Service
}

// New creates a new quality Service
func New(balance *balance.Service, freshness *freshness.Service) *Service {
	return &Service{
		balance:   balance,
		freshness: freshness,
	}
}

// Report computes aggregate quality metrics for an assignment. An empty
// assignment yields all-zero scores and counts (rated Poor).
func (s *Service) Report(previews []model.MatchPreview, idx *history.Index) Report {
	report := Report{Rating: RatingLabel(0)}
	if len(previews) == 0 {
		return report
	}

	balanceTotal := 0.0
	freshnessTotal := 0.0
	skillDiffTotal := 0.0

	for _, p := range previews {
		imbalance := s.balance.Imbalance(p.TeamA, p.TeamB)
		skillDiffTotal += float64(imbalance)

		perMatch := 100 - 2*imbalance
		if perMatch < 0 {
			perMatch = 0
		}
		balanceTotal += float64(perMatch)
		freshnessTotal += float64(s.freshness.MatchFreshness(p.TeamA, p.TeamB, idx))

		switch s.balance.DisplayClassify(imbalance) {
		case balance.DisplayPerfect:
			report.PerfectCount++
		case balance.DisplayGood:
			report.GoodCount++
		default:
			report.UnbalancedCount++
		}
	}

	n := float64(len(previews))
	report.BalanceScore = balanceTotal / n
	report.FreshnessScore = freshnessTotal / n
	report.AvgSkillDiff = skillDiffTotal / n
	report.OverallScore = int(math.Round(0.7*report.BalanceScore + 0.3*report.FreshnessScore))
	report.Rating = RatingLabel(report.OverallScore)

	return report
}

// RatingLabel maps an overall score to its five-band label.
// Bands are closed-open except the top.
func RatingLabel(score int) string {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingVeryGood
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}
