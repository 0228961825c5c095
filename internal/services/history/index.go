package history

import (
	"sort"

	"github.com/azzbr/padelx/internal/model"
)

// DefaultWindow is the number of most recent sessions considered "recent"
const DefaultWindow = 3

// pairKey is an unordered pair of player ids (a < b)
type pairKey struct {
	a, b model.PlayerID
}

func newPairKey(a, b model.PlayerID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// matchupKey is an unordered pair of team pairs
type matchupKey struct {
	x, y pairKey
}

func newMatchupKey(x, y pairKey) matchupKey {
	if y.a < x.a || (y.a == x.a && y.b < x.b) {
		x, y = y, x
	}
	return matchupKey{x: x, y: y}
}

// Index is a queryable view of recent player pairings, built once per
// matchmaking run from stored sessions and matches.
type Index struct {
	together  map[pairKey]struct{}
	teammates map[pairKey]struct{}
	matchups  map[matchupKey]struct{}
}

// NewIndex builds an index over the matches referenced by the `window`
// most recently dated sessions. A window of 0 or less falls back to
// DefaultWindow. With no history every query returns false.
func NewIndex(sessions []*model.Session, matches []*model.Match, window int) *Index {
	if window <= 0 {
		window = DefaultWindow
	}

	idx := &Index{
		together:  make(map[pairKey]struct{}),
		teammates: make(map[pairKey]struct{}),
		matchups:  make(map[matchupKey]struct{}),
	}

	// Most recent sessions first; tie-break on creation time so the
	// window is stable for same-day sessions
	sorted := make([]*model.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > window {
		sorted = sorted[:window]
	}

	recent := make(map[model.MatchID]struct{})
	for _, sess := range sorted {
		for _, id := range sess.MatchIDs {
			recent[id] = struct{}{}
		}
	}

	for _, m := range matches {
		if _, ok := recent[m.ID]; !ok {
			continue
		}
		idx.add(m)
	}

	return idx
}

func (idx *Index) add(m *model.Match) {
	sideA := newPairKey(m.TeamA[0], m.TeamA[1])
	sideB := newPairKey(m.TeamB[0], m.TeamB[1])

	idx.teammates[sideA] = struct{}{}
	idx.teammates[sideB] = struct{}{}
	idx.matchups[newMatchupKey(sideA, sideB)] = struct{}{}

	ids := m.PlayerIDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			idx.together[newPairKey(ids[i], ids[j])] = struct{}{}
		}
	}
}

// PlayedTogether reports whether both players appeared in the same
// recent match, as teammates or opponents
func (idx *Index) PlayedTogether(a, b model.PlayerID) bool {
	_, ok := idx.together[newPairKey(a, b)]
	return ok
}

// PlayedAsTeammates reports whether both players were on the same side
// of some recent match
func (idx *Index) PlayedAsTeammates(a, b model.PlayerID) bool {
	_, ok := idx.teammates[newPairKey(a, b)]
	return ok
}

// PlayedAsOpponents reports whether the exact pairing of these two
// teams occurred in some recent match, in either side assignment
func (idx *Index) PlayedAsOpponents(x, y model.Team) bool {
	kx := newPairKey(x.Players[0], x.Players[1])
	ky := newPairKey(y.Players[0], y.Players[1])
	_, ok := idx.matchups[newMatchupKey(kx, ky)]
	return ok
}
