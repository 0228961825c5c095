package model

// Team pairs two distinct players for one match.
// Teams are ephemeral: constructed fresh for every candidate assignment
// and never persisted directly (matches store the player id pairs).
type Team struct {
	Players       [2]PlayerID
	CombinedSkill int
}

// NewTeam builds a team from two players, summing their skill
func NewTeam(a, b *Player) (Team, error) {
	if a.ID == b.ID {
		return Team{}, ErrDuplicatePlayer
	}
	return Team{
		Players:       [2]PlayerID{a.ID, b.ID},
		CombinedSkill: a.Skill + b.Skill,
	}, nil
}

// Has reports whether the team contains the given player
func (t Team) Has(id PlayerID) bool {
	return t.Players[0] == id || t.Players[1] == id
}

// SamePair reports whether two teams contain the same players, ignoring order
func (t Team) SamePair(o Team) bool {
	if t.Players == o.Players {
		return true
	}
	return t.Players[0] == o.Players[1] && t.Players[1] == o.Players[0]
}
