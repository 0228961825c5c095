package redis

import (
	"fmt"

	"github.com/azzbr/padelx/internal/model"
)

// Key prefix for all club data
const keyPrefix = "padelx"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsIndexKey returns the Redis key for the SET of all session ids
func sessionsIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesIndexKey returns the Redis key for the SET of all match ids
func matchesIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}

// matchesForSessionIndexKey returns the Redis key for the SET of match ids in a session
func matchesForSessionIndexKey(id model.SessionID) string {
	return fmt.Sprintf("%s:idx:matches_for_session:%s", keyPrefix, id)
}

// organizerKey returns the Redis key for an Organizer
func organizerKey(id model.OrganizerID) string {
	return fmt.Sprintf("%s:organizer:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> organizer_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}
