package redis

import (
	"fmt"

	"github.com/chronle/chronle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "chronle"

// Key generation functions for each entity type

// eventKey returns the Redis key for a day's Event
func eventKey(date model.Day) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, date)
}

// leaderboardKey returns the Redis key for a day's leaderboard entries
func leaderboardKey(date model.Day) string {
	return fmt.Sprintf("%s:leaderboard:%s", keyPrefix, date)
}

// playerRecordKey returns the Redis key for a PlayerRecord
func playerRecordKey(username string) string {
	return fmt.Sprintf("%s:record:%s", keyPrefix, username)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}
