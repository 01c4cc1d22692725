package redis

import (
	"fmt"

	"github.com/scorekeep/scorekeep/internal/model"
)

// Key prefix for all score-tracking data
const keyPrefix = "scorekeep"

// Key generation functions for each entity type

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// userNameIndexKey returns the Redis key for the user_name -> session_id index
func userNameIndexKey(userName string) string {
	return fmt.Sprintf("%s:idx:user_name:%s", keyPrefix, userName)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerNameIndexKey returns the Redis key for the player name -> player_id index
func playerNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s", keyPrefix, name)
}

// playersIndexKey returns the Redis key for the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game ids
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// gamesByPlayerIndexKey returns the Redis key for the SET of a player's game ids
func gamesByPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:games_by_player:%s", keyPrefix, playerID)
}
