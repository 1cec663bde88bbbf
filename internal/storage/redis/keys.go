package redis

import (
	"fmt"

	"github.com/dicegame/dicegame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "dicegame"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// nameIndexKey returns the Redis key for the name -> player_id index
func nameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:name:%s", keyPrefix, name)
}

// rollsKey returns the Redis key for the LIST of a player's rolls
func rollsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:rolls:%s", keyPrefix, playerID)
}
