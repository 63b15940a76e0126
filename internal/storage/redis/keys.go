package redis

import (
	"fmt"

	"github.com/fiverow/gomoku/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "gomoku"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gameIndexKey returns the Redis key for the SET of known game IDs
func gameIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
