package bot

import (
	"github.com/fiverow/gomoku/internal/dependencies/random"
	"github.com/fiverow/gomoku/internal/model"
)

// RandomStrategy picks a uniformly random empty cell
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Ensure RandomStrategy implements Strategy
var _ Strategy = (*RandomStrategy)(nil)

// ChooseMove picks a random empty cell on the board
func (s *RandomStrategy) ChooseMove(game *model.Game, player model.Stone) (model.Move, bool) {
	empty := game.Board.EmptyCells()
	if len(empty) == 0 {
		return model.Move{}, false
	}
	return model.PointMove(empty[s.random.Intn(len(empty))]), true
}
