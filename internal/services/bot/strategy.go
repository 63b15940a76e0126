package bot

import "github.com/fiverow/gomoku/internal/model"

// Strategy defines how the engine chooses its own moves
type Strategy interface {
	// ChooseMove selects a move for the given player. The second
	// return is false when no move is available.
	ChooseMove(game *model.Game, player model.Stone) (model.Move, bool)
}
