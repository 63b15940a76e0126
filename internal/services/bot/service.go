package bot

import (
	"context"
	"log/slog"

	"github.com/fiverow/gomoku/internal/model"
	"github.com/fiverow/gomoku/internal/services/game"
)

// Service generates and plays moves for the engine's own color
type Service struct {
	gameController *game.Controller
	strategy       Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController *game.Controller, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategy:       strategy,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// GenerateMove chooses a legal move for the player, applies it, and
// returns the move together with the resulting outcome. When the game
// is already decided it returns model.ErrGameOver without playing.
func (s *Service) GenerateMove(ctx context.Context, id model.GameID, player model.Stone) (model.Move, model.Outcome, error) {
	g, err := s.gameController.GetGame(ctx, id)
	if err != nil {
		return model.Move{}, model.Outcome{}, err
	}

	if g.Over() {
		return model.Move{}, model.Outcome{}, model.ErrGameOver
	}

	mv, ok := s.strategy.ChooseMove(g, player)
	if !ok {
		// Full board with no result is a stale draw state; nothing to play
		return model.Move{}, model.Outcome{}, model.ErrGameOver
	}

	outcome, err := s.gameController.ApplyMove(ctx, id, player, mv)
	if err != nil {
		return model.Move{}, model.Outcome{}, err
	}

	s.logger.Info("move generated",
		slog.String("game_id", string(id)),
		slog.String("player", player.String()),
		slog.Int("row", mv.Point.Row),
		slog.Int("col", mv.Point.Col),
		slog.String("outcome", string(outcome.Kind)),
	)

	return mv, outcome, nil
}
