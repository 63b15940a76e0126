package game

import (
	"context"
	"log/slog"

	"github.com/fiverow/gomoku/internal/dependencies/clock"
	"github.com/fiverow/gomoku/internal/dependencies/random"
	"github.com/fiverow/gomoku/internal/model"
	"github.com/fiverow/gomoku/internal/storage"
)

// Config holds rule settings for the controller
type Config struct {
	// WinLength is the run length that wins the game
	WinLength int
	// DefaultBoardSize is used when a game is created without an
	// explicit size
	DefaultBoardSize int
}

// DefaultConfig returns standard Gomoku rules
func DefaultConfig() Config {
	return Config{
		WinLength:        5,
		DefaultBoardSize: 15,
	}
}

// Controller manages game sessions: creation, move application and
// win/draw determination on top of the board and run tracker
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	cfg     Config
	logger  *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		cfg:     cfg,
		logger:  logger,
	}
}

// NewGame creates and persists a new game of the given size
func (c *Controller) NewGame(ctx context.Context, size int) (*model.Game, error) {
	board, err := model.NewBoard(size)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")),
		Board:     board,
		Tracker:   model.NewRunTracker(),
		Status:    model.GameStatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("board_size", size),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// DeleteGame removes a game session
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	return c.storage.DeleteGame(ctx, id)
}

// ListGameIDs returns the IDs of all stored games
func (c *Controller) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGameIDs(ctx)
}

// Reset discards the game's board and tracker and starts over at the
// given size. Used for both clear_board and boardsize.
func (c *Controller) Reset(ctx context.Context, id model.GameID, size int) error {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}

	if err := game.Board.Reset(size); err != nil {
		return err
	}
	game.Tracker = model.NewRunTracker()
	game.Status = model.GameStatusOngoing
	game.Winner = model.Empty
	game.History = nil
	game.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, game)
}

// ApplyMove applies a move for the given player and returns the
// outcome. Illegal moves are rejected with a sentinel error and leave
// the game state untouched.
func (c *Controller) ApplyMove(ctx context.Context, id model.GameID, player model.Stone, mv model.Move) (model.Outcome, error) {
	if !player.IsPlayer() {
		return model.Outcome{}, model.ErrInvalidColor
	}

	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.Outcome{}, err
	}

	if game.Over() {
		return model.Outcome{}, model.ErrGameOver
	}

	if mv.Pass {
		// A pass only alternates the player to move
		c.recordMove(game, player, mv)
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return model.Outcome{}, err
		}
		return model.Outcome{Kind: model.OutcomeContinue}, nil
	}

	if !game.Board.InBounds(mv.Point) {
		return model.Outcome{}, model.ErrOutOfBounds
	}
	if err := game.Board.Place(mv.Point, player); err != nil {
		return model.Outcome{}, err
	}

	maxRun := game.Tracker.RecordPlacement(mv.Point, player)
	c.recordMove(game, player, mv)

	// Reaching the winning length takes precedence over filling the
	// board: a move that does both is a win, not a draw.
	outcome := model.Outcome{Kind: model.OutcomeContinue}
	switch {
	case maxRun >= c.cfg.WinLength:
		outcome = model.Outcome{Kind: model.OutcomeWin, Winner: player}
		game.Status = model.GameStatusWon
		game.Winner = player
	case game.Board.IsFull():
		outcome = model.Outcome{Kind: model.OutcomeDraw}
		game.Status = model.GameStatusDrawn
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return model.Outcome{}, err
	}

	c.logger.Info("move applied",
		slog.String("game_id", string(id)),
		slog.String("player", player.String()),
		slog.Int("row", mv.Point.Row),
		slog.Int("col", mv.Point.Col),
		slog.Int("max_run", maxRun),
		slog.String("outcome", string(outcome.Kind)),
	)

	return outcome, nil
}

// recordMove appends to the history and hands the turn to the opponent
func (c *Controller) recordMove(game *model.Game, player model.Stone, mv model.Move) {
	now := c.clock.Now()
	game.History = append(game.History, model.MoveRecord{
		Number:   len(game.History) + 1,
		Player:   player,
		Point:    mv.Point,
		Pass:     mv.Pass,
		PlayedAt: now,
	})
	game.Board.SetCurrentPlayer(player.Opponent())
	game.UpdatedAt = now
}

// LegalMoves returns every empty cell, or nothing once the game has
// been decided
func (c *Controller) LegalMoves(ctx context.Context, id model.GameID) ([]model.Cell, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Over() {
		return nil, nil
	}
	return game.Board.EmptyCells(), nil
}

// MaxRun returns the player's longest run so far
func (c *Controller) MaxRun(ctx context.Context, id model.GameID, player model.Stone) (int, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return 0, err
	}
	return game.Tracker.MaxRun(player), nil
}

// WinLength returns the configured winning run length
func (c *Controller) WinLength() int {
	return c.cfg.WinLength
}

// DefaultBoardSize returns the configured default board size
func (c *Controller) DefaultBoardSize() int {
	return c.cfg.DefaultBoardSize
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, size int) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGameIDs(ctx context.Context) ([]model.GameID, error)
	Reset(ctx context.Context, id model.GameID, size int) error
	ApplyMove(ctx context.Context, id model.GameID, player model.Stone, mv model.Move) (model.Outcome, error)
	LegalMoves(ctx context.Context, id model.GameID) ([]model.Cell, error)
	MaxRun(ctx context.Context, id model.GameID, player model.Stone) (int, error)
}

var _ ControllerInterface = (*Controller)(nil)
