package model

import "errors"

// Common errors used across the application
var (
	// Game lifecycle errors
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidSize  = errors.New("board size out of range")
	ErrGameOver     = errors.New("game is already over")

	// Placement errors
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("point is outside the board")

	// Protocol parsing errors
	ErrInvalidPoint = errors.New("invalid point")
	ErrInvalidColor = errors.New("invalid color")
)
