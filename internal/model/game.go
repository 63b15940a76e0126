package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameStatus represents the lifecycle phase of a game
type GameStatus string

const (
	GameStatusOngoing GameStatus = "ongoing"
	GameStatusWon     GameStatus = "won"
	GameStatusDrawn   GameStatus = "drawn"
)

// OutcomeKind classifies the result of applying a move
type OutcomeKind string

const (
	OutcomeContinue OutcomeKind = "continue"
	OutcomeWin      OutcomeKind = "win"
	OutcomeDraw     OutcomeKind = "draw"
)

// Outcome is the result of a successfully applied move
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Stone       `json:"winner,omitempty"` // set when Kind is OutcomeWin
}

// MoveRecord is one entry in a game's move history
type MoveRecord struct {
	Number   int       `json:"number"` // 1-indexed
	Player   Stone     `json:"player"`
	Point    Cell      `json:"point"`
	Pass     bool      `json:"pass,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

// Game is one game session: the board, the incremental run tracker,
// and the result bookkeeping. Board and tracker are created together
// and fully replaced on reset or resize.
type Game struct {
	ID      GameID       `json:"id"`
	Board   *Board       `json:"board"`
	Tracker *RunTracker  `json:"tracker"`
	Status  GameStatus   `json:"status"`
	Winner  Stone        `json:"winner,omitempty"` // Empty unless Status is won
	History []MoveRecord `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Over returns true once the game has been won or drawn
func (g *Game) Over() bool {
	return g.Status != GameStatusOngoing
}
