package response

import (
	"time"

	"github.com/fiverow/gomoku/internal/gtp"
	"github.com/fiverow/gomoku/internal/model"
)

// GameResponse is the JSON shape of a game session
type GameResponse struct {
	ID         string         `json:"id"`
	BoardSize  int            `json:"board_size"`
	Board      []string       `json:"board"` // rows top-down, X/O/. per cell
	SideToMove string         `json:"side_to_move"`
	Status     string         `json:"status"`
	Winner     string         `json:"winner,omitempty"`
	MaxRuns    map[string]int `json:"max_runs"`
	History    []MoveResponse `json:"history,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// MoveResponse is one history entry
type MoveResponse struct {
	Number int    `json:"number"`
	Player string `json:"player"`
	Point  string `json:"point"` // protocol token, "pass" for passes
}

// OutcomeResponse reports the result of an applied move
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
	Move    string `json:"move,omitempty"` // set by genmove
	MaxRun  int    `json:"max_run"`
}

// LegalMovesResponse lists the playable points
type LegalMovesResponse struct {
	Moves []string `json:"moves"`
}

// GameListResponse lists stored game IDs
type GameListResponse struct {
	Games []string `json:"games"`
}

// GameFromModel converts a game session to its response shape
func GameFromModel(g *model.Game) GameResponse {
	size := g.Board.Size()
	rows := make([]string, 0, size)
	for row := size; row >= 1; row-- {
		line := make([]byte, size)
		for col := 1; col <= size; col++ {
			switch g.Board.Occupancy(model.Cell{Row: row, Col: col}) {
			case model.Black:
				line[col-1] = 'X'
			case model.White:
				line[col-1] = 'O'
			default:
				line[col-1] = '.'
			}
		}
		rows = append(rows, string(line))
	}

	history := make([]MoveResponse, 0, len(g.History))
	for _, rec := range g.History {
		point := "pass"
		if !rec.Pass {
			point = gtp.FormatPoint(rec.Point)
		}
		history = append(history, MoveResponse{
			Number: rec.Number,
			Player: rec.Player.String(),
			Point:  point,
		})
	}

	winner := ""
	if g.Status == model.GameStatusWon {
		winner = g.Winner.String()
	}

	return GameResponse{
		ID:         string(g.ID),
		BoardSize:  size,
		Board:      rows,
		SideToMove: g.Board.CurrentPlayer().String(),
		Status:     string(g.Status),
		Winner:     winner,
		MaxRuns: map[string]int{
			model.Black.String(): g.Tracker.MaxRun(model.Black),
			model.White.String(): g.Tracker.MaxRun(model.White),
		},
		History:   history,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
