package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fiverow/gomoku/internal/model"
)

// Column letters in protocol order; 'i' is skipped by convention
const columnLetters = "abcdefghjklmnopqrstuvwxyz"

// ParseColor converts a color argument to a player stone
func ParseColor(s string) (model.Stone, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return model.Black, nil
	case "w", "white":
		return model.White, nil
	default:
		return model.Empty, fmt.Errorf("%w: %q", model.ErrInvalidColor, s)
	}
}

// FormatColor renders a player stone as its protocol color name
func FormatColor(player model.Stone) string {
	if player == model.Black {
		return "black"
	}
	return "white"
}

// ParseMove converts a protocol move token ("pass" or a point such as
// "a1") into a Move, validating it against the board size
func ParseMove(s string, boardSize int) (model.Move, error) {
	if strings.ToLower(s) == "pass" {
		return model.PassMove(), nil
	}
	cell, err := ParsePoint(s, boardSize)
	if err != nil {
		return model.Move{}, err
	}
	return model.PointMove(cell), nil
}

// ParsePoint converts a point token such as "a1" into a Cell in range
// 1..boardSize. Column letters skip 'i'.
func ParsePoint(s string, boardSize int) (model.Cell, error) {
	lower := strings.ToLower(s)
	if len(lower) < 2 {
		return model.Cell{}, fmt.Errorf("%w: %q", model.ErrInvalidPoint, s)
	}

	colChar := lower[0]
	if colChar < 'a' || colChar > 'z' || colChar == 'i' {
		return model.Cell{}, fmt.Errorf("%w: %q", model.ErrInvalidPoint, s)
	}
	col := int(colChar - 'a')
	if colChar < 'i' {
		col++
	}

	row, err := strconv.Atoi(lower[1:])
	if err != nil || row < 1 {
		return model.Cell{}, fmt.Errorf("%w: %q", model.ErrInvalidPoint, s)
	}

	if col > boardSize || row > boardSize {
		return model.Cell{}, fmt.Errorf("%w: %q is off the board", model.ErrOutOfBounds, s)
	}

	return model.Cell{Row: row, Col: col}, nil
}

// FormatPoint renders a cell as a protocol point token such as "a1"
func FormatPoint(c model.Cell) string {
	return string(columnLetters[c.Col-1]) + strconv.Itoa(c.Row)
}

// FormatMove renders a move as a protocol token
func FormatMove(mv model.Move) string {
	if mv.Pass {
		return "pass"
	}
	return FormatPoint(mv.Point)
}
