package model

// Cell identifies a point on the board.
// Rows and columns are 1-indexed; row 1 is the bottom row in the
// protocol's coordinate system.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the four line families a run can lie along
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
	DiagonalDown // the "backslash" diagonal
	DiagonalUp   // the "forward slash" diagonal
)

// Directions lists all four line families
var Directions = [4]Direction{Horizontal, Vertical, DiagonalDown, DiagonalUp}

// Step returns the representative unit step for the direction.
// A run is symmetric, so the two neighbors along a direction are
// cell+step and cell-step.
func (d Direction) Step() (dr, dc int) {
	switch d {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case DiagonalDown:
		return 1, 1
	case DiagonalUp:
		return -1, 1
	default:
		panic("model: unknown direction")
	}
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	default:
		return "unknown"
	}
}

// Move is a play request: either a point placement or a pass
type Move struct {
	Point Cell `json:"point"`
	Pass  bool `json:"pass,omitempty"`
}

// PassMove returns the pass move
func PassMove() Move {
	return Move{Pass: true}
}

// PointMove returns a placement move at the given cell
func PointMove(c Cell) Move {
	return Move{Point: c}
}
