package model

import "encoding/json"

// Board size limits
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

// Board holds per-point occupancy for one game.
//
// Points are stored in a padded one-dimensional array with a shared
// border column, so every in-bounds cell has all eight neighbors
// addressable without bounds checks: off-board neighbors read Border.
type Board struct {
	size    int
	stride  int // size + 1; one border column is shared between rows
	points  []Stone
	current Stone
}

// NewBoard creates a board of the given size with Black to move
func NewBoard(size int) (*Board, error) {
	b := &Board{}
	if err := b.Reset(size); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset reallocates the board at the given size, empties every
// in-bounds cell and sets Black as the player to move
func (b *Board) Reset(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return ErrInvalidSize
	}
	stride := size + 1
	// The shared border column means row r's right padding doubles as
	// row r+1's left padding; one extra slot covers the final corner
	// {size+1, size+1}.
	points := make([]Stone, (size+2)*stride+1)
	for i := range points {
		points[i] = Border
	}
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			points[row*stride+col] = Empty
		}
	}
	b.size = size
	b.stride = stride
	b.points = points
	b.current = Black
	return nil
}

// Size returns the board dimension
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if the cell is a playable point
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 1 && c.Row <= b.size && c.Col >= 1 && c.Col <= b.size
}

// Occupancy returns the state of the given cell. Cells in the padding
// ring read Border; anything further out is Border as well.
func (b *Board) Occupancy(c Cell) Stone {
	if c.Row < 0 || c.Row > b.size+1 || c.Col < 0 || c.Col > b.size+1 {
		return Border
	}
	return b.points[c.Row*b.stride+c.Col]
}

// Place sets the cell to the given player's stone. The cell must be in
// bounds; coordinate validation happens at the parsing boundary.
func (b *Board) Place(c Cell, player Stone) error {
	idx := c.Row*b.stride + c.Col
	if b.points[idx] != Empty {
		return ErrCellOccupied
	}
	b.points[idx] = player
	return nil
}

// CurrentPlayer returns the player to move
func (b *Board) CurrentPlayer() Stone {
	return b.current
}

// SetCurrentPlayer sets the player to move. Turn alternation is owned
// by the game controller, not by Place.
func (b *Board) SetCurrentPlayer(player Stone) {
	b.current = player
}

// EmptyCells returns every empty in-bounds cell in row-major order
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := 1; row <= b.size; row++ {
		for col := 1; col <= b.size; col++ {
			if b.points[row*b.stride+col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 1; row <= b.size; row++ {
		for col := 1; col <= b.size; col++ {
			if b.points[row*b.stride+col] == Empty {
				count++
			}
		}
	}
	return count
}

// IsFull returns true when no empty cell remains
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// boardJSON is the serialized form of a Board; the padding ring is
// rebuilt on load rather than stored
type boardJSON struct {
	Size    int     `json:"size"`
	Current Stone   `json:"current"`
	Cells   []Stone `json:"cells"` // in-bounds cells, row-major
}

// MarshalJSON implements json.Marshaler
func (b *Board) MarshalJSON() ([]byte, error) {
	cells := make([]Stone, 0, b.size*b.size)
	for row := 1; row <= b.size; row++ {
		for col := 1; col <= b.size; col++ {
			cells = append(cells, b.points[row*b.stride+col])
		}
	}
	return json.Marshal(boardJSON{
		Size:    b.size,
		Current: b.current,
		Cells:   cells,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Board) UnmarshalJSON(data []byte) error {
	var bj boardJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	if err := b.Reset(bj.Size); err != nil {
		return err
	}
	for i, stone := range bj.Cells {
		if i >= bj.Size*bj.Size {
			break
		}
		row := i/bj.Size + 1
		col := i%bj.Size + 1
		b.points[row*b.stride+col] = stone
	}
	b.current = bj.Current
	return nil
}
