package model

// Stone is the occupancy state of a single board point
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
	// Border marks the off-board padding surrounding the playable area
	Border
)

// String returns the lowercase name of the stone state
func (s Stone) String() string {
	switch s {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	case Border:
		return "border"
	default:
		return "unknown"
	}
}

// IsPlayer returns true for Black and White
func (s Stone) IsPlayer() bool {
	return s == Black || s == White
}

// Opponent returns the other player. Panics on non-player stones.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("model: opponent of non-player stone " + s.String())
	}
}
