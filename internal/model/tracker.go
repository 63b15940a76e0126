package model

import "encoding/json"

// runKey addresses one run-length entry: a cell a player occupies,
// along one of the four line families
type runKey struct {
	cell Cell
	dir  Direction
}

// RunTracker maintains, per player and per occupied cell, the length
// of the maximal run through that cell along each direction, updated
// incrementally on every placement.
//
// Invariant: every cell belonging to one maximal run holds the same
// length value for that run's direction, equal to the run's total
// stone count. RecordPlacement re-establishes this after each move,
// including when a placement bridges two previously separate runs.
type RunTracker struct {
	runs [2]map[runKey]int
	max  [2]int
}

// NewRunTracker creates an empty tracker
func NewRunTracker() *RunTracker {
	return &RunTracker{
		runs: [2]map[runKey]int{
			make(map[runKey]int),
			make(map[runKey]int),
		},
	}
}

func playerIndex(player Stone) int {
	switch player {
	case Black:
		return 0
	case White:
		return 1
	default:
		panic("model: run tracker called with non-player stone " + player.String())
	}
}

// RecordPlacement updates run lengths for a stone the given player just
// placed on an empty cell, and returns the player's updated maximum
// run length. The cell must be a fresh Empty-to-player transition;
// calling it twice for one cell is a programming error.
func (t *RunTracker) RecordPlacement(c Cell, player Stone) int {
	idx := playerIndex(player)
	runs := t.runs[idx]

	for _, d := range Directions {
		dr, dc := d.Step()
		lower := Cell{Row: c.Row - dr, Col: c.Col - dc}
		upper := Cell{Row: c.Row + dr, Col: c.Col + dc}

		// Compute the merged length from the neighbors' pre-update
		// values, before any write touches the map. If both sides are
		// occupied the placement bridges two runs and both lengths
		// contribute.
		length := 1
		if n, ok := runs[runKey{lower, d}]; ok {
			length += n
		}
		if n, ok := runs[runKey{upper, d}]; ok {
			length += n
		}
		runs[runKey{c, d}] = length

		// Propagate the merged length to every cell of the run, one
		// full side at a time. Each walk restarts at the placed cell's
		// immediate neighbor and recomputes positions step by step, so
		// it reaches the true run boundary regardless of the stale
		// values it overwrites along the way.
		for cur := lower; ; cur.Row, cur.Col = cur.Row-dr, cur.Col-dc {
			if _, ok := runs[runKey{cur, d}]; !ok {
				break
			}
			runs[runKey{cur, d}] = length
		}
		for cur := upper; ; cur.Row, cur.Col = cur.Row+dr, cur.Col+dc {
			if _, ok := runs[runKey{cur, d}]; !ok {
				break
			}
			runs[runKey{cur, d}] = length
		}

		if length > t.max[idx] {
			t.max[idx] = length
		}
	}

	return t.max[idx]
}

// MaxRun returns the longest run length the player has achieved so
// far. It is monotonically non-decreasing within a game.
func (t *RunTracker) MaxRun(player Stone) int {
	return t.max[playerIndex(player)]
}

// RunLength returns the tracked run length for the player's stone at
// the given cell and direction, or 0 if the player does not occupy it
func (t *RunTracker) RunLength(c Cell, player Stone, d Direction) int {
	return t.runs[playerIndex(player)][runKey{c, d}]
}

// runEntryJSON flattens one tracker entry for serialization; map keys
// are structs and cannot be JSON object keys directly
type runEntryJSON struct {
	Row    int       `json:"row"`
	Col    int       `json:"col"`
	Dir    Direction `json:"dir"`
	Length int       `json:"length"`
}

type trackerJSON struct {
	Black    []runEntryJSON `json:"black"`
	White    []runEntryJSON `json:"white"`
	BlackMax int            `json:"black_max"`
	WhiteMax int            `json:"white_max"`
}

func (t *RunTracker) entries(idx int) []runEntryJSON {
	entries := make([]runEntryJSON, 0, len(t.runs[idx]))
	for key, length := range t.runs[idx] {
		entries = append(entries, runEntryJSON{
			Row:    key.cell.Row,
			Col:    key.cell.Col,
			Dir:    key.dir,
			Length: length,
		})
	}
	return entries
}

// MarshalJSON implements json.Marshaler
func (t *RunTracker) MarshalJSON() ([]byte, error) {
	return json.Marshal(trackerJSON{
		Black:    t.entries(0),
		White:    t.entries(1),
		BlackMax: t.max[0],
		WhiteMax: t.max[1],
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (t *RunTracker) UnmarshalJSON(data []byte) error {
	var tj trackerJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	t.runs[0] = make(map[runKey]int, len(tj.Black))
	t.runs[1] = make(map[runKey]int, len(tj.White))
	for _, e := range tj.Black {
		t.runs[0][runKey{Cell{Row: e.Row, Col: e.Col}, e.Dir}] = e.Length
	}
	for _, e := range tj.White {
		t.runs[1][runKey{Cell{Row: e.Row, Col: e.Col}, e.Dir}] = e.Length
	}
	t.max[0] = tj.BlackMax
	t.max[1] = tj.WhiteMax
	return nil
}
