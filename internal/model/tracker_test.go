package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRunUniform checks the tracker invariant for one player and
// direction: every stone in each maximal contiguous run carries the
// run's total stone count.
func assertRunUniform(t *testing.T, tracker *RunTracker, player Stone, d Direction, stones []Cell) {
	t.Helper()

	occupied := make(map[Cell]bool, len(stones))
	for _, c := range stones {
		occupied[c] = true
	}

	dr, dc := d.Step()
	for _, c := range stones {
		// Walk to the run's lower end, then count its stones
		start := c
		for occupied[Cell{Row: start.Row - dr, Col: start.Col - dc}] {
			start = Cell{Row: start.Row - dr, Col: start.Col - dc}
		}
		runLen := 0
		for cur := start; occupied[cur]; cur = (Cell{Row: cur.Row + dr, Col: cur.Col + dc}) {
			runLen++
		}

		require.Equal(t, runLen, tracker.RunLength(c, player, d),
			"cell %+v direction %v: want total run size %d", c, d, runLen)
	}
}

func TestLoneStoneHasRunsOfOne(t *testing.T) {
	tracker := NewRunTracker()

	max := tracker.RecordPlacement(Cell{Row: 3, Col: 3}, Black)
	assert.Equal(t, 1, max)

	for _, d := range Directions {
		assert.Equal(t, 1, tracker.RunLength(Cell{Row: 3, Col: 3}, Black, d))
	}
}

func TestHorizontalGrowthToFive(t *testing.T) {
	tracker := NewRunTracker()

	for col := 1; col <= 4; col++ {
		max := tracker.RecordPlacement(Cell{Row: 1, Col: col}, Black)
		assert.Equal(t, col, max)
	}
	assert.Equal(t, 4, tracker.MaxRun(Black))

	max := tracker.RecordPlacement(Cell{Row: 1, Col: 5}, Black)
	assert.Equal(t, 5, max)
}

func TestMergeBridgingTwoRuns(t *testing.T) {
	tracker := NewRunTracker()
	row := 4

	// Two separate runs: columns 1-2 and 4-5
	for _, col := range []int{1, 2, 4, 5} {
		tracker.RecordPlacement(Cell{Row: row, Col: col}, Black)
	}
	assert.Equal(t, 2, tracker.MaxRun(Black))

	// Filling the gap merges them: 2 + 1 + 2
	max := tracker.RecordPlacement(Cell{Row: row, Col: 3}, Black)
	assert.Equal(t, 5, max)

	// Every stone of the merged run carries the full length
	for col := 1; col <= 5; col++ {
		assert.Equal(t, 5, tracker.RunLength(Cell{Row: row, Col: col}, Black, Horizontal),
			"column %d", col)
	}
}

func TestMergePropagatesToBothEnds(t *testing.T) {
	tracker := NewRunTracker()

	// Runs of 3 on each side of a single gap
	var stones []Cell
	for _, col := range []int{1, 2, 3, 5, 6, 7} {
		c := Cell{Row: 2, Col: col}
		tracker.RecordPlacement(c, White)
		stones = append(stones, c)
	}

	bridge := Cell{Row: 2, Col: 4}
	max := tracker.RecordPlacement(bridge, White)
	stones = append(stones, bridge)

	assert.Equal(t, 7, max)
	for col := 1; col <= 7; col++ {
		assert.Equal(t, 7, tracker.RunLength(Cell{Row: 2, Col: col}, White, Horizontal))
	}
	assertRunUniform(t, tracker, White, Horizontal, stones)
}

func TestVerticalRun(t *testing.T) {
	tracker := NewRunTracker()

	for row := 2; row <= 6; row++ {
		tracker.RecordPlacement(Cell{Row: row, Col: 3}, Black)
	}
	assert.Equal(t, 5, tracker.MaxRun(Black))
	for row := 2; row <= 6; row++ {
		assert.Equal(t, 5, tracker.RunLength(Cell{Row: row, Col: 3}, Black, Vertical))
	}
}

func TestDiagonalDownRun(t *testing.T) {
	tracker := NewRunTracker()

	// Stones at (1,1), (2,2), ... share the backslash diagonal
	for i := 1; i <= 5; i++ {
		tracker.RecordPlacement(Cell{Row: i, Col: i}, White)
	}
	assert.Equal(t, 5, tracker.MaxRun(White))
	assert.Equal(t, 5, tracker.RunLength(Cell{Row: 3, Col: 3}, White, DiagonalDown))
}

func TestDiagonalUpRun(t *testing.T) {
	tracker := NewRunTracker()

	// Stones at (5,1), (4,2), (3,3), (2,4), (1,5) share the slash diagonal
	for i := 1; i <= 5; i++ {
		tracker.RecordPlacement(Cell{Row: 6 - i, Col: i}, Black)
	}
	assert.Equal(t, 5, tracker.MaxRun(Black))
	assert.Equal(t, 5, tracker.RunLength(Cell{Row: 3, Col: 3}, Black, DiagonalUp))
}

func TestMergeOutOfOrderPlacements(t *testing.T) {
	tracker := NewRunTracker()

	// Place ends first, then middle pieces in scattered order
	order := []int{1, 5, 3, 2, 4}
	for i, col := range order {
		max := tracker.RecordPlacement(Cell{Row: 1, Col: col}, Black)
		if i == len(order)-1 {
			assert.Equal(t, 5, max)
		}
	}
	for col := 1; col <= 5; col++ {
		assert.Equal(t, 5, tracker.RunLength(Cell{Row: 1, Col: col}, Black, Horizontal))
	}
}

func TestPlayersTrackedIndependently(t *testing.T) {
	tracker := NewRunTracker()

	// Alternating colors never join into one run
	tracker.RecordPlacement(Cell{Row: 1, Col: 1}, Black)
	tracker.RecordPlacement(Cell{Row: 1, Col: 2}, White)
	tracker.RecordPlacement(Cell{Row: 1, Col: 3}, Black)

	assert.Equal(t, 1, tracker.MaxRun(Black))
	assert.Equal(t, 1, tracker.MaxRun(White))
	assert.Equal(t, 1, tracker.RunLength(Cell{Row: 1, Col: 1}, Black, Horizontal))
	assert.Equal(t, 0, tracker.RunLength(Cell{Row: 1, Col: 2}, Black, Horizontal))
}

func TestDirectionsTrackedIndependently(t *testing.T) {
	tracker := NewRunTracker()

	// An L shape: three stones along the row, three down the column,
	// crossing at (1,1)
	for col := 1; col <= 3; col++ {
		tracker.RecordPlacement(Cell{Row: 1, Col: col}, Black)
	}
	for row := 2; row <= 3; row++ {
		tracker.RecordPlacement(Cell{Row: row, Col: 1}, Black)
	}

	corner := Cell{Row: 1, Col: 1}
	assert.Equal(t, 3, tracker.RunLength(corner, Black, Horizontal))
	assert.Equal(t, 3, tracker.RunLength(corner, Black, Vertical))
	assert.Equal(t, 1, tracker.RunLength(corner, Black, DiagonalDown))
	assert.Equal(t, 3, tracker.MaxRun(Black))
}

func TestMaxRunIsMonotone(t *testing.T) {
	tracker := NewRunTracker()

	// Build a run of 3, then place isolated stones elsewhere; the max
	// never decreases
	for col := 1; col <= 3; col++ {
		tracker.RecordPlacement(Cell{Row: 1, Col: col}, Black)
	}
	assert.Equal(t, 3, tracker.MaxRun(Black))

	tracker.RecordPlacement(Cell{Row: 9, Col: 9}, Black)
	assert.Equal(t, 3, tracker.MaxRun(Black))

	tracker.RecordPlacement(Cell{Row: 9, Col: 10}, Black)
	assert.Equal(t, 3, tracker.MaxRun(Black))
}

func TestUniformityAcrossMixedBoard(t *testing.T) {
	tracker := NewRunTracker()

	black := []Cell{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 4},
		{Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 2, Col: 1},
		{Row: 1, Col: 3},
	}
	white := []Cell{
		{Row: 5, Col: 5}, {Row: 5, Col: 6}, {Row: 4, Col: 5},
		{Row: 6, Col: 6}, {Row: 4, Col: 7}, {Row: 5, Col: 7},
	}
	for _, c := range black {
		tracker.RecordPlacement(c, Black)
	}
	for _, c := range white {
		tracker.RecordPlacement(c, White)
	}

	for _, d := range Directions {
		assertRunUniform(t, tracker, Black, d, black)
		assertRunUniform(t, tracker, White, d, white)
	}
}

func TestRecordPlacementRejectsNonPlayerStone(t *testing.T) {
	tracker := NewRunTracker()
	assert.Panics(t, func() { tracker.RecordPlacement(Cell{Row: 1, Col: 1}, Empty) })
	assert.Panics(t, func() { tracker.RecordPlacement(Cell{Row: 1, Col: 1}, Border) })
}
