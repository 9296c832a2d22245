package reachability_test

import (
	"testing"

	"github.com/katalvlaran/puzzlesearch/internal/fixture"
	"github.com/katalvlaran/puzzlesearch/reachability"
)

// TestReach_PassesThroughDoorButNotSealedWall covers a room layout
// with two dividing walls, one with a single-cell door and one fully
// sealed. Reach must cross the door into the second room but never reach
// the third room beyond the sealed wall.
//
// Columns 0-2 are room A (the seed's room), column 3 is a wall with a
// door at row 1, columns 4-5 are room B, column 6 is a fully sealed wall,
// and column 7 is room C.
func TestReach_PassesThroughDoorButNotSealedWall(t *testing.T) {
	walls := [][2]int{
		{0, 3}, {2, 3}, // wall between A and B, door at row 1
		{0, 6}, {1, 6}, {2, 6}, // fully sealed wall between B and C
	}
	board := fixture.NewGridBoard(3, 8, walls, 0, 0) // goal unused by Reach
	seed := fixture.GridState{Row: 0, Col: 0, Board: board}

	reached, err := reachability.Reach[fixture.GridState](seed)
	if err != nil {
		t.Fatalf("Reach: %v", err)
	}

	seen := make(map[[2]int]bool, len(reached))
	for _, s := range reached {
		seen[[2]int{s.Row, s.Col}] = true
	}

	// Room A (9) + the door cell (1) + room B (6) = 16.
	if len(reached) != 16 {
		t.Fatalf("Reach: got %d states; want 16", len(reached))
	}
	if !seen[[2]int{1, 3}] {
		t.Fatal("Reach: expected the door cell (1,3) to be reachable")
	}
	if seen[[2]int{0, 7}] || seen[[2]int{1, 7}] || seen[[2]int{2, 7}] {
		t.Fatal("Reach: room C beyond the sealed wall was reported reachable")
	}
}
