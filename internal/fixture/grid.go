package fixture

// GridState is a position on a rectangular grid with optional walls, moving
// one cell at a time in the four orthogonal directions. Used for S1
// (shortest path), S4 (an unreachable goal surrounded by walls), and S5/S6
// (multi-optimal paths and reachability).
type GridState struct {
	Row, Col int
	Board    *GridBoard
}

// GridBoard is the shared, read-only layout a set of GridState values walk
// over: its dimensions, which cells are walls, and the goal cell.
type GridBoard struct {
	Rows, Cols int
	Walls      map[[2]int]bool
	GoalRow    int
	GoalCol    int
}

// NewGridBoard returns an open rows×cols board with the given walls and
// goal cell. wall coordinates and the goal are [row, col] pairs.
func NewGridBoard(rows, cols int, walls [][2]int, goalRow, goalCol int) *GridBoard {
	w := make(map[[2]int]bool, len(walls))
	for _, p := range walls {
		w[p] = true
	}
	return &GridBoard{Rows: rows, Cols: cols, Walls: w, GoalRow: goalRow, GoalCol: goalCol}
}

func (g GridState) IsGoal() bool {
	return g.Row == g.Board.GoalRow && g.Col == g.Board.GoalCol
}

var gridOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (g GridState) Children() []GridState {
	var out []GridState
	for _, d := range gridOffsets {
		r, c := g.Row+d[0], g.Col+d[1]
		if r < 0 || c < 0 || r >= g.Board.Rows || c >= g.Board.Cols {
			continue
		}
		if g.Board.Walls[[2]int{r, c}] {
			continue
		}
		out = append(out, GridState{Row: r, Col: c, Board: g.Board})
	}
	return out
}

func (g GridState) Distance(GridState) uint32 { return 1 }

func (g GridState) Less(o GridState) bool {
	if g.Row != o.Row {
		return g.Row < o.Row
	}
	return g.Col < o.Col
}

// Heuristic is the Manhattan distance to the board's goal cell, admissible
// for unit-cost orthogonal moves.
func (g GridState) Heuristic() uint32 {
	dr := g.Board.GoalRow - g.Row
	if dr < 0 {
		dr = -dr
	}
	dc := g.Board.GoalCol - g.Col
	if dc < 0 {
		dc = -dc
	}
	return uint32(dr + dc)
}
