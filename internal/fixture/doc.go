// Package fixture provides small, self-contained state.Searchable and
// state.Heuristic implementations used as test data across the other
// packages, and as the runnable examples behind cmd/searchdemo: an open
// grid with walls (GridState), a sliding 8-puzzle (Puzzle8), and a
// triangular 15-peg solitaire board (Pegs15).
//
// None of these are meant to be a puzzle-solving library in their own
// right — they exist to give the search engines something concrete and
// varied to run against.
package fixture
