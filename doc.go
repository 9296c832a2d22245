// Package puzzlesearch is a generic, reusable state-space search toolkit.
//
// 🧩 What is puzzlesearch?
//
//	A pure-Go, dependency-light library for searching state spaces that are
//	generated on demand rather than stored up front:
//
//	  • Search drivers: A*, Dijkstra, BFS, DFS, and two IDA* variants
//	  • Path extraction: single, all-primary, and all-optimal reconstruction
//	  • A reachability utility for plain flood-fill exploration
//
// ✨ Why puzzlesearch?
//
//   - Generic        — bring your own state type, satisfy one small interface
//   - No graph build — states and their successors are generated lazily
//   - Composable     — every driver shares the same frontier/state-table core
//   - Pure Go        — no cgo, a small and deliberate dependency set
//
// Everything is organized under one contract package and a family of
// driver packages:
//
//	state/         — Searchable / Heuristic generic interfaces every state type implements
//	astar/         — best-first search guided by a heuristic
//	dijkstra/      — best-first search with no heuristic (uniform cost)
//	bfs/           — breadth-first search, shortest path by edge count
//	dfs/           — depth-first search, no shortest-path guarantee
//	idastar/       — iterative-deepening A*, recursive and explicit-stack forms
//	path/          — path reconstruction over a search's recorded predecessors
//	reachability/  — flood fill with no cost or goal bookkeeping
//	internal/      — the shared frontier, state table, predecessor graph, and driver loop
//
// Quick shape of a caller-supplied state:
//
//	type Puzzle struct{ /* ... */ }
//
//	func (p Puzzle) IsGoal() bool        { /* ... */ }
//	func (p Puzzle) Children() []Puzzle  { /* ... */ }
//	func (p Puzzle) Distance(c Puzzle) uint32 { return 1 }
//	func (p Puzzle) Less(o Puzzle) bool  { /* ... */ }
//
//	result, err := bfs.Solve[Puzzle](start)
//
// See cmd/searchdemo for a runnable example against a grid, an 8-puzzle,
// and triangular 15-peg solitaire.
package puzzlesearch
