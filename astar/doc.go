// Package astar performs A* search over the implicit state graph a caller's
// state.Heuristic describes: the shared driver with the state's own
// Heuristic estimate guiding frontier order, rather than dijkstra's
// constant-zero estimate.
//
// A goal is only guaranteed optimal when Heuristic never overestimates the
// true remaining cost; see the state.Heuristic doc comment for the
// admissibility requirement this package does not itself verify.
//
// By default Solve stops at the first goal found. WithAllOptimal continues
// the search to enumerate every path tied for optimal cost.
package astar
