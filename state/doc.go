// Package state defines the contract every caller-supplied puzzle state
// must satisfy to be searched by astar, dijkstra, bfs, dfs, idastar, or
// reachability.
//
// A state is an opaque payload: copyable, equality-comparable, and totally
// ordered (via Less) so it can be canonicalized inside a search's internal
// state table. Searchable is the minimal contract (BFS, DFS, Dijkstra);
// Heuristic extends it with an estimated remaining cost (A*, IDA*).
//
// Implementations must be deterministic: the same state must always
// produce the same Children and the same Heuristic.
package state
