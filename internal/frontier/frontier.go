// Package frontier implements the open-set shared by every search
// driver: a priority queue keyed by f=g+h with insertion-order tie-break
// for A*/Dijkstra, a FIFO queue for BFS, and a LIFO stack for DFS.
//
// All three implement the Frontier interface below so internal/engine can
// drive any of them through the same loop. Entries carry the vertex id and
// the g-value they were pushed with; a driver detects a stale entry by
// comparing that stored g against the vertex's current best-known g (see
// internal/predgraph) rather than relying on a true decrease-key: a
// cheaper path simply pushes a new entry, and the old one is skipped on
// pop once it is found to be stale.
package frontier

// Entry is one vertex waiting to be expanded.
type Entry struct {
	ID  int    // vertex id (internal/statetable index)
	G   uint64 // tentative cost from start, at push time
	F   uint64 // g + heuristic, at push time (priority key)
	Seq uint64 // insertion sequence, for deterministic tie-break
}

// Frontier is the open-set contract every driver pops from and pushes to.
type Frontier interface {
	// Push adds e to the open set.
	Push(e Entry)

	// Pop removes and returns the next entry to expand. ok is false when
	// the frontier is empty.
	Pop() (Entry, bool)

	// Len reports how many entries remain (including any stale ones not
	// yet popped).
	Len() int
}
