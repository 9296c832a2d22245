package state

import "errors"

// ErrContractViolation is returned when a search engine running with its
// StrictContract option on (the default) finds that a caller's state
// implementation broke a required property. The one property checked is a
// zero edge cost from Distance; other violations are not detected. These
// are programmer errors the core is not obligated to fully validate.
var ErrContractViolation = errors.New("state: contract violation")

// Searchable is the minimal contract required by BFS, DFS, and Dijkstra.
//
// S is the concrete implementing type itself (the same curiously-recurring
// pattern sort.Interface and container/heap.Interface use), so that
// Children and Less can operate on concrete values instead of boxing
// through an interface on every comparison.
type Searchable[S any] interface {
	// IsGoal reports whether this state satisfies the problem.
	IsGoal() bool

	// Children returns every successor state. The returned slice must be
	// finite; order is irrelevant for correctness but should be stable
	// across repeated calls on an identical state for reproducibility.
	Children() []S

	// Distance returns the edge cost from this state to child. Must be
	// strictly positive. BFS requires (but does not enforce) that every
	// edge cost be the same constant, typically 1.
	Distance(child S) uint32

	// Less defines a total order over S, used to canonicalize states in
	// the search's internal state table. It need not have any relation
	// to Distance or Heuristic.
	Less(other S) bool
}

// Heuristic extends Searchable for engines that consult an estimate of
// the remaining cost to any goal: A*, and both IDA* variants.
//
// Heuristic must never be negative (it is unsigned) and, for optimal A*,
// must never overestimate the true remaining cost (admissibility). The
// engines in this module do not verify admissibility; an inadmissible
// heuristic still terminates but the returned path is not guaranteed
// optimal.
type Heuristic[S any] interface {
	Searchable[S]

	// Heuristic estimates the remaining cost from this state to the
	// nearest goal.
	Heuristic() uint32
}
