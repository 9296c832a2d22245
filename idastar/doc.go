// Package idastar performs iterative-deepening A* search: a
// depth-first search bounded by a cost limit that starts at the seed's own
// heuristic estimate and grows, each round, to the smallest over-limit cost
// seen, until a goal is found or no state remains reachable.
//
// Unlike astar, idastar keeps no predecessor graph. With CycleCheckLinear
// it keeps no state table either, so memory is proportional to the current
// path depth, the classic trade of IDA* over A*; CycleCheckHashSet also
// keeps a table of every state it checked during the current round. Cycle
// avoidance requires an explicit check against the states already on the
// current path; see CycleCheck.
//
// Recursive and Iterative implement the identical algorithm, recursive call
// stack versus an explicit one — a caller with deep searches that might
// exceed the Go call stack's practical depth should prefer Iterative, but
// the two are expected to examine the same states in the same order.
package idastar
