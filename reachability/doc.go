// Package reachability answers flood-fill-style questions: "what states are
// reachable from this one under these walk rules?" with no cost
// accounting, goal testing, or path reconstruction — a stripped BFS over
// Children alone.
package reachability
