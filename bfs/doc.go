// Package bfs performs breadth-first search over the implicit state graph
// a caller's state.Searchable describes, assuming every edge (every
// state.Distance call) returns the same constant cost — the condition
// under which FIFO order alone guarantees shortest paths.
//
// By default Solve stops at the first goal found (first-solution mode).
// WithComplete continues the search to enumerate every equally-shortest
// path instead.
package bfs
