// Package dfs performs depth-first search over the implicit state graph a
// caller's state.Searchable describes. Unlike bfs, dijkstra, and astar, DFS
// does not relax: once a state is first discovered its parent is fixed, and
// later rediscoveries of the same state through a different path are
// ignored. Solve reports the first goal it reaches, which is
// not guaranteed to be shortest.
package dfs
