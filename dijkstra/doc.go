// Package dijkstra performs Dijkstra's shortest-path search over the
// implicit state graph a caller's state.Searchable describes: the same
// driver astar uses, with a constant-zero heuristic in place of an
// estimate of remaining cost.
//
// By default Solve stops at the first goal found. WithComplete continues
// the search to enumerate every equally-shortest path.
package dijkstra
