// Package path implements path extraction: walking the predecessor
// graph built by a search driver from one or more goal vertices back to
// the start, in three modes: a single primary-parent path, one
// primary-parent path per goal, or every path tied for optimal cost.
//
// Single and AllPrimaryPerGoal follow primary-parent chains; AllOptimal
// performs an explicit-stack DFS over the parent DAG, branching at every
// vertex with more than one recorded parent. Duplicate sub-paths cannot
// occur because the DAG is acyclic: every parent has strictly smaller g
// than its child.
package path

import (
	"github.com/katalvlaran/puzzlesearch/internal/predgraph"
	"github.com/katalvlaran/puzzlesearch/internal/statetable"
)

type orderable[S any] interface{ Less(S) bool }

// Single reconstructs the one path from start to goal along primary
// parents, start first.
func Single[S orderable[S]](pg *predgraph.Graph, tbl *statetable.Table[S], startID, goalID int) []S {
	return reconstructPrimary(pg, tbl, startID, goalID)
}

// AllPrimaryPerGoal reconstructs one primary-parent path per goal vertex,
// in the order the goals were discovered.
func AllPrimaryPerGoal[S orderable[S]](pg *predgraph.Graph, tbl *statetable.Table[S], startID int, goalIDs []int) [][]S {
	paths := make([][]S, 0, len(goalIDs))
	for _, g := range goalIDs {
		paths = append(paths, reconstructPrimary(pg, tbl, startID, g))
	}
	return paths
}

func reconstructPrimary[S orderable[S]](pg *predgraph.Graph, tbl *statetable.Table[S], startID, goalID int) []S {
	var ids []int
	for v := goalID; ; {
		ids = append(ids, v)
		if v == startID {
			break
		}
		v = pg.PrimaryParent(v)
	}
	reverseInts(ids)
	return statesOf(tbl, ids)
}

// AllOptimal enumerates every distinct start→goal sequence whose cost
// equals the search's recorded optimum, branching at every vertex with
// more than one recorded parent. It requires the search to have run with
// all-optimal mode enabled (so predgraph.Graph.ExtraParents is populated).
func AllOptimal[S orderable[S]](pg *predgraph.Graph, tbl *statetable.Table[S], startID int, goalIDs []int) [][]S {
	var results [][]S
	var current []int // ids on the in-progress path, goal-end first

	frames := [][]int{append([]int(nil), goalIDs...)}
	for len(frames) > 0 {
		top := frames[len(frames)-1]
		if len(top) == 0 {
			frames = frames[:len(frames)-1]
			if len(current) > 0 {
				current = current[:len(current)-1]
			}
			continue
		}

		v := top[len(top)-1]
		frames[len(frames)-1] = top[:len(top)-1]
		current = append(current, v)

		if v == startID {
			ids := append([]int(nil), current...)
			reverseInts(ids)
			results = append(results, statesOf(tbl, ids))
			current = current[:len(current)-1]
			continue
		}

		parents := pg.ExtraParents(v)
		if len(parents) == 0 {
			// No parent list was recorded (the graph was not built in
			// all-optimal mode): the primary parent is the only way back.
			parents = []int{pg.PrimaryParent(v)}
		}
		frames = append(frames, append([]int(nil), parents...))
	}

	return results
}

func statesOf[S orderable[S]](tbl *statetable.Table[S], ids []int) []S {
	out := make([]S, len(ids))
	for i, id := range ids {
		out[i] = tbl.Lookup(id)
	}
	return out
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
