// Package engine implements the shared search-driver skeleton: intern the
// seed, push it on a frontier, pop/expand/relax until the frontier empties
// or a first-solution cutoff fires, then hand the predecessor graph to
// package path for reconstruction.
//
// A*, Dijkstra, and BFS are all thin callers of Run, differing only in
// which Frontier they hand it (priority vs. FIFO) and which heuristic
// function they supply (the state's own Heuristic, or a constant zero).
// DFS calls Run with relax=false: it does not reconsider an
// already-discovered child's cost, only records a parent the first time a
// state is reached.
package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/internal/predgraph"
	"github.com/katalvlaran/puzzlesearch/internal/statetable"
	"github.com/katalvlaran/puzzlesearch/path"
	"github.com/katalvlaran/puzzlesearch/state"
)

// Options configures one Run invocation. Every public engine package
// (astar, dijkstra, bfs, dfs) exposes its own functional-option API and
// translates it into one of these before calling Run.
type Options struct {
	// ShortestPathsOnly prunes any expansion whose tentative cost exceeds
	// the best known goal distance, once a goal has been found.
	ShortestPathsOnly bool

	// GoalStatesOnly selects reconstruction via primary-parent chains
	// (true) versus full all-optimal-paths enumeration (false).
	GoalStatesOnly bool

	// StrictContract enables an optional, debug-oriented check for a
	// non-positive edge cost. Default true; set false to trust the state
	// implementation and skip the check.
	StrictContract bool

	Ctx    context.Context
	Logger *log.Logger
	RunID  uuid.UUID
}

// Result is the outcome of one Run invocation.
type Result[S any] struct {
	Found    bool
	Examined int
	Paths    [][]S
}

// Run drives the shared A*/Dijkstra/BFS/DFS loop over seed.
//
// newFrontier constructs the open-set flavor the caller wants (priority
// for A*/Dijkstra, FIFO for BFS, LIFO for DFS). heuristic supplies h(S);
// pass a constant-zero function for Dijkstra and BFS. relax selects
// whether an already-discovered child's cost is reconsidered (true for
// A*/Dijkstra/BFS) or left untouched after first discovery (false, DFS).
func Run[S state.Searchable[S]](
	seed S,
	heuristic func(S) uint32,
	newFrontier func() frontier.Frontier,
	relax bool,
	opts Options,
) (Result[S], error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	tbl := statetable.New[S](64)
	pg := predgraph.New(!opts.GoalStatesOnly)
	fr := newFrontier()

	startID, _ := tbl.Intern(seed)
	pg.AddStart(startID)

	var seq uint64
	push := func(id int, g uint64, h uint32) {
		fr.Push(frontier.Entry{ID: id, G: g, F: g + uint64(h), Seq: seq})
		seq++
	}
	push(startID, 0, heuristic(seed))

	firstSolutionOnly := opts.ShortestPathsOnly && opts.GoalStatesOnly

	var goalIDs []int
	goalDistance := uint64(predgraph.Inf)
	examined := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result[S]{}, err
		}

		e, ok := fr.Pop()
		if !ok {
			break
		}
		if e.G != pg.G(e.ID) {
			continue // stale entry: a cheaper path was found after this push
		}
		examined++

		s := tbl.Lookup(e.ID)
		logger.Debug("engine: examine", "run", opts.RunID, "id", e.ID, "g", e.G)

		if s.IsGoal() {
			if opts.ShortestPathsOnly {
				if goalDistance != uint64(predgraph.Inf) && e.G > goalDistance {
					continue // a strictly shorter goal already found; this one is not optimal
				}
				goalDistance = e.G
			}
			goalIDs = append(goalIDs, e.ID)
			logger.Debug("engine: goal found", "run", opts.RunID, "id", e.ID, "g", e.G)
			if firstSolutionOnly {
				break
			}
			continue
		}

		for _, child := range s.Children() {
			w := s.Distance(child)
			if w == 0 {
				if opts.StrictContract {
					return Result[S]{}, fmt.Errorf("%w: non-positive edge cost from vertex %d", state.ErrContractViolation, e.ID)
				}
			}
			weight := uint64(w)

			candidateG := pg.G(e.ID) + weight
			if opts.ShortestPathsOnly && goalDistance != uint64(predgraph.Inf) && candidateG > goalDistance {
				continue
			}

			cid, inserted := tbl.Intern(child)
			if inserted {
				pg.Discover(cid)
			}

			if !relax {
				if !inserted {
					continue // DFS: ignore a child already on record
				}
				pg.DiscoverEdge(cid, e.ID, weight)
				push(cid, pg.G(cid), heuristic(child))
				continue
			}

			newG, outcome := pg.Relax(cid, e.ID, weight)
			if outcome == predgraph.Improved {
				tbl.Replace(cid, child)
				push(cid, newG, heuristic(child))
			}
		}
	}

	found := len(goalIDs) > 0
	var paths [][]S
	if found {
		if opts.GoalStatesOnly {
			paths = path.AllPrimaryPerGoal(pg, tbl, startID, goalIDs)
		} else {
			paths = path.AllOptimal(pg, tbl, startID, goalIDs)
		}
	}

	return Result[S]{Found: found, Examined: examined, Paths: paths}, nil
}
