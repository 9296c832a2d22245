package bfs

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/state"
)

func zeroHeuristic[S any](S) uint32 { return 0 }

// Result is the outcome of a Solve call.
type Result[S any] = engine.Result[S]

// Solve explores seed's state graph breadth-first and returns the shortest
// path(s) to a goal state, assuming every Children() edge carries the same
// cost, the precondition under which FIFO order alone guarantees
// shortest paths.
//
// By default Solve returns as soon as one goal is found. WithComplete
// enumerates every path tied for shortest instead.
func Solve[S state.Searchable[S]](seed S, opts ...Option) (Result[S], error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}

	return engine.Run[S](
		seed,
		zeroHeuristic[S],
		func() frontier.Frontier { return frontier.NewFIFOFrontier(64) },
		true, // relax: a rediscovered child may still record a tie in all-optimal mode
		engine.Options{
			ShortestPathsOnly: o.ShortestPathsOnly,
			GoalStatesOnly:    !o.Complete,
			StrictContract:    o.StrictContract,
			Ctx:               o.Ctx,
			Logger:            o.Logger,
			RunID:             o.RunID,
		},
	)
}
