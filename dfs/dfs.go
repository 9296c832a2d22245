package dfs

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/state"
)

func zeroHeuristic[S any](S) uint32 { return 0 }

// Result is the outcome of a Solve call.
type Result[S any] = engine.Result[S]

// Solve explores seed's state graph depth-first and returns the path to the
// first goal state reached. The path is not guaranteed shortest; use bfs,
// dijkstra, or astar for that guarantee.
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
		func() frontier.Frontier { return frontier.NewLIFOFrontier(64) },
		false, // relax: DFS records a parent only on first discovery
		engine.Options{
			ShortestPathsOnly: o.ShortestPathsOnly,
			GoalStatesOnly:    true,
			StrictContract:    o.StrictContract,
			Ctx:               o.Ctx,
			Logger:            o.Logger,
			RunID:             o.RunID,
		},
	)
}
