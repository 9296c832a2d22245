package dijkstra

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/state"
)

func zeroHeuristic[S any](S) uint32 { return 0 }

// Result is the outcome of a Solve call.
type Result[S any] = engine.Result[S]

// Solve explores seed's state graph in order of increasing tentative cost
// and returns the shortest path(s) to a goal state, with no constraint on
// edge costs beyond Searchable.Distance's own positivity requirement.
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
		func() frontier.Frontier { return frontier.NewPriorityFrontier(64) },
		true,
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
