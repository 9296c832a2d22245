package astar

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/state"
)

// Result is the outcome of a Solve call.
type Result[S any] = engine.Result[S]

// Solve explores seed's state graph guided by its Heuristic estimate and
// returns the shortest path(s) to a goal state.
func Solve[S state.Heuristic[S]](seed S, opts ...Option) (Result[S], error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}

	return engine.Run[S](
		seed,
		func(s S) uint32 { return s.Heuristic() },
		func() frontier.Frontier { return frontier.NewPriorityFrontier(64) },
		true,
		engine.Options{
			ShortestPathsOnly: o.ShortestPathsOnly,
			GoalStatesOnly:    !o.AllOptimal,
			StrictContract:    o.StrictContract,
			Ctx:               o.Ctx,
			Logger:            o.Logger,
			RunID:             o.RunID,
		},
	)
}
