package astar

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures one Solve invocation.
type Options struct {
	AllOptimal        bool
	ShortestPathsOnly bool
	StrictContract    bool
	Ctx               context.Context
	Logger            *log.Logger
	RunID             uuid.UUID
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithAllOptimal enables all-optimal-paths mode: Solve keeps expanding
// after the first goal and returns every path tied for optimal cost.
func WithAllOptimal() Option {
	return func(o *Options) { o.AllOptimal = true }
}

// WithShortestPathsOnly controls whether Solve prunes any expansion whose
// tentative cost already exceeds the best goal cost found so far. Default
// true, which is what makes A* stop exploring once it has proof no cheaper
// goal remains. Passing false disables that pruning, so Solve keeps
// expanding the whole reachable space and returns every goal state it
// finds regardless of cost, not just the optimal ones.
func WithShortestPathsOnly(b bool) Option {
	return func(o *Options) { o.ShortestPathsOnly = b }
}

// WithContext attaches a cancellation context to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger overrides the default logger used for per-vertex trace output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRunID tags this invocation's log lines with an explicit identifier,
// overriding the random one Solve generates by default.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) { o.RunID = id }
}

// DefaultOptions returns the Options a bare Solve(seed) call uses: stop at
// the first goal, enforce the state contract.
func DefaultOptions() Options {
	return Options{
		AllOptimal:        false,
		ShortestPathsOnly: true,
		StrictContract:    true,
	}
}
