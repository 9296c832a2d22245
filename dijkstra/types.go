package dijkstra

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures one Solve invocation.
type Options struct {
	Complete          bool
	ShortestPathsOnly bool
	StrictContract    bool
	Ctx               context.Context
	Logger            *log.Logger
	RunID             uuid.UUID
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithComplete enables all-optimal-paths mode: Solve keeps expanding after
// the first goal and returns every path tied for shortest.
func WithComplete() Option {
	return func(o *Options) { o.Complete = true }
}

// WithShortestPathsOnly controls whether Solve prunes any expansion whose
// tentative cost already exceeds the best goal cost found so far. Default
// true; passing false makes Solve keep expanding the whole reachable space
// and return every goal state it finds regardless of cost.
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
		Complete:          false,
		ShortestPathsOnly: true,
		StrictContract:    true,
	}
}
