package dfs

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures one Solve invocation. DFS has no complete/all-optimal
// mode: without relaxation the predecessor graph records only the first
// path found to each vertex, so there is nothing to enumerate beyond it.
type Options struct {
	ShortestPathsOnly bool
	StrictContract    bool
	Ctx               context.Context
	Logger            *log.Logger
	RunID             uuid.UUID
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithShortestPathsOnly controls whether Solve stops as soon as it finds
// one goal. Default true; passing false makes Solve keep exploring the
// rest of the reachable space and return a primary-parent path to every
// goal state it finds, not just the first.
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

// DefaultOptions returns the Options a bare Solve(seed) call uses.
func DefaultOptions() Options {
	return Options{ShortestPathsOnly: true, StrictContract: true}
}
