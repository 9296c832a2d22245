package idastar

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// CycleCheck selects how Recursive and Iterative detect a state already on
// the current path.
type CycleCheck int

const (
	// CycleCheckLinear scans the current path state by state using
	// Searchable.Less for equality. No extra memory beyond the path
	// itself; cost grows linearly with path depth per child examined.
	CycleCheckLinear CycleCheck = iota

	// CycleCheckHashSet interns every state it checks into a
	// statetable.Table (ordered by Less, searched by binary search) and
	// tracks path membership with a set of small integer ids, so a check
	// does not scan the path. The table keeps every state checked during
	// a round, trading that memory for O(log n) membership tests on deep
	// paths.
	CycleCheckHashSet
)

// Options configures one Recursive or Iterative invocation.
type Options struct {
	CycleCheck     CycleCheck
	StrictContract bool
	Ctx            context.Context
	Logger         *log.Logger
	RunID          uuid.UUID
}

// Option is a functional option for Recursive and Iterative.
type Option func(*Options)

// WithCycleCheck selects the cycle-avoidance strategy. Default
// CycleCheckLinear.
func WithCycleCheck(c CycleCheck) Option {
	return func(o *Options) { o.CycleCheck = c }
}

// WithContext attaches a cancellation context to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger overrides the default logger used for per-round trace output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRunID tags this invocation's log lines with an explicit identifier,
// overriding the random one Recursive/Iterative generates by default.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) { o.RunID = id }
}

// DefaultOptions returns the Options a bare call uses: linear cycle
// checking, contract enforcement on.
func DefaultOptions() Options {
	return Options{
		CycleCheck:     CycleCheckLinear,
		StrictContract: true,
	}
}
