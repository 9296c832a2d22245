package idastar

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/statetable"
	"github.com/katalvlaran/puzzlesearch/state"
)

const infCost = uint64(math.MaxUint64)

// cycleChecker tracks the states on the current search path and answers
// membership queries, in whichever representation Options.CycleCheck asks
// for. Its path also doubles as the in-progress solution: once a goal is
// found, path is the answer.
type cycleChecker[S state.Heuristic[S]] struct {
	mode    CycleCheck
	path    []S
	tbl     *statetable.Table[S]
	visited map[int]struct{}
	idStack []int
}

func newCycleChecker[S state.Heuristic[S]](mode CycleCheck, seed S) *cycleChecker[S] {
	cc := &cycleChecker[S]{mode: mode, path: []S{seed}}
	if mode == CycleCheckHashSet {
		cc.tbl = statetable.New[S](64)
		cc.visited = make(map[int]struct{})
		id, _ := cc.tbl.Intern(seed)
		cc.visited[id] = struct{}{}
		cc.idStack = []int{id}
	}
	return cc
}

func (cc *cycleChecker[S]) contains(s S) bool {
	if cc.mode == CycleCheckHashSet {
		id, _ := cc.tbl.Intern(s)
		_, ok := cc.visited[id]
		return ok
	}
	for _, p := range cc.path {
		if !p.Less(s) && !s.Less(p) {
			return true
		}
	}
	return false
}

func (cc *cycleChecker[S]) push(s S) {
	cc.path = append(cc.path, s)
	if cc.mode == CycleCheckHashSet {
		id, _ := cc.tbl.Intern(s)
		cc.visited[id] = struct{}{}
		cc.idStack = append(cc.idStack, id)
	}
}

func (cc *cycleChecker[S]) pop() {
	cc.path = cc.path[:len(cc.path)-1]
	if cc.mode == CycleCheckHashSet {
		n := len(cc.idStack) - 1
		delete(cc.visited, cc.idStack[n])
		cc.idStack = cc.idStack[:n]
	}
}

func resolve(opts []Option) (Options, *log.Logger) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}
	return o, o.Logger
}

func edgeWeight[S state.Heuristic[S]](parent, child S, strict bool) (uint64, error) {
	w := parent.Distance(child)
	if w == 0 && strict {
		return 0, fmt.Errorf("%w: non-positive edge cost", state.ErrContractViolation)
	}
	return uint64(w), nil
}

// Result is the outcome of a Recursive or Iterative call.
type Result[S any] = engine.Result[S]

// Recursive runs IDA* via recursive depth-first search at each cost limit.
func Recursive[S state.Heuristic[S]](seed S, opts ...Option) (Result[S], error) {
	o, logger := resolve(opts)
	examined := 0

	var dfs func(cc *cycleChecker[S], startCost uint64, cur S, costLimit uint64) (bool, uint64, error)
	dfs = func(cc *cycleChecker[S], startCost uint64, cur S, costLimit uint64) (bool, uint64, error) {
		if err := o.Ctx.Err(); err != nil {
			return false, 0, err
		}
		examined++
		minCost := startCost + uint64(cur.Heuristic())
		if minCost > costLimit {
			return false, minCost, nil
		}
		if cur.IsGoal() {
			return true, costLimit, nil
		}

		nextLimit := infCost
		for _, child := range cur.Children() {
			if cc.contains(child) {
				continue
			}
			weight, err := edgeWeight[S](cur, child, o.StrictContract)
			if err != nil {
				return false, 0, err
			}
			cc.push(child)
			found, childNext, err := dfs(cc, startCost+weight, child, costLimit)
			if err != nil {
				return false, 0, err
			}
			if found {
				return true, costLimit, nil
			}
			cc.pop()
			if childNext < nextLimit {
				nextLimit = childNext
			}
		}
		return false, nextLimit, nil
	}

	costLimit := uint64(seed.Heuristic())
	for {
		if err := o.Ctx.Err(); err != nil {
			return engine.Result[S]{}, err
		}
		logger.Debug("idastar: round", "run", o.RunID, "cost_limit", costLimit)
		cc := newCycleChecker[S](o.CycleCheck, seed)
		found, nextLimit, err := dfs(cc, 0, seed, costLimit)
		if err != nil {
			return engine.Result[S]{}, err
		}
		if found {
			return engine.Result[S]{Found: true, Examined: examined, Paths: [][]S{append([]S(nil), cc.path...)}}, nil
		}
		if nextLimit == infCost {
			return engine.Result[S]{Found: false, Examined: examined}, nil
		}
		costLimit = nextLimit
	}
}

// frame is one level of the explicit stack Iterative uses in place of a
// recursive call.
type frame[S any] struct {
	startCost uint64
	cur       S
	children  []S
	idx       int
}

// Iterative runs IDA* via an explicit stack instead of recursion, examining
// the same states in the same order as Recursive.
func Iterative[S state.Heuristic[S]](seed S, opts ...Option) (Result[S], error) {
	o, logger := resolve(opts)
	examined := 0
	costLimit := uint64(seed.Heuristic())

	for {
		if err := o.Ctx.Err(); err != nil {
			return engine.Result[S]{}, err
		}
		logger.Debug("idastar: round", "run", o.RunID, "cost_limit", costLimit)

		cc := newCycleChecker[S](o.CycleCheck, seed)
		nextLimit := infCost
		found := false

		examined++
		if minCost := uint64(seed.Heuristic()); minCost > costLimit {
			nextLimit = minCost
		} else if seed.IsGoal() {
			found = true
		}

		var stack []frame[S]
		if !found && nextLimit == infCost {
			stack = append(stack, frame[S]{startCost: 0, cur: seed, children: seed.Children()})
		}

		for !found && len(stack) > 0 {
			top := &stack[len(stack)-1]
			advanced := false
			for top.idx < len(top.children) {
				child := top.children[top.idx]
				top.idx++
				if cc.contains(child) {
					continue
				}
				weight, err := edgeWeight[S](top.cur, child, o.StrictContract)
				if err != nil {
					return engine.Result[S]{}, err
				}
				newCost := top.startCost + weight
				cc.push(child)
				examined++
				minCost := newCost + uint64(child.Heuristic())
				if minCost > costLimit {
					if minCost < nextLimit {
						nextLimit = minCost
					}
					cc.pop()
					continue
				}
				if child.IsGoal() {
					found = true
					break
				}
				stack = append(stack, frame[S]{startCost: newCost, cur: child, children: child.Children()})
				advanced = true
				break
			}
			if found {
				break
			}
			if !advanced {
				stack = stack[:len(stack)-1]
				if len(cc.path) > 1 {
					cc.pop()
				}
			}
		}

		if found {
			return engine.Result[S]{Found: true, Examined: examined, Paths: [][]S{append([]S(nil), cc.path...)}}, nil
		}
		if nextLimit == infCost {
			return engine.Result[S]{Found: false, Examined: examined}, nil
		}
		costLimit = nextLimit
	}
}
