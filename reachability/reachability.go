package reachability

import (
	"context"

	"github.com/katalvlaran/puzzlesearch/internal/frontier"
	"github.com/katalvlaran/puzzlesearch/internal/statetable"
	"github.com/katalvlaran/puzzlesearch/state"
)

// Reach returns every state reachable from seed via repeated Children
// calls, seed included, in first-discovered order. It ignores IsGoal and
// Distance entirely: a caller answering "which cells are on this side of
// the door" wants the full reachable set, not a shortest path to any one
// of them.
func Reach[S state.Searchable[S]](seed S) ([]S, error) {
	ctx := context.Background()

	tbl := statetable.New[S](64)
	fr := frontier.NewFIFOFrontier(64)

	startID, _ := tbl.Intern(seed)
	fr.Push(frontier.Entry{ID: startID})

	var out []S
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, ok := fr.Pop()
		if !ok {
			break
		}
		s := tbl.Lookup(e.ID)
		out = append(out, s)
		for _, child := range s.Children() {
			if id, inserted := tbl.Intern(child); inserted {
				fr.Push(frontier.Entry{ID: id})
			}
		}
	}
	return out, nil
}
