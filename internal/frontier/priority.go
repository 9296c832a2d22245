package frontier

import "container/heap"

// PriorityFrontier is a min-heap of Entry ordered by F ascending, ties
// broken by Seq ascending (first-pushed-first-popped among equals), used
// by astar, dijkstra, and (with a constant F) as a degenerate case for
// any driver that wants priority semantics. It uses a lazy "push a new
// entry, ignore stale old ones on pop" strategy rather than a true
// decrease-key.
type PriorityFrontier struct {
	entries entryHeap
}

// NewPriorityFrontier returns an empty PriorityFrontier with capacity hint
// capHint preallocated.
func NewPriorityFrontier(capHint int) *PriorityFrontier {
	return &PriorityFrontier{entries: make(entryHeap, 0, capHint)}
}

// Push adds e to the heap.
func (p *PriorityFrontier) Push(e Entry) { heap.Push(&p.entries, e) }

// Pop removes and returns the entry with the smallest (F, Seq).
func (p *PriorityFrontier) Pop() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&p.entries).(Entry), true
}

// Len reports the number of entries still in the heap.
func (p *PriorityFrontier) Len() int { return len(p.entries) }

// entryHeap implements container/heap.Interface over []Entry.
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].Seq < h[j].Seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
