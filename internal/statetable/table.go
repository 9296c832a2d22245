// Package statetable implements the state table: a bidirectional
// mapping between an internal dense vertex id and the caller's canonical
// state payload.
//
// V → S is a dense slice (O(1) lookup). S → V is kept sorted by the
// state's own Less ordering and searched with binary search, giving O(log n)
// lookups at the cost of an O(n) shift on insert — a pragmatic trade-off,
// since insertions happen once per discovered vertex while lookups happen
// on every expansion. A self-balancing tree would keep insert at O(log n)
// too, but only the lookup bound is actually required here.
package statetable

import "sort"

// Table is the bimap between vertex id and state S.
type Table[S interface{ Less(S) bool }] struct {
	byID  []S   // id -> state, dense, append-only
	order []int // ids, sorted by byID[id] ascending (Less)
}

// New returns an empty Table with capacity hint capHint preallocated.
func New[S interface{ Less(S) bool }](capHint int) *Table[S] {
	return &Table[S]{
		byID:  make([]S, 0, capHint),
		order: make([]int, 0, capHint),
	}
}

// Intern returns the id for s, assigning a fresh one if s has not been
// seen before. inserted reports whether this call assigned a new id.
func (t *Table[S]) Intern(s S) (id int, inserted bool) {
	pos, found := t.search(s)
	if found {
		return t.order[pos], false
	}

	id = len(t.byID)
	t.byID = append(t.byID, s)
	t.order = append(t.order, 0)
	copy(t.order[pos+1:], t.order[pos:len(t.order)-1])
	t.order[pos] = id

	return id, true
}

// Lookup returns the state stored for id. id must have come from a prior
// Intern call on this Table.
func (t *Table[S]) Lookup(id int) S {
	return t.byID[id]
}

// Replace overwrites the payload stored for id with s without reassigning
// its id. Used when a cheaper parent is found for an already-discovered
// vertex and the new state carries different auxiliary bookkeeping than
// the old one, even though the two compare equal under Less.
func (t *Table[S]) Replace(id int, s S) {
	t.byID[id] = s
}

// Len reports how many distinct states have been interned.
func (t *Table[S]) Len() int { return len(t.byID) }

// search returns the position in t.order where s is found (found=true,
// t.order[pos] is its id) or where it should be inserted to keep t.order
// sorted (found=false).
func (t *Table[S]) search(s S) (pos int, found bool) {
	n := len(t.order)
	pos = sort.Search(n, func(i int) bool {
		return !t.byID[t.order[i]].Less(s)
	})
	if pos < n && !s.Less(t.byID[t.order[pos]]) {
		return pos, true
	}
	return pos, false
}
