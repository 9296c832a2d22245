package statetable_test

import (
	"testing"

	"github.com/katalvlaran/puzzlesearch/internal/statetable"
)

type intState int

func (a intState) Less(b intState) bool { return a < b }

func TestTable_InternAssignsStableIDs(t *testing.T) {
	tbl := statetable.New[intState](0)

	id1, inserted1 := tbl.Intern(intState(5))
	if !inserted1 {
		t.Fatalf("first intern of 5: want inserted=true")
	}
	id2, inserted2 := tbl.Intern(intState(5))
	if inserted2 {
		t.Fatalf("second intern of 5: want inserted=false")
	}
	if id1 != id2 {
		t.Fatalf("id1=%d id2=%d; want equal ids for equal state", id1, id2)
	}
	if got := tbl.Lookup(id1); got != intState(5) {
		t.Fatalf("Lookup(%d) = %v; want 5", id1, got)
	}
}

func TestTable_InternOutOfOrderInsertionsStillFindEachOther(t *testing.T) {
	tbl := statetable.New[intState](0)
	ids := map[int]int{}
	for _, v := range []int{5, 1, 9, 3, 7, 1, 9} {
		id, _ := tbl.Intern(intState(v))
		ids[v] = id
	}
	if ids[1] == ids[9] {
		t.Fatalf("distinct states got the same id")
	}
	for v, id := range ids {
		if got := tbl.Lookup(id); got != intState(v) {
			t.Fatalf("Lookup(%d) = %v; want %d", id, got, v)
		}
	}
	if tbl.Len() != 5 {
		t.Fatalf("Len() = %d; want 5 distinct states", tbl.Len())
	}
}

func TestTable_Replace(t *testing.T) {
	tbl := statetable.New[intState](0)
	id, _ := tbl.Intern(intState(42))
	tbl.Replace(id, intState(42))
	if got := tbl.Lookup(id); got != intState(42) {
		t.Fatalf("Lookup after Replace = %v; want 42", got)
	}
}
