package predgraph_test

import (
	"testing"

	"github.com/katalvlaran/puzzlesearch/internal/predgraph"
)

func TestRelax_ImprovesThenIgnoresWorse(t *testing.T) {
	pg := predgraph.New(false)
	pg.AddStart(0)
	pg.Discover(1)

	newG, outcome := pg.Relax(1, 0, 5)
	if outcome != predgraph.Improved || newG != 5 {
		t.Fatalf("first relax: got (%d, %v); want (5, Improved)", newG, outcome)
	}
	if pg.PrimaryParent(1) != 0 || pg.G(1) != 5 {
		t.Fatalf("after improve: parent=%d g=%d; want parent=0 g=5", pg.PrimaryParent(1), pg.G(1))
	}

	pg.Discover(2)
	pg.Relax(2, 1, 100) // give vertex 2 a worse tentative cost via 1
	_, outcome = pg.Relax(1, 2, 50)
	if outcome != predgraph.Ignored {
		t.Fatalf("relax via worse parent: got %v; want Ignored", outcome)
	}
	if pg.G(1) != 5 {
		t.Fatalf("g(1) changed after an ignored relax: got %d; want 5", pg.G(1))
	}
}

func TestRelax_TiedRecordsExtraParentOnlyInAllOptimalMode(t *testing.T) {
	pg := predgraph.New(true)
	pg.AddStart(0)
	pg.Discover(1) // reached via two parents of equal weight: 0 and a sibling
	pg.Discover(2)
	pg.Relax(2, 0, 3)

	pg.Relax(1, 0, 4)
	_, outcome := pg.Relax(1, 2, 1) // g(2)=3, +1 = 4, ties g(1)=4
	if outcome != predgraph.Tied {
		t.Fatalf("tied relax: got %v; want Tied", outcome)
	}
	extra := pg.ExtraParents(1)
	if len(extra) != 2 || extra[0] != 0 || extra[1] != 2 {
		t.Fatalf("ExtraParents(1) = %v; want [0 2]", extra)
	}
}

func TestRelax_TiedIgnoredOutsideAllOptimalMode(t *testing.T) {
	pg := predgraph.New(false)
	pg.AddStart(0)
	pg.Discover(1)
	pg.Discover(2)
	pg.Relax(2, 0, 3)
	pg.Relax(1, 0, 4)

	_, outcome := pg.Relax(1, 2, 1)
	if outcome != predgraph.Ignored {
		t.Fatalf("tie outside all-optimal mode: got %v; want Ignored", outcome)
	}
	if pg.ExtraParents(1) != nil {
		t.Fatalf("ExtraParents outside all-optimal mode: got %v; want nil", pg.ExtraParents(1))
	}
}

func TestDiscoverEdge_SetsParentUnconditionally(t *testing.T) {
	pg := predgraph.New(false)
	pg.AddStart(0)
	pg.Discover(1)
	pg.DiscoverEdge(1, 0, 7)
	if pg.G(1) != 7 || pg.PrimaryParent(1) != 0 {
		t.Fatalf("after DiscoverEdge: g=%d parent=%d; want g=7 parent=0", pg.G(1), pg.PrimaryParent(1))
	}
}
