package idastar_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/puzzlesearch/idastar"
	"github.com/katalvlaran/puzzlesearch/internal/fixture"
)

// slidePair is a minimal two-tile 8-puzzle-style fixture: a single boolean
// "swapped" flag, one move away from the goal, small enough that both
// Recursive and Iterative examine it exhaustively.
type slidePair bool

func (s slidePair) IsGoal() bool { return bool(s) == false }

func (s slidePair) Children() []slidePair { return []slidePair{!s} }

func (s slidePair) Distance(slidePair) uint32 { return 1 }

func (s slidePair) Less(o slidePair) bool { return !bool(s) && bool(o) }

func (s slidePair) Heuristic() uint32 {
	if bool(s) {
		return 1
	}
	return 0
}

type IdastarSuite struct {
	suite.Suite
}

func TestIdastarSuite(t *testing.T) {
	suite.Run(t, new(IdastarSuite))
}

func (s *IdastarSuite) TestRecursive_SolvesOneSwapFromGoal() {
	result, err := idastar.Recursive[slidePair](true)
	s.Require().NoError(err)
	s.Require().True(result.Found)
	s.Require().Equal([]slidePair{true, false}, result.Paths[0])
}

func (s *IdastarSuite) TestIterative_MatchesRecursive() {
	want, err := idastar.Recursive[slidePair](true)
	s.Require().NoError(err)
	got, err := idastar.Iterative[slidePair](true)
	s.Require().NoError(err)
	s.Require().Equal(want.Found, got.Found)
	s.Require().Equal(want.Paths, got.Paths)
}

// TestRecursive_Puzzle8_OneSwapFromGoal covers an 8-puzzle one slide
// away from solved, which must be found in exactly one move.
func (s *IdastarSuite) TestRecursive_Puzzle8_OneSwapFromGoal() {
	goal := "12345678 "
	seed := fixture.Puzzle8{Cells: "1234567 8", Rows: 3, Cols: 3, Goal: goal}

	result, err := idastar.Recursive[fixture.Puzzle8](seed)
	s.Require().NoError(err)
	s.Require().True(result.Found)
	s.Require().Len(result.Paths, 1)
	s.Require().Len(result.Paths[0], 2) // start + one move
	s.Require().Equal(goal, result.Paths[0][1].Cells)
}

func (s *IdastarSuite) TestRecursive_WithCycleCheckHashSet() {
	result, err := idastar.Recursive[slidePair](true, idastar.WithCycleCheck(idastar.CycleCheckHashSet))
	s.Require().NoError(err)
	s.Require().True(result.Found)
}

// loopState forms a two-state cycle with no goal reachable, exercising the
// cycle check rather than IDA*'s cost-limit growth: without it, Recursive
// would recurse forever.
type loopState int

func (l loopState) IsGoal() bool { return false }

func (l loopState) Children() []loopState { return []loopState{1 - l} }

func (l loopState) Distance(loopState) uint32 { return 1 }

func (l loopState) Less(o loopState) bool { return l < o }

func (l loopState) Heuristic() uint32 { return 0 }

func (s *IdastarSuite) TestRecursive_CycleDoesNotRecurseForever() {
	result, err := idastar.Recursive[loopState](0)
	s.Require().NoError(err)
	s.Require().False(result.Found)
}
