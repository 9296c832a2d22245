package astar_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/puzzlesearch/astar"
	"github.com/katalvlaran/puzzlesearch/internal/fixture"
)

// gridPoint is a point on a small open grid with Manhattan-distance
// heuristic to a fixed goal, the classic admissible-heuristic fixture.
type gridPoint struct{ x, y int }

const goalX, goalY = 3, 3

func (p gridPoint) IsGoal() bool { return p.x == goalX && p.y == goalY }

func (p gridPoint) Children() []gridPoint {
	var out []gridPoint
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := p.x+d[0], p.y+d[1]
		if nx < 0 || ny < 0 || nx > 4 || ny > 4 {
			continue
		}
		out = append(out, gridPoint{nx, ny})
	}
	return out
}

func (p gridPoint) Distance(gridPoint) uint32 { return 1 }

func (p gridPoint) Less(o gridPoint) bool {
	if p.x != o.x {
		return p.x < o.x
	}
	return p.y < o.y
}

func (p gridPoint) Heuristic() uint32 {
	dx := goalX - p.x
	if dx < 0 {
		dx = -dx
	}
	dy := goalY - p.y
	if dy < 0 {
		dy = -dy
	}
	return uint32(dx + dy)
}

type AstarSuite struct {
	suite.Suite
}

func TestAstarSuite(t *testing.T) {
	suite.Run(t, new(AstarSuite))
}

func (s *AstarSuite) TestSolve_FindsOptimalLengthPath() {
	result, err := astar.Solve[gridPoint](gridPoint{0, 0})
	s.Require().NoError(err)
	s.Require().True(result.Found)
	s.Require().Len(result.Paths, 1)
	// Manhattan distance from (0,0) to (3,3) is 6 steps, 7 states.
	s.Require().Len(result.Paths[0], 7)
}

func (s *AstarSuite) TestSolve_AllOptimal_EnumeratesEveryShortestRoute() {
	result, err := astar.Solve[gridPoint](gridPoint{0, 0}, astar.WithAllOptimal())
	s.Require().NoError(err)
	s.Require().True(result.Found)
	// Every monotone lattice path from (0,0) to (3,3): C(6,3) = 20.
	s.Require().Len(result.Paths, 20)
}

// TestSolve_Pegs15_SolvesFromCenterVacancy covers the traditional
// triangular 15-peg solitaire starting position, vacant at the center
// hole. A solution reduces 14 pegs to 1 in exactly 13 moves.
func (s *AstarSuite) TestSolve_Pegs15_SolvesFromCenterVacancy() {
	seed := fixture.NewPegs15(4)
	result, err := astar.Solve[fixture.Pegs15](seed)
	s.Require().NoError(err)
	s.Require().True(result.Found)
	s.Require().Len(result.Paths, 1)
	s.Require().Len(result.Paths[0], 14) // 14 pegs -> 1 peg, 13 moves
}
