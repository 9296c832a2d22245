// Command searchdemo runs the bundled example puzzles through each search
// engine and prints the result. It exists to give the library something
// runnable to exercise, not to reproduce a puzzle-solving application.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlesearch/astar"
	"github.com/katalvlaran/puzzlesearch/bfs"
	"github.com/katalvlaran/puzzlesearch/dfs"
	"github.com/katalvlaran/puzzlesearch/dijkstra"
	"github.com/katalvlaran/puzzlesearch/idastar"
	"github.com/katalvlaran/puzzlesearch/internal/engine"
	"github.com/katalvlaran/puzzlesearch/internal/fixture"
	"github.com/katalvlaran/puzzlesearch/reachability"
)

var cli struct {
	Grid    gridCommand    `cmd:"" help:"Search a small open grid with no walls."`
	Puzzle8 puzzle8Command `cmd:"" help:"Solve a scrambled 8-puzzle."`
	Pegs15  pegs15Command  `cmd:"" help:"Solve triangular 15-peg solitaire."`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&cli,
		kong.Name("searchdemo"),
		kong.Description("Run the bundled example puzzles against each search engine."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		log.Error("search failed", "error", err)
		os.Exit(1)
	}
}

func report[S any](result engine.Result[S], err error) error {
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Printf("no solution found (examined %d states)\n", result.Examined)
		return nil
	}
	fmt.Printf("found %d path(s), shortest length %d, examined %d states\n",
		len(result.Paths), len(result.Paths[0]), result.Examined)
	return nil
}

type gridCommand struct {
	Rows   int    `default:"6" help:"Grid rows."`
	Cols   int    `default:"6" help:"Grid columns."`
	Engine string `default:"astar" enum:"astar,astar_full,dijkstra,bfs,bfs_complete,dfs,reachability" help:"Engine to run."`
}

func (c *gridCommand) Run() error {
	board := fixture.NewGridBoard(c.Rows, c.Cols, nil, c.Rows-1, c.Cols-1)
	seed := fixture.GridState{Row: 0, Col: 0, Board: board}
	runID := uuid.New()

	switch c.Engine {
	case "astar":
		return report(astar.Solve[fixture.GridState](seed, astar.WithRunID(runID)))
	case "astar_full":
		return report(astar.Solve[fixture.GridState](seed, astar.WithAllOptimal(), astar.WithRunID(runID)))
	case "dijkstra":
		return report(dijkstra.Solve[fixture.GridState](seed, dijkstra.WithRunID(runID)))
	case "bfs":
		return report(bfs.Solve[fixture.GridState](seed, bfs.WithRunID(runID)))
	case "bfs_complete":
		return report(bfs.Solve[fixture.GridState](seed, bfs.WithComplete(), bfs.WithRunID(runID)))
	case "dfs":
		return report(dfs.Solve[fixture.GridState](seed, dfs.WithRunID(runID)))
	case "reachability":
		reached, err := reachability.Reach[fixture.GridState](seed)
		if err != nil {
			return err
		}
		fmt.Printf("reached %d states\n", len(reached))
		return nil
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
}

type puzzle8Command struct {
	Moves  int    `default:"12" help:"Number of random legal moves to scramble from the goal."`
	Seed   int64  `default:"1" help:"Random seed for the scramble."`
	Engine string `default:"idastar" enum:"astar,idastar,idastar_iterative" help:"Engine to run."`
}

func (c *puzzle8Command) Run() error {
	goal := "12345678 "
	seed := scramblePuzzle8(goal, c.Moves, c.Seed)
	runID := uuid.New()

	switch c.Engine {
	case "astar":
		return report(astar.Solve[fixture.Puzzle8](seed, astar.WithRunID(runID)))
	case "idastar":
		return report(idastar.Recursive[fixture.Puzzle8](seed, idastar.WithRunID(runID)))
	case "idastar_iterative":
		return report(idastar.Iterative[fixture.Puzzle8](seed, idastar.WithRunID(runID)))
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
}

func scramblePuzzle8(goal string, moves int, randSeed int64) fixture.Puzzle8 {
	rng := rand.New(rand.NewSource(randSeed))
	cur := fixture.Puzzle8{Cells: goal, Rows: 3, Cols: 3, Goal: goal}
	for i := 0; i < moves; i++ {
		children := cur.Children()
		cur = children[rng.Intn(len(children))]
	}
	return cur
}

type pegs15Command struct {
	Empty  int    `default:"4" help:"Hole index (0-14) left vacant at the start."`
	Engine string `default:"astar" enum:"astar,idastar,idastar_iterative" help:"Engine to run."`
}

func (c *pegs15Command) Run() error {
	seed := fixture.NewPegs15(c.Empty)
	runID := uuid.New()

	switch c.Engine {
	case "astar":
		return report(astar.Solve[fixture.Pegs15](seed, astar.WithRunID(runID)))
	case "idastar":
		return report(idastar.Recursive[fixture.Pegs15](seed, idastar.WithRunID(runID)))
	case "idastar_iterative":
		return report(idastar.Iterative[fixture.Pegs15](seed, idastar.WithRunID(runID)))
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
}
