// Command solve finds the shortest path through a maze read from a YAML file
// or generated on the fly, prints the maze with the path marked and how many
// cells lie at each distance from the start.
//
//	solve -maze maze.yaml -start 0,0 -end 2,3 -power 1
//	solve -generate 6x8 -seed 42 -start 0,0 -end 5,7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/infrastruture/log"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service"
)

var ErrNoMaze = errors.New("one of -maze or -generate is required")

func main() {
	logger, err := log.New("SOLVE", config.ColorCyan, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// run parses args, solves the query and writes the report to out.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		mazePath = fs.String("maze", "", "YAML maze file")
		generate = fs.String("generate", "", "generate a perfect maze of the given size, e.g. 5x7")
		seed     = fs.Int64("seed", 1, "seed for -generate")
		start    = fs.String("start", "0,0", "start cell as row,col")
		end      = fs.String("end", "", "end cell as row,col (defaults to the bottom right corner)")
		power    = fs.Int("power", -1, "walls that may be broken; negative for a plain search")
		maxSteps = fs.Int("max-steps", 9, "print the room count for every distance up to this one")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := buildMaze(*mazePath, *generate, *seed)
	if err != nil {
		return err
	}

	q := domain.Query{}
	if q.Start, err = parsePosition(*start); err != nil {
		return err
	}
	q.End = maze.CellPosition{Row: m.Rows() - 1, Col: m.Columns() - 1}
	if *end != "" {
		if q.End, err = parsePosition(*end); err != nil {
			return err
		}
	}
	if *power >= 0 {
		q.Power = power
	}

	sol, err := service.Solve(m, q)
	if err != nil {
		return err
	}
	report(out, sol, *maxSteps)
	return nil
}

func buildMaze(path, size string, seed int64) (*maze.Maze, error) {
	switch {
	case path != "":
		return loadMaze(path)
	case size != "":
		rows, cols, err := parseSize(size)
		if err != nil {
			return nil, err
		}
		return maze.Generate(rows, cols, rand.New(rand.NewSource(seed)))
	}
	return nil, ErrNoMaze
}

func report(out io.Writer, sol *domain.Solution, maxSteps int) {
	if sol.Found {
		fmt.Fprintln(out, sol.Steps)
	} else {
		fmt.Fprintln(out, "no path")
	}
	fmt.Fprint(out, sol.Rendered)
	for k := 0; k <= maxSteps; k++ {
		fmt.Fprintf(out, "Steps %d Rooms: %d\n", k, sol.Reachable[k])
	}
}
