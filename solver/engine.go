// Package solver finds shortest paths through wall-partitioned mazes.
//
// An Engine is bound to one grid at a time. PathSearch runs a breadth-first
// search that respects walls; PowerPathSearch lets the traveler break through up
// to a given number of walls. Both searches record, for every cell, the fewest
// steps at which the cell was reached from the start, and NumReachable counts the
// cells at an exact step distance using that table. The cells of the chosen path
// are marked on the grid.
//
// An Engine is not safe for concurrent use: each query resets and rewrites the
// engine's tables and the grid's on-path markers.
package solver

import (
	"fmt"

	"github.com/beka-birhanu/vinom-solver/maze"
)

const unreached = -1

// Grid is the view of a maze the engine searches.
type Grid interface {
	Rows() int
	Columns() int
	WallOnSide(row, col int, side maze.Side) bool
	MarkOnPath(row, col int, onPath bool)
}

// position is a cell coordinate.
type position struct {
	row, col int
}

func (p position) step(side maze.Side) position {
	dr, dc := side.Delta()
	return position{row: p.row + dr, col: p.col + dc}
}

// Engine holds the per-cell search state of the grid it is initialized with.
type Engine struct {
	grid     Grid
	rows     int
	cols     int
	visited  [][]bool
	minSteps [][]int
}

// New returns an engine that must be initialized before use.
func New() *Engine {
	return &Engine{}
}

// Initialize binds the engine to g and allocates its visitation and distance
// tables, all cleared. An invalid grid leaves the engine uninitialized.
func (e *Engine) Initialize(g Grid) error {
	if g == nil || g.Rows() <= 0 || g.Columns() <= 0 {
		e.grid, e.rows, e.cols = nil, 0, 0
		e.visited, e.minSteps = nil, nil
		return ErrInvalidGrid
	}

	rows, cols := g.Rows(), g.Columns()
	e.visited = make([][]bool, rows)
	e.minSteps = make([][]int, rows)
	for i := 0; i < rows; i++ {
		e.visited[i] = make([]bool, cols)
		e.minSteps[i] = make([]int, cols)
		for j := range e.minSteps[i] {
			e.minSteps[i][j] = unreached
		}
	}
	e.grid, e.rows, e.cols = g, rows, cols
	return nil
}

// NumReachable returns the number of cells whose distance from the start of the
// most recent path query is exactly k. Before any query no cell matches k >= 0.
func (e *Engine) NumReachable(k int) (int, error) {
	if e.grid == nil {
		return 0, ErrUninitializedEngine
	}
	n := 0
	for i := range e.minSteps {
		for _, steps := range e.minSteps[i] {
			if steps == k {
				n++
			}
		}
	}
	return n, nil
}

// Distance returns the distance-table entry of (row, col): the fewest steps at
// which the most recent query reached the cell, or -1 if it did not.
func (e *Engine) Distance(row, col int) (int, error) {
	if e.grid == nil {
		return 0, ErrUninitializedEngine
	}
	if !e.inBound(position{row, col}) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return e.minSteps[row][col], nil
}

// Reachability returns, for every step count reached by the most recent query,
// the number of cells at exactly that distance.
func (e *Engine) Reachability() (map[int]int, error) {
	if e.grid == nil {
		return nil, ErrUninitializedEngine
	}
	hist := make(map[int]int)
	for i := range e.minSteps {
		for _, steps := range e.minSteps[i] {
			if steps != unreached {
				hist[steps]++
			}
		}
	}
	return hist, nil
}

// prepare validates a query and clears the tables and path markers.
func (e *Engine) prepare(start, end position) error {
	if e.grid == nil {
		return ErrUninitializedEngine
	}
	if !e.inBound(start) || !e.inBound(end) {
		return fmt.Errorf("%w: start (%d,%d), end (%d,%d)", ErrInvalidCoordinate, start.row, start.col, end.row, end.col)
	}

	for i := 0; i < e.rows; i++ {
		for j := 0; j < e.cols; j++ {
			e.visited[i][j] = false
			e.minSteps[i][j] = unreached
			e.grid.MarkOnPath(i, j, false)
		}
	}
	return nil
}

func (e *Engine) inBound(p position) bool {
	return p.row >= 0 && p.row < e.rows && p.col >= 0 && p.col < e.cols
}

// inRange reports whether the neighbor across side is inside the grid. A
// well-formed maze is enclosed by walls, but the grid is not trusted to be.
func (e *Engine) inRange(p position, side maze.Side) bool {
	return e.inBound(p.step(side))
}

// canGo reports whether the traveler can walk from p across side without power.
func (e *Engine) canGo(p position, side maze.Side) bool {
	return e.inRange(p, side) && !e.grid.WallOnSide(p.row, p.col, side)
}
