package solver

import (
	"fmt"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// powerState is a search node of the power search: the same cell reached with a
// different amount of power left is a different state.
type powerState struct {
	row, col int
	power    int
}

func (s powerState) position() position {
	return position{s.row, s.col}
}

type powerNode struct {
	state powerState
	steps int
}

// PowerPathSearch finds the shortest path from (startRow, startCol) to
// (endRow, endCol) when up to power walls may be broken, one unit of power per
// wall. It returns the number of steps and true when the end is reachable, and
// false with a nil error when it is not.
//
// Power beyond the number of cells minus one buys nothing and is capped.
//
// A cell's distance is the fewest steps at which it was reached with any amount
// of power left. The cells of the first path to reach the end are marked on the
// grid.
func (e *Engine) PowerPathSearch(startRow, startCol, endRow, endCol, power int) (int, bool, error) {
	if e.grid == nil {
		return 0, false, ErrUninitializedEngine
	}
	if power < 0 {
		return 0, false, fmt.Errorf("%w: %d", ErrNegativePower, power)
	}
	start := position{startRow, startCol}
	end := position{endRow, endCol}
	if err := e.prepare(start, end); err != nil {
		return 0, false, err
	}
	steps, found := e.supersolve(start, end, power)
	return steps, found, nil
}

// supersolve runs a breadth-first search over (cell, power left) states. Every
// move costs one step; crossing a wall also costs one unit of power.
func (e *Engine) supersolve(start, end position, power int) (int, bool) {
	// A shortest path visits each cell at most once, so it never breaks more
	// than cells-1 walls.
	power = min(power, e.rows*e.cols-1)
	startState := powerState{row: start.row, col: start.col, power: power}
	visited := map[powerState]struct{}{startState: {}}
	prev := make(map[powerState]powerState)
	queue := []powerNode{{state: startState}}
	e.minSteps[start.row][start.col] = 0

	steps, found := 0, false
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if !found && cur.state.position() == end {
			found = true
			steps = cur.steps
			e.markPowerPath(prev, startState, cur.state)
		}

		for _, side := range maze.Sides {
			if !e.inRange(cur.state.position(), side) {
				continue
			}
			dr, dc := side.Delta()
			next := powerState{
				row:   cur.state.row + dr,
				col:   cur.state.col + dc,
				power: cur.state.power,
			}
			if e.grid.WallOnSide(cur.state.row, cur.state.col, side) {
				next.power--
			}
			if next.power < 0 {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}

			visited[next] = struct{}{}
			prev[next] = cur.state
			newSteps := cur.steps + 1
			queue = append(queue, powerNode{state: next, steps: newSteps})
			if ms := e.minSteps[next.row][next.col]; ms == unreached || ms > newSteps {
				e.minSteps[next.row][next.col] = newSteps
			}
		}
	}

	return steps, found
}

// markPowerPath walks predecessor links from end back to start, marking each cell.
func (e *Engine) markPowerPath(prev map[powerState]powerState, start, end powerState) {
	cur := end
	for cur != start {
		e.grid.MarkOnPath(cur.row, cur.col, true)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	e.grid.MarkOnPath(start.row, start.col, true)
}
