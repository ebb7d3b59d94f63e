package solver

import "github.com/beka-birhanu/vinom-solver/maze"

// PathSearch finds the shortest path from (startRow, startCol) to (endRow, endCol)
// walking only through open sides. It returns the number of steps and true when
// the end is reachable, and false with a nil error when it is not.
//
// Every cell reachable from the start gets its distance recorded, and the cells
// of the first shortest path found are marked on the grid.
func (e *Engine) PathSearch(startRow, startCol, endRow, endCol int) (int, bool, error) {
	start := position{startRow, startCol}
	end := position{endRow, endCol}
	if err := e.prepare(start, end); err != nil {
		return 0, false, err
	}
	steps, found := e.solve(start, end)
	return steps, found, nil
}

// solve is a breadth-first search that enqueues each cell at most once. The
// parent of a cell is the cell it was first discovered from, so following
// parents from the end yields the first path that reached it.
func (e *Engine) solve(start, end position) (int, bool) {
	parent := make(map[position]position, e.rows*e.cols)
	queue := make([]position, 0, e.rows*e.cols)

	queue = append(queue, start)
	e.visited[start.row][start.col] = true
	e.minSteps[start.row][start.col] = 0

	steps, found := 0, false
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == end && !found {
			found = true
			steps = e.minSteps[cur.row][cur.col]
			e.markPath(parent, start, end)
		}

		for _, side := range maze.Sides {
			if !e.canGo(cur, side) {
				continue
			}
			next := cur.step(side)
			if e.visited[next.row][next.col] {
				continue
			}
			e.visited[next.row][next.col] = true
			e.minSteps[next.row][next.col] = e.minSteps[cur.row][cur.col] + 1
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return steps, found
}

func (e *Engine) markPath(parent map[position]position, start, end position) {
	for cur := end; cur != start; cur = parent[cur] {
		e.grid.MarkOnPath(cur.row, cur.col, true)
	}
	e.grid.MarkOnPath(start.row, start.col, true)
}
