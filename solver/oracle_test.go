package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/stretchr/testify/require"
)

// oracleDistances relaxes every (cell, walls broken) state until nothing improves
// and returns, per cell, the fewest steps needed with at most power breaks, or -1.
func oracleDistances(m *maze.Maze, startRow, startCol, power int) [][]int {
	inf := math.MaxInt32
	dist := make([][][]int, power+1)
	for used := range dist {
		dist[used] = make([][]int, m.Rows())
		for r := range dist[used] {
			dist[used][r] = make([]int, m.Columns())
			for c := range dist[used][r] {
				dist[used][r][c] = inf
			}
		}
	}
	dist[0][startRow][startCol] = 0

	for changed := true; changed; {
		changed = false
		for used := 0; used <= power; used++ {
			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Columns(); c++ {
					d := dist[used][r][c]
					if d == inf {
						continue
					}
					for _, side := range maze.Sides {
						dr, dc := side.Delta()
						nr, nc := r+dr, c+dc
						if !m.InBound(nr, nc) {
							continue
						}
						nu := used
						if m.WallOnSide(r, c, side) {
							nu++
						}
						if nu > power || d+1 >= dist[nu][nr][nc] {
							continue
						}
						dist[nu][nr][nc] = d + 1
						changed = true
					}
				}
			}
		}
	}

	out := make([][]int, m.Rows())
	for r := range out {
		out[r] = make([]int, m.Columns())
		for c := range out[r] {
			best := inf
			for used := 0; used <= power; used++ {
				best = min(best, dist[used][r][c])
			}
			if best == inf {
				best = -1
			}
			out[r][c] = best
		}
	}
	return out
}

func countEqual(table [][]int, k int) int {
	n := 0
	for _, row := range table {
		for _, v := range row {
			if v == k {
				n++
			}
		}
	}
	return n
}

// randomWalls returns an enclosed maze with interior walls placed with probability p.
func randomWalls(t *testing.T, rng *rand.Rand, rows, cols int, p float64) *maze.Maze {
	t.Helper()
	m, err := maze.NewOpen(rows, cols)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, side := range []maze.Side{maze.South, maze.East} {
				if rng.Float64() < p {
					require.NoError(t, m.SetWall(r, c, side, true))
				}
			}
		}
	}
	return m
}

// testMazes is a mix of generated perfect mazes and grids with random walls,
// which may leave parts of the grid unreachable.
func testMazes(t *testing.T) []*maze.Maze {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	var mazes []*maze.Maze
	for _, dim := range [][2]int{{1, 1}, {1, 4}, {3, 3}, {4, 5}, {5, 5}} {
		m, err := maze.Generate(dim[0], dim[1], rng)
		require.NoError(t, err)
		mazes = append(mazes, m)
	}
	for _, p := range []float64{0.2, 0.45, 0.7} {
		mazes = append(mazes, randomWalls(t, rng, 4, 4, p))
	}
	return mazes
}
