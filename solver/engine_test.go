package solver_test

import (
	"testing"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, m *maze.Maze) *solver.Engine {
	t.Helper()
	e := solver.New()
	require.NoError(t, e.Initialize(m))
	return e
}

// corridor is the 1x3 maze with a wall between (0,0) and (0,1).
func corridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.NewOpen(1, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetWall(0, 0, maze.East, true))
	return m
}

func distances(t *testing.T, e *solver.Engine, m *maze.Maze) [][]int {
	t.Helper()
	table := make([][]int, m.Rows())
	for r := range table {
		table[r] = make([]int, m.Columns())
		for c := range table[r] {
			d, err := e.Distance(r, c)
			require.NoError(t, err)
			table[r][c] = d
		}
	}
	return table
}

func TestEngine_Errors(t *testing.T) {
	t.Run("queries before initialize", func(t *testing.T) {
		e := solver.New()

		_, _, err := e.PathSearch(0, 0, 0, 0)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)

		_, _, err = e.PowerPathSearch(0, 0, 0, 0, 1)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)

		_, _, err = e.PowerPathSearch(0, 0, 0, 0, -1)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine, "an uninitialized engine is reported before a bad power")

		_, err = e.NumReachable(0)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)

		_, err = e.Distance(0, 0)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)

		_, err = e.Reachability()
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)
	})

	t.Run("initialize with nil grid", func(t *testing.T) {
		e := solver.New()
		assert.ErrorIs(t, e.Initialize(nil), solver.ErrInvalidGrid)

		_, err := e.NumReachable(0)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)
	})

	t.Run("invalid grid unbinds the previous one", func(t *testing.T) {
		e := newEngine(t, corridor(t))
		assert.ErrorIs(t, e.Initialize(nil), solver.ErrInvalidGrid)

		_, _, err := e.PathSearch(0, 0, 0, 2)
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)
		_, err = e.Reachability()
		assert.ErrorIs(t, err, solver.ErrUninitializedEngine)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		m, err := maze.NewOpen(2, 3)
		require.NoError(t, err)
		e := newEngine(t, m)

		bad := [][4]int{
			{-1, 0, 1, 1},
			{0, -1, 1, 1},
			{2, 0, 1, 1},
			{0, 3, 1, 1},
			{0, 0, -1, 0},
			{0, 0, 0, -1},
			{0, 0, 2, 0},
			{0, 0, 0, 3},
		}
		for _, q := range bad {
			_, _, err := e.PathSearch(q[0], q[1], q[2], q[3])
			assert.ErrorIs(t, err, solver.ErrInvalidCoordinate, "plain %v", q)

			_, _, err = e.PowerPathSearch(q[0], q[1], q[2], q[3], 2)
			assert.ErrorIs(t, err, solver.ErrInvalidCoordinate, "power %v", q)
		}

		_, err = e.Distance(2, 0)
		assert.ErrorIs(t, err, solver.ErrInvalidCoordinate)
	})

	t.Run("negative power", func(t *testing.T) {
		e := newEngine(t, corridor(t))
		_, _, err := e.PowerPathSearch(0, 0, 0, 2, -1)
		assert.ErrorIs(t, err, solver.ErrNegativePower)
	})
}

func TestEngine_NumReachableBeforeQuery(t *testing.T) {
	m, err := maze.NewOpen(3, 3)
	require.NoError(t, err)
	e := newEngine(t, m)

	for k := 0; k < 5; k++ {
		n, err := e.NumReachable(k)
		require.NoError(t, err)
		assert.Zero(t, n, "k=%d", k)
	}
	n, err := e.NumReachable(-1)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestEngine_Corridor(t *testing.T) {
	m := corridor(t)
	e := newEngine(t, m)

	t.Run("plain search is blocked", func(t *testing.T) {
		_, found, err := e.PathSearch(0, 0, 0, 2)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, m.PathCells())

		d, err := e.Distance(0, 2)
		require.NoError(t, err)
		assert.Equal(t, -1, d)
	})

	t.Run("one unit of power breaks through", func(t *testing.T) {
		steps, found, err := e.PowerPathSearch(0, 0, 0, 2, 1)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, steps)
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, m.PathCells())
	})

	t.Run("no power is the same as plain", func(t *testing.T) {
		_, found, err := e.PowerPathSearch(0, 0, 0, 2, 0)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, m.PathCells())
	})
}

func TestEngine_OpenGrid(t *testing.T) {
	m, err := maze.NewOpen(3, 3)
	require.NoError(t, err)
	e := newEngine(t, m)

	steps, found, err := e.PathSearch(0, 0, 2, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 4, steps)

	oracle := oracleDistances(m, 0, 0, 0)
	for k := 0; k <= 5; k++ {
		n, err := e.NumReachable(k)
		require.NoError(t, err)
		assert.Equal(t, countEqual(oracle, k), n, "k=%d", k)
	}
}

func TestEngine_IsolatedCell(t *testing.T) {
	m, err := maze.NewOpen(3, 3)
	require.NoError(t, err)
	for _, side := range maze.Sides {
		require.NoError(t, m.SetWall(1, 1, side, true))
	}
	e := newEngine(t, m)

	_, found, err := e.PathSearch(0, 0, 1, 1)
	require.NoError(t, err)
	assert.False(t, found)
	d, err := e.Distance(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	// (0,1) and (1,0) at 1 step, (0,2) and (2,0) at 2, (1,2) and (2,1) at 3, (2,2) at 4.
	for k, want := range []int{1, 2, 2, 2, 1} {
		n, err := e.NumReachable(k)
		require.NoError(t, err)
		assert.Equal(t, want, n, "k=%d", k)
	}

	_, found, err = e.PowerPathSearch(0, 0, 1, 1, 0)
	require.NoError(t, err)
	assert.False(t, found)
	d, err = e.Distance(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, d)
}

func TestEngine_StartIsEnd(t *testing.T) {
	m, err := maze.New(2, 2)
	require.NoError(t, err)
	e := newEngine(t, m)

	steps, found, err := e.PathSearch(1, 1, 1, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, steps)
	assert.Equal(t, []maze.CellPosition{{Row: 1, Col: 1}}, m.PathCells())

	steps, found, err = e.PowerPathSearch(1, 1, 1, 1, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, steps)
	assert.Equal(t, []maze.CellPosition{{Row: 1, Col: 1}}, m.PathCells())
}

func TestEngine_TieBreakFollowsNeighborOrder(t *testing.T) {
	m, err := maze.NewOpen(2, 2)
	require.NoError(t, err)
	e := newEngine(t, m)

	// South is explored before East, so (1,0) discovers (1,1) first.
	want := []maze.CellPosition{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}

	steps, found, err := e.PathSearch(0, 0, 1, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, steps)
	assert.Equal(t, want, m.PathCells())

	steps, found, err = e.PowerPathSearch(0, 0, 1, 1, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, steps)
	assert.Equal(t, want, m.PathCells())
}

func TestEngine_QueryClearsPreviousPath(t *testing.T) {
	m, err := maze.NewOpen(1, 4)
	require.NoError(t, err)
	e := newEngine(t, m)

	_, _, err = e.PathSearch(0, 0, 0, 3)
	require.NoError(t, err)
	require.Len(t, m.PathCells(), 4)

	_, _, err = e.PowerPathSearch(0, 3, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, m.PathCells())

	d, err := e.Distance(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, d, "distances are measured from the latest start")
}

func TestEngine_PlainMatchesOracle(t *testing.T) {
	for mi, m := range testMazes(t) {
		e := newEngine(t, m)
		for sr := 0; sr < m.Rows(); sr++ {
			for sc := 0; sc < m.Columns(); sc++ {
				oracle := oracleDistances(m, sr, sc, 0)
				for er := 0; er < m.Rows(); er++ {
					for ec := 0; ec < m.Columns(); ec++ {
						steps, found, err := e.PathSearch(sr, sc, er, ec)
						require.NoError(t, err)

						want := oracle[er][ec]
						if want < 0 {
							assert.False(t, found, "maze %d (%d,%d)->(%d,%d)", mi, sr, sc, er, ec)
							assert.Empty(t, m.PathCells())
							continue
						}
						require.True(t, found, "maze %d (%d,%d)->(%d,%d)", mi, sr, sc, er, ec)
						assert.Equal(t, want, steps)
						assert.Len(t, m.PathCells(), steps+1)
						assert.True(t, m.Cell(sr, sc).OnPath)
						assert.True(t, m.Cell(er, ec).OnPath)
					}
				}
				if diff := cmp.Diff(oracle, distances(t, e, m)); diff != "" {
					t.Errorf("maze %d from (%d,%d): distance table mismatch (-want +got):\n%s", mi, sr, sc, diff)
				}
			}
		}
	}
}

func TestEngine_PowerMatchesOracle(t *testing.T) {
	for mi, m := range testMazes(t) {
		e := newEngine(t, m)
		for power := 0; power <= 2; power++ {
			for sr := 0; sr < m.Rows(); sr++ {
				for sc := 0; sc < m.Columns(); sc++ {
					oracle := oracleDistances(m, sr, sc, power)
					for er := 0; er < m.Rows(); er++ {
						for ec := 0; ec < m.Columns(); ec++ {
							steps, found, err := e.PowerPathSearch(sr, sc, er, ec, power)
							require.NoError(t, err)

							want := oracle[er][ec]
							if want < 0 {
								assert.False(t, found)
								continue
							}
							require.True(t, found, "maze %d power %d (%d,%d)->(%d,%d)", mi, power, sr, sc, er, ec)
							assert.Equal(t, want, steps)
							assert.Len(t, m.PathCells(), steps+1)
						}
					}
					// The table keeps the fewest steps at any power level.
					if diff := cmp.Diff(oracle, distances(t, e, m)); diff != "" {
						t.Errorf("maze %d power %d from (%d,%d): distance table mismatch (-want +got):\n%s", mi, power, sr, sc, diff)
					}
				}
			}
		}
	}
}

func TestEngine_PowerNeverHurts(t *testing.T) {
	for mi, m := range testMazes(t) {
		e := newEngine(t, m)
		last := m.Rows() - 1
		lastCol := m.Columns() - 1

		plain, plainFound, err := e.PathSearch(0, 0, last, lastCol)
		require.NoError(t, err)

		prev, prevFound := plain, plainFound
		for power := 0; power <= 4; power++ {
			steps, found, err := e.PowerPathSearch(0, 0, last, lastCol, power)
			require.NoError(t, err)

			if power == 0 {
				assert.Equal(t, plainFound, found, "maze %d", mi)
				if plainFound {
					assert.Equal(t, plain, steps, "maze %d", mi)
				}
			}
			if plainFound {
				require.True(t, found)
				assert.LessOrEqual(t, steps, plain, "maze %d power %d", mi, power)
			}
			if prevFound {
				require.True(t, found)
				assert.LessOrEqual(t, steps, prev, "maze %d power %d", mi, power)
			}
			prev, prevFound = steps, found
		}
	}
}

func TestEngine_PowerBeyondCellCount(t *testing.T) {
	m, err := maze.New(4, 4)
	require.NoError(t, err)
	e := newEngine(t, m)
	enough := m.Rows()*m.Columns() - 1

	steps, found, err := e.PowerPathSearch(0, 0, 3, 3, enough)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 6, steps)
	path := m.PathCells()
	table := distances(t, e, m)

	for _, power := range []int{enough + 1, 1000, 1 << 30} {
		got, found, err := e.PowerPathSearch(0, 0, 3, 3, power)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, steps, got, "power %d", power)
		assert.Equal(t, path, m.PathCells(), "power %d", power)
		if diff := cmp.Diff(table, distances(t, e, m)); diff != "" {
			t.Errorf("power %d distance table mismatch (-want +got):\n%s", power, diff)
		}
	}
}

func TestEngine_ReachabilityCoversEveryCell(t *testing.T) {
	for _, m := range testMazes(t) {
		e := newEngine(t, m)
		cells := m.Rows() * m.Columns()

		check := func() {
			total := 0
			for k := 0; k < cells; k++ {
				n, err := e.NumReachable(k)
				require.NoError(t, err)
				total += n
			}
			unreachedCells, err := e.NumReachable(-1)
			require.NoError(t, err)
			assert.Equal(t, cells, total+unreachedCells)

			hist, err := e.Reachability()
			require.NoError(t, err)
			for k, n := range hist {
				got, err := e.NumReachable(k)
				require.NoError(t, err)
				assert.Equal(t, got, n, "k=%d", k)
			}
		}

		_, _, err := e.PathSearch(0, 0, m.Rows()-1, m.Columns()-1)
		require.NoError(t, err)
		check()

		_, _, err = e.PowerPathSearch(0, 0, m.Rows()-1, m.Columns()-1, 1)
		require.NoError(t, err)
		check()
	}
}

func TestEngine_Idempotent(t *testing.T) {
	for _, m := range testMazes(t) {
		e := newEngine(t, m)
		er, ec := m.Rows()-1, m.Columns()-1

		queries := []func() (int, bool, error){
			func() (int, bool, error) { return e.PathSearch(0, 0, er, ec) },
			func() (int, bool, error) { return e.PowerPathSearch(0, 0, er, ec, 2) },
		}
		for _, query := range queries {
			steps1, found1, err := query()
			require.NoError(t, err)
			path1 := m.PathCells()
			dist1 := distances(t, e, m)

			steps2, found2, err := query()
			require.NoError(t, err)

			assert.Equal(t, found1, found2)
			assert.Equal(t, steps1, steps2)
			assert.Equal(t, path1, m.PathCells())
			if diff := cmp.Diff(dist1, distances(t, e, m)); diff != "" {
				t.Errorf("distance table changed between identical queries (-first +second):\n%s", diff)
			}
		}
	}
}

func TestEngine_Reinitialize(t *testing.T) {
	small, err := maze.NewOpen(1, 2)
	require.NoError(t, err)
	big, err := maze.NewOpen(4, 4)
	require.NoError(t, err)

	e := newEngine(t, small)
	_, _, err = e.PathSearch(0, 0, 0, 1)
	require.NoError(t, err)

	require.NoError(t, e.Initialize(big))
	n, err := e.NumReachable(-1)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	steps, found, err := e.PathSearch(0, 0, 3, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, steps)
	assert.Len(t, small.PathCells(), 2, "the old grid is no longer written")
}
