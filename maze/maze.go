/*
Package maze provides tools for creating and managing rectangular mazes.

It defines the `Maze` structure, composed of `Cell` objects that carry wall
configurations and an on-path marker written by path searches.

The package includes fully walled and open constructors, random maze generation
with Wilson's algorithm, consistent wall manipulation, validation of neighbor
wall pairs, and ASCII visualization of the maze together with the marked path.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell position is out of the maze")
	ErrNonRectangular    = errors.New("all maze rows must have the same length")
	ErrInconsistentWalls = errors.New("neighboring cells disagree on a shared wall")
)

// Maze represents a rectangular maze consisting of cells with walls.
type Maze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells forming the maze
}

// New initializes a maze of the given dimensions where every cell is walled in on all sides.
func New(rows, cols int) (*Maze, error) {
	return newFilled(rows, cols, true)
}

// NewOpen initializes a maze of the given dimensions with only its outer boundary walled.
func NewOpen(rows, cols int) (*Maze, error) {
	m, err := newFilled(rows, cols, false)
	if err != nil {
		return nil, err
	}
	for col := 0; col < cols; col++ {
		m.Grid[0][col].NorthWall = true
		m.Grid[rows-1][col].SouthWall = true
	}
	for row := 0; row < rows; row++ {
		m.Grid[row][0].WestWall = true
		m.Grid[row][cols-1].EastWall = true
	}
	return m, nil
}

// Generate creates a perfect maze (exactly one path between any two cells) using
// Wilson's loop-erased random walk. A nil rng falls back to a time-seeded source.
func Generate(rows, cols int, rng *rand.Rand) (*Maze, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	m.generateMaze(rng)
	return m, nil
}

// FromCells builds a maze from a rectangular grid of cells. The cells are copied.
func FromCells(cells [][]Cell) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(cells[0])
	grid := make([][]*Cell, len(cells))
	for row := range cells {
		if len(cells[row]) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(cells[row]), width)
		}
		grid[row] = make([]*Cell, width)
		for col := range cells[row] {
			c := cells[row][col]
			grid[row][col] = &c
		}
	}
	return &Maze{Width: width, Height: len(cells), Grid: grid}, nil
}

func newFilled(rows, cols int, walled bool) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	grid := make([][]*Cell, rows)
	for i := range grid {
		grid[i] = make([]*Cell, cols)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: walled,
				SouthWall: walled,
				EastWall:  walled,
				WestWall:  walled,
			}
		}
	}

	return &Maze{
		Width:  cols,
		Height: rows,
		Grid:   grid,
	}, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.Height
}

// Columns returns the number of columns in the maze.
func (m *Maze) Columns() int {
	return m.Width
}

// InBound reports whether (row, col) addresses a cell of the maze.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// Cell returns the cell at (row, col), or nil when the position is out of bounds.
func (m *Maze) Cell(row, col int) *Cell {
	if !m.InBound(row, col) {
		return nil
	}
	return m.Grid[row][col]
}

// WallOnSide reports whether the cell at (row, col) has a wall on the given side.
// Positions outside the maze are reported as walled.
func (m *Maze) WallOnSide(row, col int, side Side) bool {
	c := m.Cell(row, col)
	if c == nil {
		return true
	}
	return c.HasWall(side)
}

// MarkOnPath sets the on-path marker of the cell at (row, col).
func (m *Maze) MarkOnPath(row, col int, onPath bool) {
	if c := m.Cell(row, col); c != nil {
		c.OnPath = onPath
	}
}

// ClearPath resets the on-path marker of every cell.
func (m *Maze) ClearPath() {
	for _, row := range m.Grid {
		for _, c := range row {
			c.OnPath = false
		}
	}
}

// PathCells returns the positions of all cells marked on-path in row-major order.
func (m *Maze) PathCells() []CellPosition {
	var cells []CellPosition
	for row := range m.Grid {
		for col, c := range m.Grid[row] {
			if c.OnPath {
				cells = append(cells, CellPosition{Row: row, Col: col})
			}
		}
	}
	return cells
}

// SetWall sets the wall on the given side of (row, col) and mirrors it on the
// neighbor sharing that side, when the neighbor exists.
func (m *Maze) SetWall(row, col int, side Side, hasWall bool) error {
	if !m.InBound(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	m.Grid[row][col].setWall(side, hasWall)
	dr, dc := side.Delta()
	if m.InBound(row+dr, col+dc) {
		m.Grid[row+dr][col+dc].setWall(side.Opposite(), hasWall)
	}
	return nil
}

// Validate checks that every pair of neighboring cells agrees on their shared wall.
func (m *Maze) Validate() error {
	if m.Height <= 0 || m.Width <= 0 || len(m.Grid) != m.Height {
		return ErrInvalidDimensions
	}
	for row := range m.Grid {
		if len(m.Grid[row]) != m.Width {
			return fmt.Errorf("%w: row %d", ErrNonRectangular, row)
		}
	}
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			// South and East cover every shared wall exactly once.
			for _, side := range []Side{South, East} {
				dr, dc := side.Delta()
				if !m.InBound(row+dr, col+dc) {
					continue
				}
				if m.Grid[row][col].HasWall(side) != m.Grid[row+dr][col+dc].HasWall(side.Opposite()) {
					return fmt.Errorf("%w: (%d,%d) %s", ErrInconsistentWalls, row, col, side)
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	grid := make([][]*Cell, len(m.Grid))
	for row := range m.Grid {
		grid[row] = make([]*Cell, len(m.Grid[row]))
		for col, c := range m.Grid[row] {
			cp := *c
			grid[row][col] = &cp
		}
	}
	return &Maze{Width: m.Width, Height: m.Height, Grid: grid}
}

// randomCellPosition generates a random position within the maze.
func (m *Maze) randomCellPosition(rng *rand.Rand) CellPosition {
	return CellPosition{Row: rng.Intn(m.Height), Col: rng.Intn(m.Width)}
}

// randomUnvisitedCellPosition selects a random position that is not yet part of the tree.
func (m *Maze) randomUnvisitedCellPosition(rng *rand.Rand, inTree [][]bool) CellPosition {
	for {
		pos := m.randomCellPosition(rng)
		if !inTree[pos.Row][pos.Col] {
			return pos
		}
	}
}

// neighbors finds all in-bound moves from a given cell position, in Sides order.
func (m *Maze) neighbors(pos CellPosition) []Move {
	result := make([]Move, 0, len(Sides))
	for _, side := range Sides {
		dr, dc := side.Delta()
		neighbor := CellPosition{Row: pos.Row + dr, Col: pos.Col + dc}
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: side})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *Maze) openWall(move Move) {
	m.Grid[move.From.Row][move.From.Col].setWall(move.Direction, false)
	m.Grid[move.To.Row][move.To.Col].setWall(move.Direction.Opposite(), false)
}

// generateMaze carves passages with Wilson's algorithm: random walks from cells
// outside the tree until they hit it, then the loop-erased walk is carved.
func (m *Maze) generateMaze(rng *rand.Rand) {
	inTree := make([][]bool, m.Height)
	for i := range inTree {
		inTree[i] = make([]bool, m.Width)
	}
	start := m.randomCellPosition(rng)
	inTree[start.Row][start.Col] = true
	remaining := m.Width*m.Height - 1

	for remaining > 0 {
		walkStart := m.randomUnvisitedCellPosition(rng, inTree)

		// Overwriting the exit of a revisited cell erases the loop.
		exits := make(map[CellPosition]Move)
		for cell := walkStart; !inTree[cell.Row][cell.Col]; {
			neighbors := m.neighbors(cell)
			move := neighbors[rng.Intn(len(neighbors))]
			exits[cell] = move
			cell = move.To
		}

		for cell := walkStart; !inTree[cell.Row][cell.Col]; {
			move := exits[cell]
			m.openWall(move)
			inTree[cell.Row][cell.Col] = true
			remaining--
			cell = move.To
		}
	}
}

// String provides a textual representation of the maze. Cells on the most
// recently marked path are drawn with a '*'.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.Width; col++ {
		if m.Grid[0][col].NorthWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.Height; row++ {
		// Cell rows
		if m.Grid[row][0].WestWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if cell.OnPath {
				output.WriteString(" * ")
			} else {
				output.WriteString("   ")
			}

			// Add east wall or space
			if cell.EastWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
