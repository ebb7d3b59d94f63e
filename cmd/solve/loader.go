package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-solver/maze"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCellToken = errors.New("invalid cell token")

// mazeFile is the on-disk form of a maze. Each row is a whitespace separated
// list of tokens, one per cell, naming the walled sides with the letters N, S,
// E and W. A lone "-" is a cell without walls.
type mazeFile struct {
	Rows []string `yaml:"rows"`
}

// loadMaze reads and validates the maze stored at path.
func loadMaze(path string) (*maze.Maze, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := parseMaze(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parseMaze(raw []byte) (*maze.Maze, error) {
	var f mazeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	cells := make([][]maze.Cell, len(f.Rows))
	for row, line := range f.Rows {
		for col, token := range strings.Fields(line) {
			c, err := parseCell(token)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			cells[row] = append(cells[row], c)
		}
	}

	m, err := maze.FromCells(cells)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseCell(token string) (maze.Cell, error) {
	var c maze.Cell
	if token == "-" {
		return c, nil
	}
	for _, r := range strings.ToUpper(token) {
		switch r {
		case 'N':
			c.NorthWall = true
		case 'S':
			c.SouthWall = true
		case 'E':
			c.EastWall = true
		case 'W':
			c.WestWall = true
		default:
			return c, fmt.Errorf("%w: %q", ErrInvalidCellToken, token)
		}
	}
	return c, nil
}

// parsePosition parses a "row,col" pair.
func parsePosition(s string) (maze.CellPosition, error) {
	var p maze.CellPosition
	if _, err := fmt.Sscanf(s, "%d,%d", &p.Row, &p.Col); err != nil {
		return p, fmt.Errorf("position %q: want row,col", s)
	}
	return p, nil
}

// parseSize parses a "rowsxcols" pair.
func parseSize(s string) (int, int, error) {
	var rows, cols int
	if _, err := fmt.Sscanf(s, "%dx%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("size %q: want rowsxcols", s)
	}
	return rows, cols, nil
}
