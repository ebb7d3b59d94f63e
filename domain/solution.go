package domain

import (
	"fmt"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// Query asks for the shortest path between two cells. A nil Power asks for a
// path that respects every wall.
type Query struct {
	Start maze.CellPosition
	End   maze.CellPosition
	Power *int
}

// Key identifies the query within one maze.
func (q Query) Key() string {
	mode := "plain"
	if q.Power != nil {
		mode = fmt.Sprintf("p%d", *q.Power)
	}
	return fmt.Sprintf("%d,%d->%d,%d:%s", q.Start.Row, q.Start.Col, q.End.Row, q.End.Col, mode)
}

// Solution is the outcome of one query against a maze.
type Solution struct {
	Found     bool                `json:"found"`
	Steps     int                 `json:"steps"`
	Path      []maze.CellPosition `json:"path"`      // on-path cells in row-major order
	Reachable map[int]int         `json:"reachable"` // step count -> number of cells at exactly that distance
	Rendered  string              `json:"rendered"`
}
