package maze

import (
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	mz "github.com/beka-birhanu/vinom-solver/maze"
)

// WallsDTO lists the walls of one cell.
type WallsDTO struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// CreateMazeRequest either carries the cells of a maze or asks for a
// generated one of the given size.
type CreateMazeRequest struct {
	Cells [][]WallsDTO `json:"cells"`
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Seed  *int64       `json:"seed"`
}

// PositionDTO is a cell coordinate. Pointer fields let a zero index pass the
// required check.
type PositionDTO struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// SolveRequest asks for the shortest path from Start to End. Without Power
// the path respects every wall.
type SolveRequest struct {
	Start *PositionDTO `json:"start" binding:"required"`
	End   *PositionDTO `json:"end" binding:"required"`
	Power *int         `json:"power"`
}

// PositionResponse is a cell coordinate in a response.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveResponse is the answer to a SolveRequest. Steps is only meaningful
// when Found is true.
type SolveResponse struct {
	Found     bool               `json:"found"`
	Steps     int                `json:"steps"`
	Path      []PositionResponse `json:"path"`
	Reachable map[int]int        `json:"reachable"`
	Rendered  string             `json:"rendered"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID       string       `json:"id"`
	OwnerID  string       `json:"ownerID"`
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	Cells    [][]WallsDTO `json:"cells"`
	Rendered string       `json:"rendered"`
}

func (r *CreateMazeRequest) generated() bool {
	return len(r.Cells) == 0
}

func (r *CreateMazeRequest) toMaze() (*mz.Maze, error) {
	cells := make([][]mz.Cell, len(r.Cells))
	for row, dtos := range r.Cells {
		cells[row] = make([]mz.Cell, len(dtos))
		for col, w := range dtos {
			cells[row][col] = mz.Cell{NorthWall: w.North, SouthWall: w.South, EastWall: w.East, WestWall: w.West}
		}
	}
	return mz.FromCells(cells)
}

func (r *SolveRequest) toQuery() dmn.Query {
	return dmn.Query{
		Start: mz.CellPosition{Row: *r.Start.Row, Col: *r.Start.Col},
		End:   mz.CellPosition{Row: *r.End.Row, Col: *r.End.Col},
		Power: r.Power,
	}
}

func newSolveResponse(s *dmn.Solution) *SolveResponse {
	path := make([]PositionResponse, len(s.Path))
	for i, p := range s.Path {
		path[i] = PositionResponse{Row: p.Row, Col: p.Col}
	}
	return &SolveResponse{
		Found:     s.Found,
		Steps:     s.Steps,
		Path:      path,
		Reachable: s.Reachable,
		Rendered:  s.Rendered,
	}
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	m := r.Maze
	cells := make([][]WallsDTO, m.Rows())
	for row := range cells {
		cells[row] = make([]WallsDTO, m.Columns())
		for col := range cells[row] {
			c := m.Grid[row][col]
			cells[row][col] = WallsDTO{North: c.NorthWall, South: c.SouthWall, East: c.EastWall, West: c.WestWall}
		}
	}
	return &MazeResponse{
		ID:       r.ID.String(),
		OwnerID:  r.OwnerID.String(),
		Rows:     m.Rows(),
		Cols:     m.Columns(),
		Cells:    cells,
		Rendered: m.String(),
	}
}
