package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/google/uuid"
)

// MazeService manages stored mazes and answers shortest-path queries on them.
type MazeService interface {
	// Create validates and stores a maze owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, m *maze.Maze) (*dmn.MazeRecord, error)

	// Generate stores a new random perfect maze. A nil seed picks a random one.
	Generate(ctx context.Context, ownerID uuid.UUID, rows, cols int, seed *int64) (*dmn.MazeRecord, error)

	// ByID retrieves a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Solve runs q against the stored maze.
	Solve(ctx context.Context, id uuid.UUID, q dmn.Query) (*dmn.Solution, error)
}
