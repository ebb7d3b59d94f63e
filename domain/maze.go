package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrInvalidMaze  = errors.New("invalid maze")
)

// MazeRecord is a stored maze together with its owner.
type MazeRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Maze      *maze.Maze
	CreatedAt time.Time
}
