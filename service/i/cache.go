package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

// SolutionCache keeps computed solutions per maze and query.
type SolutionCache interface {
	// Get returns the cached solution and true, or false on a miss.
	Get(ctx context.Context, mazeID uuid.UUID, queryKey string) (*dmn.Solution, bool, error)

	// Set stores a solution.
	Set(ctx context.Context, mazeID uuid.UUID, queryKey string, s *dmn.Solution) error

	// Lock acquires a lock shared by every replica for the given maze and query.
	// The returned function releases it.
	Lock(ctx context.Context, mazeID uuid.UUID, queryKey string) (func(), error)
}
