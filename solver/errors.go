package solver

import "errors"

var (
	// ErrUninitializedEngine is returned when a query runs before Initialize.
	ErrUninitializedEngine = errors.New("solver: engine is not initialized with a maze")
	// ErrInvalidCoordinate is returned when a start or end cell lies outside the maze.
	ErrInvalidCoordinate = errors.New("solver: invalid start/end coordinate")
	// ErrInvalidGrid is returned by Initialize for a nil or empty grid.
	ErrInvalidGrid = errors.New("solver: grid must have at least one row and one column")
	// ErrNegativePower is returned when a power search is given fewer than zero wall breaks.
	ErrNegativePower = errors.New("solver: power cannot be negative")
)
