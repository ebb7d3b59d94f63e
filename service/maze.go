package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
)

const defaultMaxDimension = 50

// MazeService stores mazes and answers shortest-path queries on them. Every
// query runs on its own copy of the maze with its own engine, so a MazeService
// is safe for concurrent use.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.SolutionCache
	logger       i.Logger
	maxDimension int
	now          func() time.Time
}

// MazeConfig holds the dependencies of a MazeService. Cache is optional.
type MazeConfig struct {
	Repo         i.MazeRepo
	Cache        i.SolutionCache
	Logger       i.Logger
	MaxDimension int
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *MazeConfig) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Logger == nil {
		return nil, fmt.Errorf("%w: maze service needs a repo and a logger", ErrNilDependency)
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		logger:       c.Logger,
		maxDimension: maxDimension,
		now:          time.Now,
	}, nil
}

// Create validates m and stores it as a new maze owned by ownerID.
func (s *MazeService) Create(ctx context.Context, ownerID uuid.UUID, m *maze.Maze) (*dmn.MazeRecord, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no maze given", dmn.ErrInvalidMaze)
	}
	if err := s.checkDimensions(m.Rows(), m.Columns()); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", dmn.ErrInvalidMaze, err)
	}

	m = m.Clone()
	m.ClearPath()
	return s.save(ctx, ownerID, m)
}

// Generate stores a new random perfect maze owned by ownerID.
func (s *MazeService) Generate(ctx context.Context, ownerID uuid.UUID, rows, cols int, seed *int64) (*dmn.MazeRecord, error) {
	if err := s.checkDimensions(rows, cols); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}
	m, err := maze.Generate(rows, cols, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dmn.ErrInvalidMaze, err)
	}
	return s.save(ctx, ownerID, m)
}

// ByID retrieves a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Solve answers q on the stored maze id. Solutions are served from the cache
// when possible; a miss is computed under a lock shared by all replicas so the
// same query is not solved twice concurrently.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, q dmn.Query) (*dmn.Solution, error) {
	if sol, ok := s.cached(ctx, id, q); ok {
		return sol, nil
	}

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, id, q.Key())
		if err != nil {
			s.logger.Warning(fmt.Sprintf("locking query %s on maze %s: %v", q.Key(), id, err))
		} else {
			defer unlock()
			if sol, ok := s.cached(ctx, id, q); ok {
				return sol, nil
			}
		}
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sol, err := Solve(record.Maze, q)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("solved query %s on maze %s: found=%t steps=%d", q.Key(), id, sol.Found, sol.Steps))

	if s.cache != nil {
		if err := s.cache.Set(ctx, id, q.Key(), sol); err != nil {
			s.logger.Warning(fmt.Sprintf("caching query %s on maze %s: %v", q.Key(), id, err))
		}
	}
	return sol, nil
}

// Solve runs q on a copy of m with a fresh engine and collects the result,
// the distance histogram and the rendered maze with the path marked.
func Solve(m *maze.Maze, q dmn.Query) (*dmn.Solution, error) {
	grid := m.Clone()
	engine := solver.New()
	if err := engine.Initialize(grid); err != nil {
		return nil, err
	}

	var (
		steps int
		found bool
		err   error
	)
	if q.Power == nil {
		steps, found, err = engine.PathSearch(q.Start.Row, q.Start.Col, q.End.Row, q.End.Col)
	} else {
		steps, found, err = engine.PowerPathSearch(q.Start.Row, q.Start.Col, q.End.Row, q.End.Col, *q.Power)
	}
	if err != nil {
		return nil, err
	}

	reachable, err := engine.Reachability()
	if err != nil {
		return nil, err
	}

	return &dmn.Solution{
		Found:     found,
		Steps:     steps,
		Path:      grid.PathCells(),
		Reachable: reachable,
		Rendered:  grid.String(),
	}, nil
}

func (s *MazeService) cached(ctx context.Context, id uuid.UUID, q dmn.Query) (*dmn.Solution, bool) {
	if s.cache == nil {
		return nil, false
	}
	sol, ok, err := s.cache.Get(ctx, id, q.Key())
	if err != nil {
		s.logger.Warning(fmt.Sprintf("reading cached query %s on maze %s: %v", q.Key(), id, err))
		return nil, false
	}
	return sol, ok
}

func (s *MazeService) checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > s.maxDimension || cols > s.maxDimension {
		return fmt.Errorf("%w: %dx%d is outside 1x1..%dx%d", dmn.ErrInvalidMaze, rows, cols, s.maxDimension, s.maxDimension)
	}
	return nil
}

func (s *MazeService) save(ctx context.Context, ownerID uuid.UUID, m *maze.Maze) (*dmn.MazeRecord, error) {
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Maze:      m,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("stored %dx%d maze %s for owner %s", m.Rows(), m.Columns(), record.ID, ownerID))
	return record, nil
}
