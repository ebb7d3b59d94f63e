package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

type memMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	reads   int
	mu        sync.Mutex
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *memMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

type memCache struct {
	solutions map[string]*dmn.Solution
	locks     int
	unlocks   int
	failGet   bool
	mu        sync.Mutex
}

func newMemCache() *memCache {
	return &memCache{solutions: make(map[string]*dmn.Solution)}
}

func (c *memCache) Get(_ context.Context, mazeID uuid.UUID, key string) (*dmn.Solution, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("cache unavailable")
	}
	s, ok := c.solutions[mazeID.String()+key]
	return s, ok, nil
}

func (c *memCache) Set(_ context.Context, mazeID uuid.UUID, key string, s *dmn.Solution) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.solutions[mazeID.String()+key] = s
	return nil
}

func (c *memCache) Lock(_ context.Context, _ uuid.UUID, _ string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locks++
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unlocks++
	}, nil
}

type memUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*dmn.User)}
}

func (r *memUserRepo) Save(user *dmn.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type stubTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	s.claims, s.exp = claims, expTime
	return "token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}
