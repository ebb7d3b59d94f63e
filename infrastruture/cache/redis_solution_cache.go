// Package cache stores computed maze solutions in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "solver"

	solutionKeyFmt = "%s:solution:%s:%s"
	lockKeySuffix  = ":lock"

	lockExpiry = 10 * time.Second
)

// RedisSolutionCache keeps solutions in Redis with a TTL and hands out redsync
// mutexes so replicas do not compute the same query at once.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) *RedisSolutionCache {
	c := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c
}

// Get returns the cached solution for the query on the maze, if any.
func (c *RedisSolutionCache) Get(ctx context.Context, mazeID uuid.UUID, queryKey string) (*dmn.Solution, bool, error) {
	raw, err := c.client.Get(ctx, c.key(mazeID, queryKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sol dmn.Solution
	if err := json.Unmarshal(raw, &sol); err != nil {
		return nil, false, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &sol, true, nil
}

// Set stores the solution for the query on the maze until the TTL expires.
func (c *RedisSolutionCache) Set(ctx context.Context, mazeID uuid.UUID, queryKey string, s *dmn.Solution) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding solution: %w", err)
	}
	return c.client.Set(ctx, c.key(mazeID, queryKey), raw, c.ttl).Err()
}

// Lock acquires the distributed mutex of the query on the maze.
func (c *RedisSolutionCache) Lock(ctx context.Context, mazeID uuid.UUID, queryKey string) (func(), error) {
	mutex := c.locker.NewMutex(c.key(mazeID, queryKey)+lockKeySuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisSolutionCache) key(mazeID uuid.UUID, queryKey string) string {
	return fmt.Sprintf(solutionKeyFmt, c.prefix, mazeID, queryKey)
}
