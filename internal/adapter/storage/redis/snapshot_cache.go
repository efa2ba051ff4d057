package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SnapshotCache implements ports.SnapshotCache using Redis. It holds the
// latest state blob under a single key so dashboards and the companion app
// can read without touching the engine.
type SnapshotCache struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

// NewSnapshotCache creates a new Redis-backed snapshot cache.
func NewSnapshotCache(client *goredis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		key:    "zippay:state",
		ttl:    ttl,
	}
}

// Get retrieves the cached state blob.
// Returns nil, nil if no snapshot is cached.
func (c *SnapshotCache) Get(ctx context.Context) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
	}
	return val, nil
}

// Set stores the state blob with TTL.
func (c *SnapshotCache) Set(ctx context.Context, value []byte) error {
	if err := c.client.Set(ctx, c.key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}
