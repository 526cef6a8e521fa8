package cache

import (
	"context"
	"time"
)

// Cache is a best-effort TTL store for serialized values. Implementations
// never guarantee freshness across processes; a miss after a concurrent set
// is acceptable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
