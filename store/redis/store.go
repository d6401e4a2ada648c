// Package redis provides a Redis-backed replay guard via Grove KV,
// for receivers that run more than one process behind a load balancer.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xraph/grove/kv"
	"github.com/xraph/grove/kv/drivers/redisdriver"

	hookstore "github.com/hookproof/hookproof/store"
)

// keyPrefix namespaces replay-guard keys in a shared Redis.
const keyPrefix = "hookproof:seen:"

// compile-time interface check.
var _ hookstore.Store = (*Store)(nil)

// Store implements store.Store using Redis via Grove KV.
type Store struct {
	kv  *kv.Store
	rdb goredis.UniversalClient
}

// New creates a new Redis store backed by Grove KV.
func New(store *kv.Store) *Store {
	return &Store{
		kv:  store,
		rdb: redisdriver.UnwrapClient(store),
	}
}

// MarkSeen records key for the window using SET NX with a TTL, which makes
// the check-and-record step atomic across processes.
func (s *Store) MarkSeen(ctx context.Context, key string, window time.Duration) (bool, error) {
	set, err := s.rdb.SetNX(ctx, keyPrefix+key, "1", window).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// Close closes the KV store.
func (s *Store) Close() error {
	return s.kv.Close()
}
