package chatquota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyTTL outlives the longest month so a key always expires after its month ends.
const keyTTL = 32 * 24 * time.Hour

// Store keeps monthly usage counters in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func usageKey(clientID, month string) string {
	return fmt.Sprintf("chat:quota:%s:%s", clientID, month)
}

// Incr bumps the counter for clientID in month and returns the new count.
func (s *Store) Incr(ctx context.Context, clientID, month string) (int64, error) {
	key := usageKey(clientID, month)
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("chatquota: incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

// Used returns the counter for clientID in month, zero when absent.
func (s *Store) Used(ctx context.Context, clientID, month string) (int64, error) {
	n, err := s.rdb.Get(ctx, usageKey(clientID, month)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("chatquota: get: %w", err)
	}
	return n, nil
}
