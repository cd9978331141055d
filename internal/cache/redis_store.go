package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/newsverify/api-backend/internal/classifier"
)

// RedisStore keeps predictions as JSON strings in Redis.
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to addr and pings it once.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisStore{rdb: rdb}, nil
}

// Get returns the cached probabilities for key. A missing key is (_, false, nil).
func (s *RedisStore) Get(ctx context.Context, key string) (classifier.Probabilities, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return classifier.Probabilities{}, false, nil
	}
	if err != nil {
		return classifier.Probabilities{}, false, fmt.Errorf("redis get: %w", err)
	}

	var p classifier.Probabilities
	if err := json.Unmarshal(raw, &p); err != nil {
		return classifier.Probabilities{}, false, fmt.Errorf("decode cached prediction: %w", err)
	}
	return p, true, nil
}

// Set stores p under key. A non-positive ttl keeps the entry forever.
func (s *RedisStore) Set(ctx context.Context, key string, p classifier.Probabilities, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
