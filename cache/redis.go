package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps entries as JSON strings in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. ttl ≤ 0 stores entries without expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get implements Store.
func (rs *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := rs.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}

	var e Entry
	if err = json.Unmarshal(raw, &e); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return e, true, nil
}

// Set implements Store.
func (rs *RedisStore) Set(ctx context.Context, key string, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	ttl := rs.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err = rs.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity.
func (rs *RedisStore) Ping(ctx context.Context) error {
	if err := rs.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
