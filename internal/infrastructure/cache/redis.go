// Package cache provides output.ResultsCache implementations.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"meetmatch/internal/ports/output"
)

const keyPrefix = "meetmatch:results:"

var _ output.ResultsCache = (*RedisCache)(nil)

// RedisCache keeps every rendering of an event's results in one hash, so a
// single DEL drops them all.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Connect parses url, pings the server and returns the client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func key(eventID string) string {
	return keyPrefix + eventID
}

func (c *RedisCache) Get(ctx context.Context, eventID, variant string) ([]byte, bool, error) {
	data, err := c.client.HGet(ctx, key(eventID), variant).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis hget: %w", err)
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, eventID, variant string, data []byte) error {
	k := key(eventID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, k, variant, data)
	pipe.Expire(ctx, k, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, eventID string) error {
	if err := c.client.Del(ctx, key(eventID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
