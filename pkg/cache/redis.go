package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	derrors "github.com/matzehuels/disksort/pkg/errors"
)

// RedisCache stores entries in redis. Expiry is delegated to redis TTLs.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache connects to the redis instance at url
// (e.g. "redis://localhost:6379/0") and verifies it with PING, retrying
// with DefaultBackoff.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, derrors.Wrap(derrors.ErrCodeInvalidConfig, err, "parse redis url")
	}
	client := redis.NewClient(opts)

	err = RetryWithBackoff(ctx, DefaultBackoff, func() error {
		return Retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, derrors.Wrap(derrors.ErrCodeNetwork, err, "ping redis at %s", opts.Addr)
	}
	return NewRedisCacheFromClient(client), nil
}

// NewRedisCacheFromClient wraps an existing client.
// The cache takes ownership and closes the client on Close.
func NewRedisCacheFromClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get retrieves a value from redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, derrors.Wrap(derrors.ErrCodeNetwork, err, "redis get")
	}
	return data, true, nil
}

// Set stores a value in redis with the given ttl (zero means no expiry).
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return derrors.Wrap(derrors.ErrCodeNetwork, err, "redis set")
	}
	return nil
}

// Delete removes a value from redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return derrors.Wrap(derrors.ErrCodeNetwork, err, "redis del")
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
