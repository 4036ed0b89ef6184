// Package fragment_cache stores rendered load-more responses in Redis.
package fragment_cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hqpr/simple-blog/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blog:load_more:"

var ErrCacheMiss = errors.New("fragment cache miss")

type RedisDriver struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDriverWithURL(url string, ttl time.Duration) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisDriver{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Get returns ErrCacheMiss when nothing is stored under key.
func (d *RedisDriver) Get(ctx context.Context, key string) (*domain.LoadMoreResponse, error) {
	raw, err := d.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var resp domain.LoadMoreResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (d *RedisDriver) Set(ctx context.Context, key string, resp *domain.LoadMoreResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return d.client.Set(ctx, keyPrefix+key, raw, d.ttl).Err()
}

// Purge drops every cached fragment. Used after posts change.
func (d *RedisDriver) Purge(ctx context.Context) error {
	iter := d.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := make([]string, 0, 100)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return d.client.Del(ctx, keys...).Err()
}
