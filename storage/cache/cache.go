// Package cache is a JSON-over-redis cache that degrades to a no-op when redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/saraquenta/Sistema-EAME/core"
)

var (
	ErrNotAvailable = errors.New("cache not available")
	ErrNotFound     = errors.New("cache not found")
)

// Helper namespaces its keys under prefix. A nil client disables it.
type Helper struct {
	client *redis.Client
	prefix string
}

func NewHelper(client *redis.Client, prefix string) *Helper {
	return &Helper{client: client, prefix: prefix}
}

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(conf *core.Config) *redis.Client {
	if conf.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
}

func (h *Helper) Key(key string) string {
	return h.prefix + key
}

// Get unmarshals the cached value of key into dest.
func (h *Helper) Get(ctx context.Context, key string, dest interface{}) error {
	if h.client == nil {
		return ErrNotAvailable
	}
	data, err := h.client.Get(ctx, h.Key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return errors.Wrap(err, "cache.Get")
	}
	if err = json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, "cache.Get: unmarshal")
	}
	return nil
}

func (h *Helper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if h.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "cache.Set: marshal")
	}
	return errors.Wrap(h.client.Set(ctx, h.Key(key), data, ttl).Err(), "cache.Set")
}

func (h *Helper) Delete(ctx context.Context, keys ...string) error {
	if h.client == nil || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = h.Key(key)
	}
	return errors.Wrap(h.client.Del(ctx, full...).Err(), "cache.Delete")
}

// Ping reports whether redis is reachable.
func (h *Helper) Ping(ctx context.Context) error {
	if h.client == nil {
		return ErrNotAvailable
	}
	return errors.Wrap(h.client.Ping(ctx).Err(), "cache.Ping")
}
