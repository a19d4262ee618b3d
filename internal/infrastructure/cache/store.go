package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/johnquangdev/transcript-archive/pkg/config"
)

// ErrClosed is returned by a store after Close
var ErrClosed = errors.New("cache store closed")

// Store is a string key-value store with per-key expiration
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// NewStore builds the store selected by CACHE_TYPE. It returns nil for "none".
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Cache.Type {
	case config.CacheNone:
		return nil, nil
	case config.CacheMemory:
		return NewMemoryStore(), nil
	case config.CacheRedis:
		client, err := NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
	}
}
