package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
	"github.com/printdesk/printdesk/internal/reports"
)

// NewStore builds the collection store selected by config. The returned
// cleanup releases driver resources and is safe to call once.
func NewStore(ctx context.Context, cfg *Config, redisClient *redis.Client) (kvstore.Store, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		return kvstore.NewMemoryStore(), func() {}, nil
	case "redis":
		if redisClient == nil {
			return nil, nil, fmt.Errorf("store driver redis requires a redis client")
		}
		return kvstore.NewRedisStore(redisClient), func() {}, nil
	case "postgres":
		pool, err := kvstore.NewPostgresPool(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := kvstore.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewReportCache builds the versioned report cache. With the memory
// driver, redis is an optional accelerator: when it cannot be reached
// the cache is nil and reports recompute directly on every read. The
// redis and postgres drivers already depend on their backends being up,
// so they always get a cache over the shared client.
func NewReportCache(ctx context.Context, cfg *Config, redisClient *redis.Client) *reports.Cache {
	if redisClient == nil {
		return nil
	}
	if cfg.StoreDriver == "memory" {
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil
		}
	}
	return reports.NewCache(redisClient, cfg.ReportCacheTTL)
}
