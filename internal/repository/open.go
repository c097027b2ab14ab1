package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/xiaot623/gogo/concierge/internal/config"
)

// Open creates the Store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.DatabaseURL)
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store, err := NewRedisStore(ctx, rdb, cfg.RedisPrefix)
		if err != nil {
			rdb.Close()
			return nil, err
		}
		return store, nil
	case config.StoreMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
