package database

import (
	"context"
	"fmt"
	"time"

	appconfig "dubiqo_quotes/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis client and checks the connection.
func NewRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
