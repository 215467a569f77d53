package store

import (
	"context"
	"fmt"

	"oneearth/config"
	"oneearth/utils"

	"github.com/redis/go-redis/v9"
)

// Open builds the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nil

	case config.DriverPostgres:
		return OpenPostgres(cfg.DatabaseURL)

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.KeyPrefix), nil

	case config.DriverR2:
		client, err := utils.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		return NewR2Store(client, cfg.R2.Bucket, cfg.KeyPrefix), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
