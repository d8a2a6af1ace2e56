package cache

import (
	"context"
	"time"

	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// Connect opens a Redis client and checks it answers. The caller owns Close.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "failed to reach redis at %s", cfg.Addr)
	}
	return client, nil
}
