package bootstrap

import (
	"context"
	"log/slog"

	"pms-calendar/internal/infra/cache"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewPriceRangeCache,
	),
)

// NewPriceRangeCache falls back to an always-miss cache when no Redis address is set.
func NewPriceRangeCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.PriceRangeCache, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("price cache disabled")
		return cache.NoopPriceCache{}, nil
	}

	client, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("price cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.PriceTTL)
	return cache.NewRedisPriceCache(client, cfg.Redis.PriceTTL), nil
}
