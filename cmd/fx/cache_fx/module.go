package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"skillswap/internal/config"
	"skillswap/pkg/cache"
)

var Module = fx.Provide(provideCache)

func provideCache(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (cache.Store, error) {
	if cfg.CacheType != config.CacheRedis {
		log.Info("using in-memory cache")
		return cache.NewMemory(), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, err := cache.ConnectRedis(ctx, cfg.RedisAddr(), cfg.CacheRedisPassword, cfg.CacheRedisDB)
	if err != nil {
		return nil, err
	}
	log.Info("using redis cache", zap.String("addr", cfg.RedisAddr()))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedis(client, "skillswap:"), nil
}
