package bootstrap

import (
	"context"

	"kennelbook/internal/infra/cache"
	"kennelbook/internal/pkg/config"
	"kennelbook/internal/usecase/commands"
	"kennelbook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewSlotCache,
			fx.As(new(queries.SlotCache)),
			fx.As(new(commands.SlotCacheInvalidator)),
		),
	),
)

// NewSlotCache wires the Redis-backed slot cache, or a noop when no Redis
// address is configured.
func NewSlotCache(lc fx.Lifecycle, cfg config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		return cache.NewNoopSlotCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewSlotCache(client, cfg.Redis)
}
