package bootstrap

import (
	"context"
	"log/slog"

	"library-backend/internal/infra/lease"
	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSweepLease,
	),
)

// NewSweepLease falls back to a lease that always grants when REDIS_ADDR is empty.
func NewSweepLease(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Lease, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR が未設定のため、スイープのリースを無効化します")
		return lease.NoopLease{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "failed to connect redis at %s", cfg.Redis.Addr)
	}
	logger.Info("Redis に接続しました", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lease.NewRedisLease(client), nil
}
