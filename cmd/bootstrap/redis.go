package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter returns nil when REDIS_ADDR is unset or the server does not
// answer, which turns rate limiting off.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) middleware.Limiter {
	if !cfg.Redis.Enabled() {
		logger.Info("rate limiting disabled", "reason", "REDIS_ADDR not set")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("rate limiting disabled", "reason", "redis unreachable", "error", err.Error())
		_ = rdb.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	logger.Info("rate limiting enabled", "capacity", cfg.RateLimit.Capacity, "refill_per_sec", cfg.RateLimit.RefillPerSec)
	return middleware.NewRedisLimiter(rdb, cfg.RateLimit)
}
