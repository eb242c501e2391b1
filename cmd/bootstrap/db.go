package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/cmd/bootstrap/components"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/infra/sqlitestore"
	"coworking-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (components.Handles, error) {
	var (
		h       components.Handles
		cleanup func()
		err     error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		h.SQLite, cleanup, err = sqlitestore.Open(cfg.DB.SQLitePath)
		if err != nil {
			return components.Handles{}, err
		}
		// the embedded schema is idempotent, so it is always applied
		if err = sqlitestore.Migrate(context.Background(), h.SQLite); err != nil {
			cleanup()
			return components.Handles{}, err
		}
		logger.Info("SQLite database ready", "path", cfg.DB.SQLitePath)
	default:
		h.Pool, cleanup, err = db.Connect(cfg.DB)
		if err != nil {
			return components.Handles{}, err
		}
		if cfg.DB.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err = db.Migrate(ctx, h.Pool); err != nil {
				cleanup()
				return components.Handles{}, err
			}
			logger.Info("PostgreSQL migrations applied")
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return h, nil
}
