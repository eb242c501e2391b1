package components

import (
	"database/sql"
	"log/slog"

	"coworking-booking/internal/infra/cache"
	"coworking-booking/internal/infra/readstore"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/infra/sqlitestore"
	"coworking-booking/internal/infra/uow"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Handles holds the open connection for the configured driver. Exactly one
// field is set.
type Handles struct {
	Pool   *pgxpool.Pool
	SQLite *sql.DB
}

type Stores struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Reservations queries.ReservationReadStore
	Rooms        queries.RoomReadStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// NewStores picks the backend matching the open handle and puts the
// directory cache in front of the unit of work's command reads.
func NewStores(h Handles, cfg config.Config, logger *slog.Logger) Stores {
	var s Stores
	if h.SQLite != nil {
		s = newSQLiteStores(h.SQLite)
	} else {
		s = newPostgresStores(h.Pool)
	}
	s.UnitOfWork = cache.NewUnitOfWork(s.UnitOfWork, cfg.Cache.Size, cfg.Cache.TTL, logger)
	return s
}

func newPostgresStores(pool *pgxpool.Pool) Stores {
	q := sqlc.New()
	return Stores{
		UnitOfWork:   uow.NewPostgresUoW(pool, q),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Rooms:        readstore.NewRoomReadStore(q, pool),
	}
}

func newSQLiteStores(db *sql.DB) Stores {
	return Stores{
		UnitOfWork:   sqlitestore.NewStore(db),
		Reservations: sqlitestore.NewReservationReadStore(db),
		Rooms:        sqlitestore.NewRoomReadStore(db),
	}
}
