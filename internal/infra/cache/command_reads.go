package cache

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/usecase/shared"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// UnitOfWork keeps room and client lookups made outside transactions in an
// expiring LRU. Reads inside Within always go to the store.
type UnitOfWork struct {
	inner  shared.UnitOfWork
	reads  *cachedReads
	logger *slog.Logger
}

func NewUnitOfWork(inner shared.UnitOfWork, size int, ttl time.Duration, logger *slog.Logger) *UnitOfWork {
	if size <= 0 {
		size = 1
	}
	return &UnitOfWork{
		inner: inner,
		reads: &cachedReads{
			inner:   inner.CommandReads(),
			rooms:   expirable.NewLRU[string, *shared.RoomSnapshot](size, nil, ttl),
			clients: expirable.NewLRU[string, *shared.ClientSnapshot](size, nil, ttl),
			logger:  logger,
		},
		logger: logger,
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.inner.Within(ctx, fn)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.reads
}

// Purge drops every cached entry.
func (u *UnitOfWork) Purge() {
	u.reads.rooms.Purge()
	u.reads.clients.Purge()
}

type cachedReads struct {
	inner   shared.CommandReads
	rooms   *expirable.LRU[string, *shared.RoomSnapshot]
	clients *expirable.LRU[string, *shared.ClientSnapshot]
	logger  *slog.Logger
}

func (c *cachedReads) RoomByID(ctx context.Context, id string) (*shared.RoomSnapshot, error) {
	if rm, ok := c.rooms.Get(id); ok {
		return rm, nil
	}
	c.logger.Debug("cache miss", "kind", "room", "id", id)

	rm, err := c.inner.RoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.rooms.Add(id, rm)
	return rm, nil
}

func (c *cachedReads) ClientByID(ctx context.Context, id string) (*shared.ClientSnapshot, error) {
	if cl, ok := c.clients.Get(id); ok {
		return cl, nil
	}
	c.logger.Debug("cache miss", "kind", "client", "id", id)

	cl, err := c.inner.ClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.clients.Add(id, cl)
	return cl, nil
}
