package sqlitestore

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Store is the embedded backend. It implements the unit of work and both
// read stores over one *sql.DB.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		sqlTx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &sqliteTx{q: sqlTx})
		if err == nil {
			if err = sqlTx.Commit(); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !isBusy(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := time.Duration(1<<attempt) * base
		slog.Warn("retrying busy transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return errMaxRetriesExceeded
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{q: s.db}
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	text := err.Error()
	return strings.Contains(text, "database is locked") || strings.Contains(text, "SQLITE_BUSY")
}

type sqliteTx struct {
	q queryer
}

func (t *sqliteTx) Reservations() shared.ReservationRepository {
	return &reservationRepository{q: t.q}
}
