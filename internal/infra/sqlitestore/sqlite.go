package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"coworking-booking/internal/infra"

	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed schema.sql
var schemaSQL string

const overlapMessage = "reservation overlap"

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open returns a single-connection handle. One connection means one writer,
// which serializes the check-then-insert in Within, and keeps an in-memory
// database alive for the life of the handle.
func Open(path string) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// Migrate creates the schema and seeds the demo directory. Safe to rerun.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply SQLite schema: %w", err)
	}
	return nil
}

// classifyErr maps SQLite constraint messages to repository error kinds.
func classifyErr(msg string, err error) error {
	text := err.Error()
	switch {
	case strings.Contains(text, overlapMessage):
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	case strings.Contains(text, "UNIQUE constraint failed"):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case strings.Contains(text, "FOREIGN KEY constraint failed"):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
