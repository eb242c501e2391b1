//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/client"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestClient(t *testing.T, db DBLike, id string, plan client.PlanTier) string {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, name, email, plan) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO UPDATE SET plan = EXCLUDED.plan",
		id, "Client "+id, id+"@example.com", string(plan))
	require.NoError(t, err)
	return id
}

func SetRoomAvailable(t *testing.T, db DBLike, roomID string, available bool) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE rooms SET available = $2 WHERE id = $1", roomID, available)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "room %s not found", roomID)
}

func CountReservations(t *testing.T, db DBLike, roomID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB clears reservations and restores the seeded directory.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE reservations"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "UPDATE rooms SET available = TRUE"); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
		UPDATE clients SET plan = CASE id
		    WHEN 'carlos.silva' THEN 'full'
		    WHEN 'maria' THEN 'basic'
		    ELSE 'fiscal'
		END`)
	return err
}
