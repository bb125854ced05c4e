//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ScheduleFixture mirrors one row of the schedules table. PriceCents nil
// means the schedule sells at the event's base price.
type ScheduleFixture struct {
	StartDate      time.Time
	EndDate        time.Time
	TotalSeats     int
	AvailableSeats int
	ReservedSeats  int
	SoldSeats      int
	UnlimitedSeats bool
	IsOverride     bool
	PriceCents     *int64
}

func CreateTestEvent(t *testing.T, db DBLike, title, currency string, basePriceCents int64) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO events (id, title, location, age_range, currency, base_price_cents) VALUES ($1, $2, $3, $4, $5, $6)",
		eventID, title, "Riverside Park", "All ages", currency, basePriceCents)
	require.NoError(t, err)

	return eventID
}

// CreateTestSchedules inserts schedules in slice order; position preserves
// that order so resolver tie-breaks behave the same as in production reads.
func CreateTestSchedules(t *testing.T, db DBLike, eventID uuid.UUID, fixtures []ScheduleFixture) []uuid.UUID {
	t.Helper()

	ctx := context.Background()
	ids := make([]uuid.UUID, len(fixtures))
	for i, f := range fixtures {
		ids[i] = uuid.New()
		_, err := db.Exec(ctx, `
			INSERT INTO schedules (id, event_id, start_date, end_date,
			                       total_seats, available_seats, reserved_seats, sold_seats,
			                       unlimited_seats, is_override, price_cents, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			ids[i], eventID, f.StartDate, f.EndDate,
			f.TotalSeats, f.AvailableSeats, f.ReservedSeats, f.SoldSeats,
			f.UnlimitedSeats, f.IsOverride, f.PriceCents, i)
		require.NoError(t, err)
	}

	return ids
}

// ResetDB truncates all booking tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE schedules, events CASCADE")
	return err
}
