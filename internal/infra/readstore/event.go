package readstore

import (
	"context"
	"time"

	"event-booking/internal/domain/event"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getEventByIDQuery = `
SELECT id, title, location, age_range, currency, base_price_cents
FROM events
WHERE id = $1
`

// Schedules come back in catalog order: position is the order the admin
// arranged them in, and the resolver's tie-breaks depend on it.
const getSchedulesByEventIDQuery = `
SELECT id, event_id, start_date, end_date,
       total_seats, available_seats, reserved_seats, sold_seats,
       unlimited_seats, is_override, price_cents
FROM schedules
WHERE event_id = $1
ORDER BY position, id
`

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) queries.EventReadStore {
	return &EventReadStore{pool: pool}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var (
		eventID        uuid.UUID
		title          string
		location       string
		ageRange       string
		currency       string
		basePriceCents int64
	)
	err := r.pool.QueryRow(ctx, getEventByIDQuery, id).
		Scan(&eventID, &title, &location, &ageRange, &currency, &basePriceCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	schedules, err := r.findSchedules(ctx, eventID)
	if err != nil {
		return nil, err
	}

	ev, err := event.NewEvent(eventID, title, location, ageRange, currency, basePriceCents, schedules)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct event", err, infra.KindBadResponse)
	}
	return ev, nil
}

func (r *EventReadStore) findSchedules(ctx context.Context, eventID uuid.UUID) ([]event.Schedule, error) {
	rows, err := r.pool.Query(ctx, getSchedulesByEventIDQuery, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query schedules", err)
	}
	defer rows.Close()

	var schedules []event.Schedule
	for rows.Next() {
		var (
			id, evID                 uuid.UUID
			startDate, endDate       time.Time
			total, avail, resv, sold int
			unlimited, isOverride    bool
			priceCents               pgtype.Int8
		)
		if err := rows.Scan(
			&id, &evID, &startDate, &endDate,
			&total, &avail, &resv, &sold,
			&unlimited, &isOverride, &priceCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule row", err)
		}

		sched, err := event.NewSchedule(
			id, evID, startDate, endDate,
			total, avail, resv, sold,
			unlimited, isOverride, pgconv.Int64PtrFromPgtype(priceCents),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to reconstruct schedule", err, infra.KindBadResponse)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedule rows", err)
	}

	return schedules, nil
}
