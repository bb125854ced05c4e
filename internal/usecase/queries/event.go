package queries

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/event"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// EventReadStore is the schedule/seat data source. Seat counts are trusted as
// returned; the engine never decrements them locally.
type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
}

type EventQueries interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	PricePreview(ctx context.Context, id uuid.UUID, quantity int) (*PricePreviewView, error)
}

type eventQueriesImpl struct {
	store  EventReadStore
	policy event.QuantityPolicy
}

func NewEventQueries(store EventReadStore, policy event.QuantityPolicy) EventQueries {
	return &eventQueriesImpl{
		store:  store,
		policy: policy,
	}
}

func (q *eventQueriesImpl) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return q.newEventView(ev), nil
}

// PricePreview is the fee-inclusive detail-page computation. It prices the
// default-resolved schedule (no date chosen yet) and knows nothing about
// coupons; that is the booking-details path, a separate computation.
func (q *eventQueriesImpl) PricePreview(ctx context.Context, id uuid.UUID, quantity int) (*PricePreviewView, error) {
	ev, err := q.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	sched := event.ResolveSchedule(ev.Schedules(), nil)
	if sched == nil {
		return nil, errs.ErrNoSchedules
	}
	if err := q.policy.ValidateQuantity(*sched, quantity); err != nil {
		return nil, errs.Mark(err, errs.ErrQuantityOutOfRange)
	}

	unit := sched.UnitPriceCents(ev.BasePriceCents())
	subtotal := unit * int64(quantity)
	total := booking.FeeInclusiveTotalCents(unit, quantity)

	return &PricePreviewView{
		EventID:         ev.ID(),
		Currency:        ev.Currency(),
		Quantity:        quantity,
		UnitPriceCents:  unit,
		SubtotalCents:   subtotal,
		TotalCents:      total,
		SubtotalDisplay: booking.FormatCents(subtotal),
		TotalDisplay:    booking.FormatCents(total),
	}, nil
}

func (q *eventQueriesImpl) newEventView(ev *event.Event) *EventView {
	schedules := make([]ScheduleView, len(ev.Schedules()))
	for i, s := range ev.Schedules() {
		schedules[i] = ScheduleView{
			ID:             s.ID(),
			StartDate:      s.StartDate(),
			EndDate:        s.EndDate(),
			TotalSeats:     s.DisplayTotalSeats(),
			AvailableSeats: s.AvailableSeats(),
			ReservedSeats:  s.ReservedSeats(),
			SoldSeats:      s.SoldSeats(),
			UnlimitedSeats: s.UnlimitedSeats(),
			IsOverride:     s.IsOverride(),
			UnitPriceCents: s.UnitPriceCents(ev.BasePriceCents()),
			MaxSelectable:  minInt(q.policy.MaxPerBooking, q.policy.MaxSelectable(s)),
		}
	}

	return &EventView{
		ID:             ev.ID(),
		Title:          ev.Title(),
		Location:       ev.Location(),
		AgeRange:       ev.AgeRange(),
		Currency:       ev.Currency(),
		BasePriceCents: ev.BasePriceCents(),
		Schedules:      schedules,
	}
}

func (q *eventQueriesImpl) findEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ev, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
