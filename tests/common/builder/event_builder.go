//go:build unit || e2e

package builder

import (
	"time"

	domevent "event-booking/internal/domain/event"

	"github.com/google/uuid"
)

type ScheduleSpec struct {
	ID             uuid.UUID
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

type EventBuilder struct {
	ID             uuid.UUID
	Title          string
	Location       string
	AgeRange       string
	Currency       string
	BasePriceCents int64
	Schedules      []ScheduleSpec
}

func NewEventBuilder() *EventBuilder {
	eventID := uuid.New()
	return &EventBuilder{
		ID:             eventID,
		Title:          "Summer Music Festival",
		Location:       "Riverside Park",
		AgeRange:       "All ages",
		Currency:       "USD",
		BasePriceCents: 5000,
		Schedules: []ScheduleSpec{
			{
				ID:             uuid.New(),
				StartDate:      Date(2026, 7, 10),
				EndDate:        Date(2026, 7, 12),
				TotalSeats:     100,
				AvailableSeats: 80,
				ReservedSeats:  12,
				SoldSeats:      8,
			},
		},
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) AddSchedule(spec ScheduleSpec) *EventBuilder {
	if spec.ID == uuid.Nil {
		spec.ID = uuid.New()
	}
	b.Schedules = append(b.Schedules, spec)
	return b
}

func (b *EventBuilder) BuildDomain() (*domevent.Event, error) {
	schedules := make([]domevent.Schedule, 0, len(b.Schedules))
	for _, spec := range b.Schedules {
		sched, err := domevent.NewSchedule(
			spec.ID, b.ID, spec.StartDate, spec.EndDate,
			spec.TotalSeats, spec.AvailableSeats, spec.ReservedSeats, spec.SoldSeats,
			spec.UnlimitedSeats, spec.IsOverride, spec.PriceCents,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	return domevent.NewEvent(b.ID, b.Title, b.Location, b.AgeRange, b.Currency, b.BasePriceCents, schedules)
}

// Date is a calendar date in UTC, the granularity schedules resolve at.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Cents(v int64) *int64 {
	return &v
}
