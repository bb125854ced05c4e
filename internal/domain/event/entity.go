package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEventTitle  = errors.New("event title cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNoSchedules      = errors.New("event must have at least one schedule")
	ErrInvalidDateRange = errors.New("schedule start date must not be after end date")
	ErrNegativeSeats    = errors.New("seat counts cannot be negative")
)

const MaxEventTitleLength = 255

// Event is a read-only catalog aggregate: pricing and capacity live on its
// schedules, constant attributes (title, location, age range) do not affect
// the booking math.
type Event struct {
	id             uuid.UUID
	title          string
	location       string
	ageRange       string
	currency       string
	basePriceCents int64
	schedules      []Schedule
}

func NewEvent(
	id uuid.UUID,
	title, location, ageRange, currency string,
	basePriceCents int64,
	schedules []Schedule,
) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyEventTitle
	}
	if len(title) > MaxEventTitleLength {
		return nil, ErrEmptyEventTitle
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if len(schedules) == 0 {
		return nil, ErrNoSchedules
	}

	return &Event{
		id:             id,
		title:          title,
		location:       location,
		ageRange:       ageRange,
		currency:       currency,
		basePriceCents: basePriceCents,
		schedules:      schedules,
	}, nil
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Title() string         { return e.title }
func (e *Event) Location() string      { return e.location }
func (e *Event) AgeRange() string      { return e.ageRange }
func (e *Event) Currency() string      { return e.currency }
func (e *Event) BasePriceCents() int64 { return e.basePriceCents }
func (e *Event) Schedules() []Schedule { return e.schedules }

// Schedule is one bookable window of an event: a calendar-date range plus the
// seat counts and optional price override for that window.
type Schedule struct {
	id             uuid.UUID
	eventID        uuid.UUID
	startDate      time.Time
	endDate        time.Time
	totalSeats     int
	availableSeats int
	reservedSeats  int
	soldSeats      int
	unlimitedSeats bool
	isOverride     bool
	priceCents     *int64
}

func NewSchedule(
	id, eventID uuid.UUID,
	startDate, endDate time.Time,
	totalSeats, availableSeats, reservedSeats, soldSeats int,
	unlimitedSeats, isOverride bool,
	priceCents *int64,
) (Schedule, error) {
	start := toCalendarDate(startDate)
	end := toCalendarDate(endDate)
	if start.After(end) {
		return Schedule{}, ErrInvalidDateRange
	}
	if availableSeats < 0 || reservedSeats < 0 || soldSeats < 0 {
		return Schedule{}, ErrNegativeSeats
	}
	if priceCents != nil && *priceCents < 0 {
		return Schedule{}, ErrNegativePrice
	}

	return Schedule{
		id:             id,
		eventID:        eventID,
		startDate:      start,
		endDate:        end,
		totalSeats:     totalSeats,
		availableSeats: availableSeats,
		reservedSeats:  reservedSeats,
		soldSeats:      soldSeats,
		unlimitedSeats: unlimitedSeats,
		isOverride:     isOverride,
		priceCents:     priceCents,
	}, nil
}

func (s Schedule) ID() uuid.UUID        { return s.id }
func (s Schedule) EventID() uuid.UUID   { return s.eventID }
func (s Schedule) StartDate() time.Time { return s.startDate }
func (s Schedule) EndDate() time.Time   { return s.endDate }
func (s Schedule) AvailableSeats() int  { return s.availableSeats }
func (s Schedule) ReservedSeats() int   { return s.reservedSeats }
func (s Schedule) SoldSeats() int       { return s.soldSeats }
func (s Schedule) UnlimitedSeats() bool { return s.unlimitedSeats }
func (s Schedule) IsOverride() bool     { return s.isOverride }
func (s Schedule) PriceCents() *int64   { return s.priceCents }

// DisplayTotalSeats recomputes the total from the component counts so the
// figure shown to users is always internally consistent, even when the stored
// total has drifted upstream. availableSeats itself stays authoritative.
func (s Schedule) DisplayTotalSeats() int {
	return s.availableSeats + s.reservedSeats + s.soldSeats
}

// UnitPriceCents returns the schedule override price when present, otherwise
// the event's base price.
func (s Schedule) UnitPriceCents(basePriceCents int64) int64 {
	if s.priceCents != nil {
		return *s.priceCents
	}
	return basePriceCents
}

// Contains reports whether the calendar date of t falls inside the inclusive
// [startDate, endDate] range. Time-of-day and zone offsets on t are ignored.
func (s Schedule) Contains(t time.Time) bool {
	d := toCalendarDate(t)
	return !d.Before(s.startDate) && !d.After(s.endDate)
}

func toCalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
