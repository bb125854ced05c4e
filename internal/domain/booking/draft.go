package booking

import (
	"errors"
	"time"

	"event-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be at least 1")
	ErrValidationInFlight  = errors.New("a coupon validation is already in progress")
	ErrNoCouponApplied     = errors.New("no coupon is applied")
	ErrNoScheduleSelected  = errors.New("no schedule selected")
)

type CouponStatus string

const (
	CouponIdle       CouponStatus = "idle"
	CouponValidating CouponStatus = "validating"
	CouponApplied    CouponStatus = "applied"
	CouponError      CouponStatus = "error"
)

func (s CouponStatus) String() string {
	return string(s)
}

// Participant is a per-seat placeholder filled in at a later step. A freshly
// created entry has every field unset.
type Participant struct {
	Name   string
	Email  string
	Phone  string
	Age    *int
	Gender string
}

// Draft is the mutable in-progress booking for one page view: the resolved
// schedule, the chosen quantity with its participant placeholders, and the
// coupon state machine. It is scoped per instance, so concurrent drafts never
// share state.
//
// scheduleID and unitPriceCents always change together so the price on screen
// is always the price of the schedule that will be booked.
type Draft struct {
	id             uuid.UUID
	eventID        uuid.UUID
	ownerID        *uuid.UUID
	currency       string
	scheduleID     uuid.UUID
	unitPriceCents int64
	quantity       int
	participants   []Participant

	couponStatus  CouponStatus
	appliedCoupon *coupon.Applied
	couponMessage string
	couponAttempt uint64

	createdAt time.Time
	updatedAt time.Time
}

func NewDraft(
	eventID uuid.UUID,
	ownerID *uuid.UUID,
	currency string,
	scheduleID uuid.UUID,
	unitPriceCents int64,
	now time.Time,
) *Draft {
	return &Draft{
		id:             uuid.New(),
		eventID:        eventID,
		ownerID:        ownerID,
		currency:       currency,
		scheduleID:     scheduleID,
		unitPriceCents: unitPriceCents,
		quantity:       1,
		participants:   make([]Participant, 1),
		couponStatus:   CouponIdle,
		createdAt:      now,
		updatedAt:      now,
	}
}

func (d *Draft) ID() uuid.UUID                  { return d.id }
func (d *Draft) EventID() uuid.UUID             { return d.eventID }
func (d *Draft) OwnerID() *uuid.UUID            { return d.ownerID }
func (d *Draft) Currency() string               { return d.currency }
func (d *Draft) ScheduleID() uuid.UUID          { return d.scheduleID }
func (d *Draft) UnitPriceCents() int64          { return d.unitPriceCents }
func (d *Draft) Quantity() int                  { return d.quantity }
func (d *Draft) Participants() []Participant    { return d.participants }
func (d *Draft) CouponStatus() CouponStatus     { return d.couponStatus }
func (d *Draft) AppliedCoupon() *coupon.Applied { return d.appliedCoupon }
func (d *Draft) CouponMessage() string          { return d.couponMessage }
func (d *Draft) CreatedAt() time.Time           { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time           { return d.updatedAt }

// SetSchedule repoints the draft at a newly resolved schedule. Price and
// schedule id move together, and any in-flight coupon validation is made
// stale because its order context no longer exists.
func (d *Draft) SetSchedule(scheduleID uuid.UUID, unitPriceCents int64, now time.Time) {
	d.scheduleID = scheduleID
	d.unitPriceCents = unitPriceCents
	d.couponAttempt++
	if d.couponStatus == CouponValidating {
		d.couponStatus = CouponIdle
	}
	d.updatedAt = now
}

// SetQuantity resizes the participant list to match n, preserving existing
// entries by index: growing appends fresh blank placeholders, shrinking
// truncates. An applied discount is left untouched even though it was
// computed for the old amount. It is never rescaled locally; the user must
// re-apply the coupon to get a fresh one.
func (d *Draft) SetQuantity(n int, now time.Time) error {
	if n < 1 {
		return ErrQuantityNotPositive
	}
	if n == d.quantity {
		return nil
	}

	if n < len(d.participants) {
		d.participants = d.participants[:n]
	} else {
		for len(d.participants) < n {
			d.participants = append(d.participants, Participant{})
		}
	}
	d.quantity = n
	d.couponAttempt++
	if d.couponStatus == CouponValidating {
		d.couponStatus = CouponIdle
	}
	d.updatedAt = now
	return nil
}

// SetParticipant records details for one seat.
func (d *Draft) SetParticipant(index int, p Participant) error {
	if index < 0 || index >= len(d.participants) {
		return errors.New("participant index out of range")
	}
	d.participants[index] = p
	return nil
}

// BeginCouponValidation moves the coupon state machine to Validating and
// returns the attempt token the eventual response must present. A second
// submission while one is in flight is rejected, never interleaved.
func (d *Draft) BeginCouponValidation(now time.Time) (uint64, error) {
	if d.couponStatus == CouponValidating {
		return 0, ErrValidationInFlight
	}
	d.couponAttempt++
	d.couponStatus = CouponValidating
	d.couponMessage = ""
	d.updatedAt = now
	return d.couponAttempt, nil
}

// CompleteCouponValidation applies the outcome of a remote validation. A
// response whose attempt token no longer matches is a late arrival for an
// order amount the user no longer sees; it is discarded and the state machine
// returns to Idle. Returns whether the outcome was applied.
func (d *Draft) CompleteCouponValidation(attempt uint64, applied *coupon.Applied, rejection string, now time.Time) bool {
	if attempt != d.couponAttempt || d.couponStatus != CouponValidating {
		if d.couponStatus == CouponValidating {
			d.couponStatus = CouponIdle
		}
		return false
	}

	if applied != nil {
		d.couponStatus = CouponApplied
		d.appliedCoupon = applied
		d.couponMessage = ""
	} else {
		d.couponStatus = CouponError
		d.appliedCoupon = nil
		d.couponMessage = rejection
	}
	d.updatedAt = now
	return true
}

// RemoveCoupon clears all coupon state back to Idle with a zero discount.
func (d *Draft) RemoveCoupon(now time.Time) error {
	if d.appliedCoupon == nil && d.couponStatus != CouponError {
		return ErrNoCouponApplied
	}
	d.couponStatus = CouponIdle
	d.appliedCoupon = nil
	d.couponMessage = ""
	d.updatedAt = now
	return nil
}

// DiscountCents is zero unless a coupon is currently applied.
func (d *Draft) DiscountCents() int64 {
	if d.couponStatus == CouponApplied && d.appliedCoupon != nil {
		return d.appliedCoupon.DiscountCents
	}
	return 0
}

// Quote prices the draft as it stands.
func (d *Draft) Quote() Quote {
	return ComputeQuote(d.unitPriceCents, d.quantity, d.DiscountCents())
}

// OrderAmountCents is the pre-discount amount sent to the coupon service,
// always computed fresh from the current schedule price and quantity.
func (d *Draft) OrderAmountCents() int64 {
	return d.unitPriceCents * int64(d.quantity)
}
