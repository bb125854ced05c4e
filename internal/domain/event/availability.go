package event

import (
	"errors"
	"fmt"
)

var ErrQuantityNotPositive = errors.New("quantity must be at least 1")

// SeatsExceededError is returned when a requested quantity exceeds what is
// left on a schedule. The message carries the exact remaining count so the
// storefront can show it inline.
type SeatsExceededError struct {
	Remaining int
}

func (e *SeatsExceededError) Error() string {
	return fmt.Sprintf("only %d seats remaining for this date", e.Remaining)
}

// PerBookingLimitError is returned when the per-booking ceiling is hit. This
// is a business policy cap, independent of inventory and of unlimited seats.
type PerBookingLimitError struct {
	Limit int
}

func (e *PerBookingLimitError) Error() string {
	return fmt.Sprintf("maximum of %d tickets per booking", e.Limit)
}

// QuantityPolicy bounds how many units a single booking may request.
// UnlimitedCap is not a capacity limit: it only keeps the quantity stepper
// bounded when a schedule has unlimited seats.
type QuantityPolicy struct {
	MaxPerBooking int
	UnlimitedCap  int
}

func DefaultQuantityPolicy() QuantityPolicy {
	return QuantityPolicy{
		MaxPerBooking: 10,
		UnlimitedCap:  100,
	}
}

// MaxSelectable returns the largest quantity the stepper should offer for a
// schedule, before the per-booking ceiling is applied.
func (p QuantityPolicy) MaxSelectable(s Schedule) int {
	if s.UnlimitedSeats() {
		return p.UnlimitedCap
	}
	return s.AvailableSeats()
}

// ValidateQuantity reports whether q can be booked on s. The per-booking cap
// is checked before seat availability so the fixed-limit message wins when
// both ceilings are exceeded.
func (p QuantityPolicy) ValidateQuantity(s Schedule, q int) error {
	if q < 1 {
		return ErrQuantityNotPositive
	}
	if q > p.MaxPerBooking {
		return &PerBookingLimitError{Limit: p.MaxPerBooking}
	}
	if max := p.MaxSelectable(s); q > max {
		return &SeatsExceededError{Remaining: max}
	}
	return nil
}

// IsQuantityValid is the boolean form of ValidateQuantity.
func (p QuantityPolicy) IsQuantityValid(s Schedule, q int) bool {
	return p.ValidateQuantity(s, q) == nil
}
