package errs

import "errors"

// Domain-specific sentinel errors for the booking usecase layers
var (
	// Event / schedule errors
	ErrEventNotFound    = errors.New("event not found")
	ErrNoSchedules      = errors.New("event has no schedules")
	ErrScheduleNotFound = errors.New("schedule not found")

	// Draft errors
	ErrDraftNotFound = errors.New("draft not found")
	ErrDraftNotReady = errors.New("draft is not ready to proceed")

	// Quantity errors
	ErrQuantityOutOfRange = errors.New("quantity out of range")

	// Coupon errors
	ErrCouponRejected       = errors.New("coupon rejected")
	ErrValidationInFlight   = errors.New("coupon validation already in progress")
	ErrNoCouponApplied      = errors.New("no coupon applied")
	ErrCouponServiceFailure = errors.New("coupon service failure")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
