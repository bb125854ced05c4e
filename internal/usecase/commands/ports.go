package commands

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

// DraftStore keeps in-progress drafts. With runs fn while holding the draft's
// lock, so every mutation of a draft is serialized; fn returning an error
// aborts the mutation.
type DraftStore interface {
	Insert(ctx context.Context, d *booking.Draft) error
	With(ctx context.Context, id uuid.UUID, fn func(*booking.Draft) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CouponValidator is the remote validation capability. The order amount is
// the pre-discount total the user currently sees; the service computes the
// authoritative discount for exactly that amount.
type CouponValidator interface {
	Validate(ctx context.Context, req CouponValidationRequest) (*CouponValidationResult, error)
}

type CouponValidationRequest struct {
	Code             string
	OrderAmountCents int64
	EventIDs         []uuid.UUID
	UserID           *uuid.UUID
}

type CouponValidationResult struct {
	IsValid bool
	Coupon  coupon.Applied
}
