//go:build unit || e2e

package builder

import (
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	EventID        uuid.UUID
	OwnerID        *uuid.UUID
	Currency       string
	ScheduleID     uuid.UUID
	UnitPriceCents int64
	Now            time.Time
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		EventID:        uuid.New(),
		Currency:       "USD",
		ScheduleID:     uuid.New(),
		UnitPriceCents: 5000,
		Now:            Date(2026, 7, 1),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildDomain() *booking.Draft {
	return booking.NewDraft(b.EventID, b.OwnerID, b.Currency, b.ScheduleID, b.UnitPriceCents, b.Now)
}

// AppliedCoupon is a ready-made server-validated coupon for draft tests.
func AppliedCoupon(code string, discountCents int64) *coupon.Applied {
	return &coupon.Applied{
		Code:          code,
		Name:          code + " coupon",
		Description:   "test coupon",
		Type:          coupon.DiscountPercentage,
		Value:         10,
		DiscountCents: discountCents,
	}
}
