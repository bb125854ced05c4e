package queries

import (
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ScheduleView struct {
	ID             uuid.UUID `json:"id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	ReservedSeats  int       `json:"reserved_seats"`
	SoldSeats      int       `json:"sold_seats"`
	UnlimitedSeats bool      `json:"unlimited_seats"`
	IsOverride     bool      `json:"is_override"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	MaxSelectable  int       `json:"max_selectable"`
}

type EventView struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Location       string         `json:"location"`
	AgeRange       string         `json:"age_range"`
	Currency       string         `json:"currency"`
	BasePriceCents int64          `json:"base_price_cents"`
	Schedules      []ScheduleView `json:"schedules"`
}

// PricePreviewView is the fee-inclusive total shown on the event detail page,
// before any date or coupon has been chosen.
type PricePreviewView struct {
	EventID         uuid.UUID `json:"event_id"`
	Currency        string    `json:"currency"`
	Quantity        int       `json:"quantity"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	SubtotalCents   int64     `json:"subtotal_cents"`
	TotalCents      int64     `json:"total_cents"`
	SubtotalDisplay string    `json:"subtotal_display"`
	TotalDisplay    string    `json:"total_display"`
}

type AppliedCouponView struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Type          string  `json:"type"`
	Value         float64 `json:"value"`
	DiscountCents int64   `json:"discount_cents"`
}

type ParticipantView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Age    *int   `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

type DraftView struct {
	ID              uuid.UUID          `json:"id"`
	EventID         uuid.UUID          `json:"event_id"`
	ScheduleID      uuid.UUID          `json:"schedule_id"`
	Currency        string             `json:"currency"`
	Quantity        int                `json:"quantity"`
	UnitPriceCents  int64              `json:"unit_price_cents"`
	SubtotalCents   int64              `json:"subtotal_cents"`
	DiscountCents   int64              `json:"discount_cents"`
	TotalCents      int64              `json:"total_cents"`
	SubtotalDisplay string             `json:"subtotal_display"`
	DiscountDisplay string             `json:"discount_display"`
	TotalDisplay    string             `json:"total_display"`
	CouponStatus    string             `json:"coupon_status"`
	CouponMessage   string             `json:"coupon_message,omitempty"`
	Coupon          *AppliedCouponView `json:"coupon,omitempty"`
	Participants    []ParticipantView  `json:"participants"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func NewDraftView(d *booking.Draft) *DraftView {
	quote := d.Quote()

	return &DraftView{
		ID:              d.ID(),
		EventID:         d.EventID(),
		ScheduleID:      d.ScheduleID(),
		Currency:        d.Currency(),
		Quantity:        d.Quantity(),
		UnitPriceCents:  d.UnitPriceCents(),
		SubtotalCents:   quote.SubtotalCents,
		DiscountCents:   quote.DiscountCents,
		TotalCents:      quote.TotalCents,
		SubtotalDisplay: booking.FormatCents(quote.SubtotalCents),
		DiscountDisplay: booking.FormatCents(quote.DiscountCents),
		TotalDisplay:    booking.FormatCents(quote.TotalCents),
		CouponStatus:    d.CouponStatus().String(),
		CouponMessage:   d.CouponMessage(),
		Coupon:          newAppliedCouponView(d.AppliedCoupon()),
		Participants:    newParticipantViews(d.Participants()),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func newAppliedCouponView(c *coupon.Applied) *AppliedCouponView {
	if c == nil {
		return nil
	}
	return &AppliedCouponView{
		Code:          c.Code,
		Name:          c.Name,
		Description:   c.Description,
		Type:          string(c.Type),
		Value:         c.Value,
		DiscountCents: c.DiscountCents,
	}
}

func newParticipantViews(ps []booking.Participant) []ParticipantView {
	views := make([]ParticipantView, len(ps))
	for i, p := range ps {
		views[i] = ParticipantView{
			Name:   p.Name,
			Email:  p.Email,
			Phone:  p.Phone,
			Age:    p.Age,
			Gender: p.Gender,
		}
	}
	return views
}
