package response

import (
	"time"

	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppliedCouponResponse struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Type          string  `json:"type"`
	Value         float64 `json:"value"`
	DiscountCents int64   `json:"discountCents"`
}

type ParticipantResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Age    *int   `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

type DraftResponse struct {
	ID              uuid.UUID              `json:"id"`
	EventID         uuid.UUID              `json:"eventId"`
	ScheduleID      uuid.UUID              `json:"scheduleId"`
	Currency        string                 `json:"currency"`
	Quantity        int                    `json:"quantity"`
	UnitPriceCents  int64                  `json:"unitPriceCents"`
	SubtotalCents   int64                  `json:"subtotalCents"`
	DiscountCents   int64                  `json:"discountCents"`
	TotalCents      int64                  `json:"totalCents"`
	SubtotalDisplay string                 `json:"subtotalDisplay"`
	DiscountDisplay string                 `json:"discountDisplay"`
	TotalDisplay    string                 `json:"totalDisplay"`
	CouponStatus    string                 `json:"couponStatus"`
	CouponMessage   string                 `json:"couponMessage,omitempty"`
	Coupon          *AppliedCouponResponse `json:"coupon,omitempty"`
	Participants    []ParticipantResponse  `json:"participants"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type CheckoutHandoffResponse struct {
	DraftID       uuid.UUID             `json:"draftId"`
	EventID       uuid.UUID             `json:"eventId"`
	ScheduleID    uuid.UUID             `json:"scheduleId"`
	Currency      string                `json:"currency"`
	Quantity      int                   `json:"quantity"`
	SubtotalCents int64                 `json:"subtotalCents"`
	DiscountCents int64                 `json:"discountCents"`
	TotalCents    int64                 `json:"totalCents"`
	CouponCode    *string               `json:"couponCode,omitempty"`
	Participants  []ParticipantResponse `json:"participants"`
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	resp := &DraftResponse{
		ID:              v.ID,
		EventID:         v.EventID,
		ScheduleID:      v.ScheduleID,
		Currency:        v.Currency,
		Quantity:        v.Quantity,
		UnitPriceCents:  v.UnitPriceCents,
		SubtotalCents:   v.SubtotalCents,
		DiscountCents:   v.DiscountCents,
		TotalCents:      v.TotalCents,
		SubtotalDisplay: v.SubtotalDisplay,
		DiscountDisplay: v.DiscountDisplay,
		TotalDisplay:    v.TotalDisplay,
		CouponStatus:    v.CouponStatus,
		CouponMessage:   v.CouponMessage,
		Participants:    make([]ParticipantResponse, len(v.Participants)),
	}
	if v.Coupon != nil {
		resp.Coupon = &AppliedCouponResponse{
			Code:          v.Coupon.Code,
			Name:          v.Coupon.Name,
			Description:   v.Coupon.Description,
			Type:          v.Coupon.Type,
			Value:         v.Coupon.Value,
			DiscountCents: v.Coupon.DiscountCents,
		}
	}
	for i, p := range v.Participants {
		resp.Participants[i] = ParticipantResponse{
			Name:   p.Name,
			Email:  p.Email,
			Phone:  p.Phone,
			Age:    p.Age,
			Gender: p.Gender,
		}
	}
	resp.UpdatedAt = v.UpdatedAt
	return resp
}

func FromCheckoutHandoff(h *commands.CheckoutHandoff) *CheckoutHandoffResponse {
	participants := make([]ParticipantResponse, len(h.Participants))
	for i, p := range h.Participants {
		participants[i] = ParticipantResponse{
			Name:   p.Name,
			Email:  p.Email,
			Phone:  p.Phone,
			Age:    p.Age,
			Gender: p.Gender,
		}
	}
	return &CheckoutHandoffResponse{
		DraftID:       h.DraftID,
		EventID:       h.EventID,
		ScheduleID:    h.ScheduleID,
		Currency:      h.Currency,
		Quantity:      h.Quantity,
		SubtotalCents: h.SubtotalCents,
		DiscountCents: h.DiscountCents,
		TotalCents:    h.TotalCents,
		CouponCode:    h.CouponCode,
		Participants:  participants,
	}
}
