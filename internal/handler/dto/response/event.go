package response

import (
	"time"

	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleResponse struct {
	ID             uuid.UUID `json:"id"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	ReservedSeats  int       `json:"reservedSeats"`
	SoldSeats      int       `json:"soldSeats"`
	UnlimitedSeats bool      `json:"unlimitedSeats"`
	IsOverride     bool      `json:"isOverride"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	MaxSelectable  int       `json:"maxSelectable"`
}

type EventResponse struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Location       string             `json:"location"`
	AgeRange       string             `json:"ageRange"`
	Currency       string             `json:"currency"`
	BasePriceCents int64              `json:"basePriceCents"`
	Schedules      []ScheduleResponse `json:"schedules"`
}

type PricePreviewResponse struct {
	EventID         uuid.UUID `json:"eventId"`
	Currency        string    `json:"currency"`
	Quantity        int       `json:"quantity"`
	UnitPriceCents  int64     `json:"unitPriceCents"`
	SubtotalCents   int64     `json:"subtotalCents"`
	TotalCents      int64     `json:"totalCents"`
	SubtotalDisplay string    `json:"subtotalDisplay"`
	TotalDisplay    string    `json:"totalDisplay"`
}

type SuggestedCouponsResponse struct {
	Codes []string `json:"codes"`
}

const dateLayout = "2006-01-02"

func FromEventView(v *queries.EventView) *EventResponse {
	schedules := make([]ScheduleResponse, len(v.Schedules))
	for i, s := range v.Schedules {
		schedules[i] = fromScheduleView(s)
	}
	return &EventResponse{
		ID:             v.ID,
		Title:          v.Title,
		Location:       v.Location,
		AgeRange:       v.AgeRange,
		Currency:       v.Currency,
		BasePriceCents: v.BasePriceCents,
		Schedules:      schedules,
	}
}

func fromScheduleView(v queries.ScheduleView) ScheduleResponse {
	return ScheduleResponse{
		ID:             v.ID,
		StartDate:      formatDate(v.StartDate),
		EndDate:        formatDate(v.EndDate),
		TotalSeats:     v.TotalSeats,
		AvailableSeats: v.AvailableSeats,
		ReservedSeats:  v.ReservedSeats,
		SoldSeats:      v.SoldSeats,
		UnlimitedSeats: v.UnlimitedSeats,
		IsOverride:     v.IsOverride,
		UnitPriceCents: v.UnitPriceCents,
		MaxSelectable:  v.MaxSelectable,
	}
}

func FromPricePreviewView(v *queries.PricePreviewView) *PricePreviewResponse {
	return &PricePreviewResponse{
		EventID:         v.EventID,
		Currency:        v.Currency,
		Quantity:        v.Quantity,
		UnitPriceCents:  v.UnitPriceCents,
		SubtotalCents:   v.SubtotalCents,
		TotalCents:      v.TotalCents,
		SubtotalDisplay: v.SubtotalDisplay,
		TotalDisplay:    v.TotalDisplay,
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
