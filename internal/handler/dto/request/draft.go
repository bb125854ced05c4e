package request

import (
	"time"

	"event-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateDraftRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

type SelectDateRequest struct {
	// Calendar date only; time-of-day is meaningless for schedule resolution.
	Date string `json:"date" binding:"required"`
}

func (r SelectDateRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type SetParticipantRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
	Age    *int   `json:"age" binding:"omitempty,gte=0,lte=120"`
	Gender string `json:"gender"`
}

func (r SetParticipantRequest) ToDomain() booking.Participant {
	return booking.Participant{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Age:    r.Age,
		Gender: r.Gender,
	}
}
