//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"event-booking/internal/handler/dto/request"
	"event-booking/internal/handler/dto/response"
	"event-booking/tests/common/dbtest"
	"event-booking/tests/common/httptest"
	"event-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	eventsURL = "/api/events/%s"
	draftsURL = "/api/drafts"
)

type BookingSuite struct {
	e2e.SharedSuite
	couponStub *stdhttptest.Server
}

func (s *BookingSuite) SetupSuite() {
	s.couponStub = stdhttptest.NewServer(http.HandlerFunc(couponStubHandler))
	s.CouponBaseURL = s.couponStub.URL
	s.SetupSharedSuite(s.T())
}

func (s *BookingSuite) TearDownSuite() {
	if s.couponStub != nil {
		s.couponStub.Close()
	}
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// couponStubHandler plays the remote coupon service: SAVE10 grants 10% off
// the submitted order amount, EXPIRED10 is rejected with a message, and any
// other code is reported as not valid.
func couponStubHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/coupons/validate" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req struct {
		Code        string  `json:"code"`
		OrderAmount float64 `json:"orderAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch req.Code {
	case "SAVE10":
		fmt.Fprintf(w, `{
			"success": true,
			"data": {
				"isValid": true,
				"discountAmount": %.2f,
				"coupon": {"code": "SAVE10", "name": "Save 10%%", "type": "percentage", "value": 10}
			}
		}`, req.OrderAmount*0.10)
	case "EXPIRED10":
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message": "This coupon code has expired"}`)
	default:
		fmt.Fprint(w, `{"success": true, "data": {"isValid": false}}`)
	}
}

func (s *BookingSuite) seedFestival() (uuid.UUID, []uuid.UUID) {
	t := s.T()

	overridePrice := int64(8000)
	eventID := dbtest.CreateTestEvent(t, s.DB, "Summer Music Festival", "USD", 5000)
	scheduleIDs := dbtest.CreateTestSchedules(t, s.DB, eventID, []dbtest.ScheduleFixture{
		{
			StartDate:      time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
			TotalSeats:     100,
			AvailableSeats: 80,
			ReservedSeats:  12,
			SoldSeats:      8,
		},
		{
			StartDate:      time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC),
			TotalSeats:     10,
			AvailableSeats: 5,
			ReservedSeats:  3,
			SoldSeats:      2,
			IsOverride:     true,
			PriceCents:     &overridePrice,
		},
	})
	return eventID, scheduleIDs
}

func (s *BookingSuite) createDraft(eventID uuid.UUID) response.DraftResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL,
		request.CreateDraftRequest{EventID: eventID}, "")

	var draft response.DraftResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &draft)
	return draft
}

// =============================================================================
// TestEventDetail - Event read API tests
// =============================================================================

func (s *BookingSuite) TestEventDetail() {
	s.Run("Normal case: event detail lists schedules in catalog order", func() {
		t := s.T()
		eventID, scheduleIDs := s.seedFestival()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eventsURL, eventID), nil, "")

		var ev response.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ev)
		require.Equal(t, "Summer Music Festival", ev.Title)
		require.Len(t, ev.Schedules, 2)
		require.Equal(t, scheduleIDs[0], ev.Schedules[0].ID)
		require.Equal(t, int64(5000), ev.Schedules[0].UnitPriceCents)
		require.Equal(t, 10, ev.Schedules[0].MaxSelectable)
		require.Equal(t, scheduleIDs[1], ev.Schedules[1].ID)
		require.True(t, ev.Schedules[1].IsOverride)
		require.Equal(t, int64(8000), ev.Schedules[1].UnitPriceCents)
		require.Equal(t, 5, ev.Schedules[1].MaxSelectable)
	})

	s.Run("Normal case: price preview adds the service fee", func() {
		t := s.T()
		eventID, _ := s.seedFestival()

		url := fmt.Sprintf(eventsURL+"/price-preview?quantity=3", eventID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var preview response.PricePreviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &preview)
		require.Equal(t, int64(15000), preview.SubtotalCents)
		require.Equal(t, int64(16500), preview.TotalCents)
		require.Equal(t, "165.00", preview.TotalDisplay)
	})

	s.Run("Error case: unknown event returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eventsURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Event not found")
	})
}

// =============================================================================
// TestBookingFlow - full draft lifecycle through the HTTP surface
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: date, quantity, coupon and checkout handoff", func() {
		t := s.T()
		eventID, scheduleIDs := s.seedFestival()

		draft := s.createDraft(eventID)
		require.Equal(t, scheduleIDs[0], draft.ScheduleID)
		require.Equal(t, 1, draft.Quantity)
		require.Equal(t, int64(5000), draft.TotalCents)
		require.Equal(t, "idle", draft.CouponStatus)

		base := draftsURL + "/" + draft.ID.String()

		// An override date switches both the schedule and the unit price.
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, base+"/date",
			request.SelectDateRequest{Date: "2026-07-18"}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, scheduleIDs[1], draft.ScheduleID)
		require.Equal(t, int64(8000), draft.UnitPriceCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, base+"/quantity",
			request.SetQuantityRequest{Quantity: 2}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, int64(16000), draft.SubtotalCents)
		require.Len(t, draft.Participants, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, base+"/participants/0",
			request.SetParticipantRequest{Name: "Alice", Email: "alice@example.com"}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "Alice", draft.Participants[0].Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/coupon",
			request.ApplyCouponRequest{Code: " SAVE10 "}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "applied", draft.CouponStatus)
		require.Equal(t, int64(1600), draft.DiscountCents)
		require.Equal(t, int64(14400), draft.TotalCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/proceed", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var handoff response.CheckoutHandoffResponse
		err := httptest.DecodeResponseBody(t, w.Body, &handoff)
		require.NoError(t, err)
		require.Equal(t, draft.ID, handoff.DraftID)
		require.Equal(t, scheduleIDs[1], handoff.ScheduleID)
		require.Equal(t, int64(14400), handoff.TotalCents)
		require.NotNil(t, handoff.CouponCode)
		require.Equal(t, "SAVE10", *handoff.CouponCode)
		require.Len(t, handoff.Participants, 2)
	})

	s.Run("Normal case: rejected coupon keeps the draft usable", func() {
		t := s.T()
		eventID, _ := s.seedFestival()
		draft := s.createDraft(eventID)
		base := draftsURL + "/" + draft.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/coupon",
			request.ApplyCouponRequest{Code: "EXPIRED10"}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "error", draft.CouponStatus)
		require.Equal(t, "This coupon has expired.", draft.CouponMessage)
		require.Equal(t, int64(0), draft.DiscountCents)

		// The draft still proceeds without a discount.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/proceed", nil, "")
		var handoff response.CheckoutHandoffResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &handoff)
		require.Nil(t, handoff.CouponCode)
		require.Equal(t, int64(5000), handoff.TotalCents)
	})

	s.Run("Normal case: unknown code is reported as invalid", func() {
		t := s.T()
		eventID, _ := s.seedFestival()
		draft := s.createDraft(eventID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			draftsURL+"/"+draft.ID.String()+"/coupon",
			request.ApplyCouponRequest{Code: "NOPE"}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "error", draft.CouponStatus)
		require.Equal(t, "Invalid coupon code.", draft.CouponMessage)
	})

	s.Run("Error case: quantity above remaining seats is rejected", func() {
		t := s.T()
		eventID, _ := s.seedFestival()
		draft := s.createDraft(eventID)
		base := draftsURL + "/" + draft.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, base+"/date",
			request.SelectDateRequest{Date: "2026-07-19"}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, base+"/quantity",
			request.SetQuantityRequest{Quantity: 6}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "only 5 seats remaining")
	})

	s.Run("Error case: unknown draft returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, draftsURL+"/"+uuid.New().String(), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Draft not found")
	})
}
