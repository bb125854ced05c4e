//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/coupon"
	"event-booking/internal/domain/event"
	"event-booking/internal/handler/api"
	reqdto "event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"
	"event-booking/tests/common/builder"
	"event-booking/tests/common/httptest"
	"event-booking/tests/common/testutil"
	commandsmock "event-booking/tests/mock/commands"
	queriesmock "event-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDraftCommands
	mockQueries  *queriesmock.MockDraftQueries
	handler      *api.DraftHandler
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/drafts", s.handler.Create)
	s.router.GET("/drafts/:id", s.handler.Get)
	s.router.PUT("/drafts/:id/date", s.handler.SelectDate)
	s.router.PUT("/drafts/:id/quantity", s.handler.SetQuantity)
	s.router.PUT("/drafts/:id/participants/:index", s.handler.SetParticipant)
	s.router.POST("/drafts/:id/coupon", s.handler.ApplyCoupon)
	s.router.DELETE("/drafts/:id/coupon", s.handler.RemoveCoupon)
	s.router.POST("/drafts/:id/proceed", s.handler.Proceed)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func draftView() *queries.DraftView {
	return queries.NewDraftView(builder.NewDraftBuilder().BuildDomain())
}

func (s *DraftHandlerTestSuite) TestCreate() {
	eventID := uuid.New()

	s.Run("created", func() {
		view := draftView()
		s.mockCommands.EXPECT().Begin(gomock.Any(), eventID, gomock.Nil()).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts",
			reqdto.CreateDraftRequest{EventID: eventID}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(1, resp.Quantity)
		s.Equal("idle", resp.CouponStatus)
	})

	s.Run("unknown event", func() {
		s.mockCommands.EXPECT().Begin(gomock.Any(), eventID, gomock.Nil()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrEventNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts",
			reqdto.CreateDraftRequest{EventID: eventID}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Event not found")
	})

	s.Run("missing event id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts",
			map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *DraftHandlerTestSuite) TestGet() {
	view := draftView()

	s.Run("found", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+view.ID.String(), nil, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrDraftNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Draft not found")
	})
}

func (s *DraftHandlerTestSuite) TestSelectDate() {
	view := draftView()

	s.Run("resolves the date", func() {
		s.mockCommands.EXPECT().
			SelectDate(gomock.Any(), view.ID, builder.Date(2026, 7, 11)).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/date", reqdto.SelectDateRequest{Date: "2026-07-11"}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("malformed date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/date", reqdto.SelectDateRequest{Date: "July 11th"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *DraftHandlerTestSuite) TestSetQuantity() {
	view := draftView()

	s.Run("updated", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), view.ID, 3).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/quantity", reqdto.SetQuantityRequest{Quantity: 3}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("not enough seats", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), view.ID, 4).
			Return(nil, errs.Mark(&event.SeatsExceededError{Remaining: 3}, errs.ErrQuantityOutOfRange))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/quantity", reqdto.SetQuantityRequest{Quantity: 4}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "only 3 seats remaining")
	})

	s.Run("malformed payload", func() {
		body := testutil.DtoMap(s.T(), reqdto.SetQuantityRequest{Quantity: 3},
			testutil.Field("quantity", "three"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/quantity", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("over the booking limit", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), view.ID, 11).
			Return(nil, quantityLimitErr(10))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/quantity", reqdto.SetQuantityRequest{Quantity: 11}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "maximum of 10 tickets")
	})
}

func (s *DraftHandlerTestSuite) TestSetParticipant() {
	view := draftView()

	s.Run("updated", func() {
		s.mockCommands.EXPECT().
			SetParticipant(gomock.Any(), view.ID, 0, booking.Participant{Name: "Alice", Email: "alice@example.com"}).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/participants/0",
			reqdto.SetParticipantRequest{Name: "Alice", Email: "alice@example.com"}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("index out of range", func() {
		s.mockCommands.EXPECT().
			SetParticipant(gomock.Any(), view.ID, 5, gomock.Any()).
			Return(nil, errs.Mark(errs.New("participant index out of range"), errs.ErrDomainValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/participants/5",
			reqdto.SetParticipantRequest{Name: "Ghost"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("non-numeric index", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/drafts/"+view.ID.String()+"/participants/first",
			reqdto.SetParticipantRequest{Name: "Alice"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid participant index")
	})
}

func (s *DraftHandlerTestSuite) TestApplyCoupon() {
	s.Run("applied coupon comes back on the draft", func() {
		d := builder.NewDraftBuilder().BuildDomain()
		attempt, err := d.BeginCouponValidation(builder.Date(2026, 7, 1))
		s.Require().NoError(err)
		s.Require().True(d.CompleteCouponValidation(attempt, builder.AppliedCoupon("SAVE10", 500), "", builder.Date(2026, 7, 1)))
		view := queries.NewDraftView(d)

		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), d.ID(), "SAVE10").Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+d.ID().String()+"/coupon", reqdto.ApplyCouponRequest{Code: "SAVE10"}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("applied", resp.CouponStatus)
		s.Require().NotNil(resp.Coupon)
		s.Equal(int64(500), resp.Coupon.DiscountCents)
	})

	s.Run("rejection is still a 200 with the message on the draft", func() {
		d := builder.NewDraftBuilder().BuildDomain()
		attempt, err := d.BeginCouponValidation(builder.Date(2026, 7, 1))
		s.Require().NoError(err)
		s.Require().True(d.CompleteCouponValidation(attempt, nil, coupon.MsgExpired, builder.Date(2026, 7, 1)))
		view := queries.NewDraftView(d)

		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), d.ID(), "EXPIRED10").Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+d.ID().String()+"/coupon", reqdto.ApplyCouponRequest{Code: "EXPIRED10"}, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("error", resp.CouponStatus)
		s.Equal(coupon.MsgExpired, resp.CouponMessage)
		s.Equal(int64(0), resp.DiscountCents)
	})

	s.Run("conflict while a validation is in flight", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), id, "FAST").
			Return(nil, errs.Mark(errs.New("in flight"), errs.ErrValidationInFlight))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+id.String()+"/coupon", reqdto.ApplyCouponRequest{Code: "FAST"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already in progress")
	})
}

func (s *DraftHandlerTestSuite) TestRemoveCoupon() {
	view := draftView()

	s.Run("removed", func() {
		s.mockCommands.EXPECT().RemoveCoupon(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/drafts/"+view.ID.String()+"/coupon", nil, "")

		var resp resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("idle", resp.CouponStatus)
	})

	s.Run("nothing applied", func() {
		s.mockCommands.EXPECT().RemoveCoupon(gomock.Any(), view.ID).
			Return(nil, errs.Mark(errs.New("no coupon"), errs.ErrNoCouponApplied))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/drafts/"+view.ID.String()+"/coupon", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No coupon")
	})
}

func (s *DraftHandlerTestSuite) TestProceed() {
	draftID := uuid.New()

	s.Run("hands off to checkout", func() {
		code := "SAVE10"
		handoff := &commands.CheckoutHandoff{
			DraftID:       draftID,
			EventID:       uuid.New(),
			ScheduleID:    uuid.New(),
			Currency:      "USD",
			Quantity:      2,
			SubtotalCents: 10000,
			DiscountCents: 500,
			TotalCents:    9500,
			CouponCode:    &code,
			Participants:  []booking.Participant{{Name: "Alice"}, {}},
		}
		s.mockCommands.EXPECT().Proceed(gomock.Any(), draftID).Return(handoff, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+draftID.String()+"/proceed", nil, "")

		var resp resdto.CheckoutHandoffResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(9500), resp.TotalCents)
		s.Require().NotNil(resp.CouponCode)
		s.Equal("SAVE10", *resp.CouponCode)
		s.Len(resp.Participants, 2)
	})

	s.Run("not ready while seats ran out", func() {
		s.mockCommands.EXPECT().Proceed(gomock.Any(), draftID).
			Return(nil, errs.Mark(&event.SeatsExceededError{Remaining: 1}, errs.ErrDraftNotReady))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+draftID.String()+"/proceed", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not ready to proceed")
	})

	s.Run("not ready while a validation is in flight", func() {
		s.mockCommands.EXPECT().Proceed(gomock.Any(), draftID).
			Return(nil, errs.Mark(errs.ErrValidationInFlight, errs.ErrDraftNotReady))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/drafts/"+draftID.String()+"/proceed", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not ready to proceed")
	})
}
