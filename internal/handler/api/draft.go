package api

import (
	"errors"
	"net/http"
	"strconv"

	"event-booking/internal/domain/event"
	reqdto "event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/handler/middleware"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	draftCommands commands.DraftCommands
	draftQueries  queries.DraftQueries
}

func NewDraftHandler(draftCommands commands.DraftCommands, draftQueries queries.DraftQueries) *DraftHandler {
	return &DraftHandler{
		draftCommands: draftCommands,
		draftQueries:  draftQueries,
	}
}

// @Summary Create draft
// @Description Start a booking draft for an event with the default schedule selected
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body request.CreateDraftRequest true "Create draft request"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	var req reqdto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var ownerID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		ownerID = &id
	}

	view, err := h.draftCommands.Begin(c.Request.Context(), req.EventID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDraftView(view))
}

// @Summary Get draft
// @Description Get the current state of a booking draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := h.draftQueries.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Select date
// @Description Resolve the schedule for a calendar date and re-clamp quantity
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body request.SelectDateRequest true "Date selection"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/date [put]
func (h *DraftHandler) SelectDate(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.draftCommands.SelectDate(c.Request.Context(), draftID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Set quantity
// @Description Change the ticket quantity, resizing participants accordingly
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body request.SetQuantityRequest true "Quantity"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drafts/{id}/quantity [put]
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.SetQuantity(c.Request.Context(), draftID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Set participant
// @Description Update participant details at the given index
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Participant index"
// @Param request body request.SetParticipantRequest true "Participant details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/participants/{index} [put]
func (h *DraftHandler) SetParticipant(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid participant index",
		})
		return
	}

	var req reqdto.SetParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.SetParticipant(c.Request.Context(), draftID, index, req.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Apply coupon
// @Description Validate a coupon code against the coupon service and apply its discount.
// @Description A rejected code still returns 200 with the rejection message on the draft.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body request.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /drafts/{id}/coupon [post]
func (h *DraftHandler) ApplyCoupon(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.ApplyCoupon(c.Request.Context(), draftID, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Remove coupon
// @Description Remove the applied coupon and its discount from the draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/coupon [delete]
func (h *DraftHandler) RemoveCoupon(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := h.draftCommands.RemoveCoupon(c.Request.Context(), draftID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Proceed to checkout
// @Description Re-check readiness and hand the priced draft off to checkout
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.CheckoutHandoffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drafts/{id}/proceed [post]
func (h *DraftHandler) Proceed(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}

	handoff, err := h.draftCommands.Proceed(c.Request.Context(), draftID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutHandoff(handoff))
}

func (h *DraftHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid draft ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *DraftHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Draft not found",
		})
	case errors.Is(err, errs.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	// ErrDraftNotReady wraps the in-flight and quantity marks, so it must win.
	case errors.Is(err, errs.ErrDraftNotReady):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Booking is not ready to proceed",
			"detail": readinessDetail(err),
		})
	case errors.Is(err, errs.ErrValidationInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A coupon validation is already in progress",
		})
	case errors.Is(err, errs.ErrQuantityOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": quantityErrorMessage(err),
		})
	case errors.Is(err, errs.ErrNoCouponApplied):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No coupon is applied to this draft",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func quantityErrorMessage(err error) string {
	var seats *event.SeatsExceededError
	if errors.As(err, &seats) {
		return seats.Error()
	}
	var limit *event.PerBookingLimitError
	if errors.As(err, &limit) {
		return limit.Error()
	}
	return "Invalid quantity"
}

func readinessDetail(err error) string {
	switch {
	case errors.Is(err, errs.ErrScheduleNotFound):
		return "no schedule is selected"
	case errors.Is(err, errs.ErrValidationInFlight):
		return "a coupon validation is still in progress"
	case errors.Is(err, errs.ErrQuantityOutOfRange):
		return quantityErrorMessage(err)
	default:
		return err.Error()
	}
}
