package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/config"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventQueries queries.EventQueries
	couponCfg    config.CouponServiceConfig
}

func NewEventHandler(eventQueries queries.EventQueries, cfg config.Config) *EventHandler {
	return &EventHandler{
		eventQueries: eventQueries,
		couponCfg:    cfg.Coupon,
	}
}

// @Summary Get event
// @Description Get an event with its schedules and seat availability
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQueries.GetEvent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Price preview
// @Description Fee-inclusive total for the event detail page, before date or coupon selection
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Param quantity query int false "Quantity" default(1)
// @Success 200 {object} resdto.PricePreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/{id}/price-preview [get]
func (h *EventHandler) PricePreview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	quantity := 1
	if q := c.Query("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quantity format",
			})
			return
		}
	}

	view, err := h.eventQueries.PricePreview(c.Request.Context(), id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, errs.ErrQuantityOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": quantityErrorMessage(err),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPricePreviewView(view))
}

// @Summary Suggested coupons
// @Description Fixed set of quick-apply coupon codes
// @Tags coupons
// @Produce json
// @Success 200 {object} resdto.SuggestedCouponsResponse
// @Router /coupons/suggested [get]
func (h *EventHandler) SuggestedCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SuggestedCouponsResponse{
		Codes: h.couponCfg.SuggestedCodes,
	})
}
