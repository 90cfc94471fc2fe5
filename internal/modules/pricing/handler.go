package pricing

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/pkg/dates"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/quote", h.QuoteStay)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/rooms/:id/pricing", h.UpdatePricing)
}

func (h *Handler) QuoteStay(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	checkIn, checkOut, ok := parseStayRange(c)
	if !ok {
		return
	}

	quote, err := h.service.QuoteStay(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyStay):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrPriceUnresolved):
			response.Error(c, http.StatusUnprocessableEntity, "PRICE_UNRESOLVED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to quote stay")
		}
		return
	}

	response.Success(c, http.StatusOK, quote)
}

func (h *Handler) UpdatePricing(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetRoomPricing(c.Request.Context(), roomID, req); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing payload")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update pricing")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": roomID})
}

func parseStayRange(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err := dates.Parse(c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be yyyy-MM-dd")
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := dates.Parse(c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be yyyy-MM-dd")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
