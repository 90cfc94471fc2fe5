package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/pricing"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.Create)
	rg.GET("/reservations", h.ListMine)
	rg.GET("/reservations/:id", h.GetByID)
	rg.POST("/reservations/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/reservations/:id/status", h.ForceStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateRange):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation payload")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case errors.Is(err, ErrNoAvailability):
			response.Error(c, http.StatusConflict, "NO_AVAILABILITY", "Room is fully booked for the selected dates")
		case errors.Is(err, pricing.ErrPriceUnresolved):
			response.Error(c, http.StatusUnprocessableEntity, "PRICE_UNRESOLVED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	out, err := h.service.ListForUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": out})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), c.GetInt64("user_id"), id, c.GetBool("is_admin"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your reservation")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservation")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		var denied *CancellationDeniedError
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the reservation owner may cancel")
		case errors.As(err, &denied):
			response.ErrorWithDetails(c, http.StatusConflict, "CANCELLATION_NOT_PERMITTED",
				"Cancellation is not permitted for this reservation", denied.Decision)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ForceStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.ForceStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Requested transition is not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}
