package quota

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/rooms/:id/availability", h.CheckAvailability)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/rooms/:id/quotas", h.BulkSet)
	rg.GET("/rooms/:id/quotas", h.GetCalendar)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	checkIn, err := dates.Parse(c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be yyyy-MM-dd")
		return
	}
	checkOut, err := dates.Parse(c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be yyyy-MM-dd")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrEmptyStay) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   dates.Key(checkIn),
		CheckOut:  dates.Key(checkOut),
		Available: available,
	})
}

func (h *Handler) BulkSet(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req BulkSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.BulkSet(c.Request.Context(), roomID, req.Entries); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entries must carry yyyy-MM-dd dates and quota >= 0")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update quotas")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "updated": len(req.Entries)})
}

func (h *Handler) GetCalendar(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	rows, err := h.service.GetCalendar(c.Request.Context(), roomID, c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load quotas")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "quotas": rows})
}
