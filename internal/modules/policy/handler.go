package policy

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/hotels/:id/policy", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/hotels/:id/policy", h.Upsert)
	rg.DELETE("/hotels/:id/policy", h.Delete)
}

func (h *Handler) Get(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	p, err := h.service.GetForHotel(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel has no cancellation policy")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load policy")
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Upsert(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	var req UpsertPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Upsert(c.Request.Context(), hotelID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid policy payload")
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save policy")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), hotelID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete policy")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel_id": hotelID})
}
