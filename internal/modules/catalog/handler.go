package catalog

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
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/hotels/:id/rooms", h.ListRooms)
	rg.GET("/rooms/search", h.Search)
	rg.GET("/rooms/:id", h.GetRoom)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.PUT("/hotels/:id", h.UpdateHotel)
	rg.DELETE("/hotels/:id", h.DeleteHotel)
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}
	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}
	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.CreateHotel(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}
	response.Success(c, http.StatusCreated, hotel)
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.UpdateHotel(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hotel")
		}
		return
	}
	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}
	if err := h.service.DeleteHotel(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListRooms(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}
	rooms, err := h.service.ListRooms(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out are required")
		return
	}
	rooms, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidSearch) {
			response.Error(c, http.StatusBadRequest, "INVALID_SEARCH", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}
