package reservation

import "hotelbooking/internal/domain"

type CreateReservationRequest struct {
	RoomID        int64  `json:"room_id" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Guests        int    `json:"guests" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CreateReservationResult is returned even when the card charge failed:
// the reservation and its held inventory are kept, payment falls back to
// on-site, and PaymentFailed tells the UI to say so.
type CreateReservationResult struct {
	Reservation   *domain.Reservation `json:"reservation"`
	PaymentURL    string              `json:"payment_url,omitempty"`
	PaymentFailed bool                `json:"payment_failed,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
