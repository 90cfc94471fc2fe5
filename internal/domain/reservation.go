package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PayOnSite     PaymentMethod = "on_site"
	PayCreditCard PaymentMethod = "credit_card"
)

// Reservation covers the nights [CheckIn, CheckOut); CheckOut is the
// departure day and is never charged. Both dates are UTC midnights.
type Reservation struct {
	ID            int64             `json:"id"`
	Code          string            `json:"code" gorm:"uniqueIndex"`
	UserID        int64             `json:"user_id" validate:"required"`
	HotelID       int64             `json:"hotel_id"`
	RoomID        int64             `json:"room_id" validate:"required"`
	CheckIn       time.Time         `json:"check_in" validate:"required"`
	CheckOut      time.Time         `json:"check_out" validate:"required"`
	Guests        int               `json:"guests" validate:"required,gt=0"`
	TotalPrice    float64           `json:"total_price"`
	Status        ReservationStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	PaymentRef    string            `json:"payment_ref,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Nights returns the number of charged nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
