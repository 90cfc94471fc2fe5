package reservation

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/pricing"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, at time.Time) error
	UpdatePaymentOutcome(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus, ref string) error
}

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type HotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// PolicyReader returns (nil, nil) when the hotel has no policy.
type PolicyReader interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelPolicy, error)
}

type PriceQuoter interface {
	QuoteStay(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*pricing.StayQuote, error)
}

type QuotaLedger interface {
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	Commit(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]string, error)
	Release(ctx context.Context, roomID int64, nights []string) error
}

// ChargeResult is what the external gateway hands back on a successful token
// exchange.
type ChargeResult struct {
	MerchantOID string
	Token       string
	RedirectURL string
}

// PaymentGateway is the external payment collaborator. Implementations must
// bound the call with their own timeout; a timeout is a charge failure.
type PaymentGateway interface {
	Charge(ctx context.Context, res *domain.Reservation, amount float64, userEmail string) (*ChargeResult, error)
}

// EventSink receives lifecycle events for the admin feed. All methods are
// fire-and-forget; failures never affect the booking flow.
type EventSink interface {
	ReservationCreated(res *domain.Reservation)
	ReservationCancelled(res *domain.Reservation)
}
