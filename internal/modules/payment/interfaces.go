package payment

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.PaytrPayment) error
	GetByMerchantOID(ctx context.Context, oid string) (*domain.PaytrPayment, error)
	MarkPaidIdempotent(ctx context.Context, oid, rawBody string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, oid, rawBody, reason string) error
}

type reservationWriter interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	UpdatePaymentOutcome(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus, ref string) error
}
