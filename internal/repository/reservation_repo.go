package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateCode signals a reservation-code collision on insert. The caller
// regenerates the code and retries; the code is informational, not a key.
var ErrDuplicateCode = errors.New("reservation code already exists")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite (modernc) reports constraint violations by message only
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) GetByPaymentRef(ctx context.Context, ref string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).Where("payment_ref = ?", ref).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	var out []domain.Reservation
	q := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ReservationRepository) Cancel(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       domain.ReservationCancelled,
			"cancelled_at": at,
		}).Error
}

func (r *ReservationRepository) UpdatePaymentOutcome(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus, ref string) error {
	updates := map[string]interface{}{
		"payment_method": method,
		"payment_status": status,
	}
	if ref != "" {
		updates["payment_ref"] = ref
	}
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Reservation{}, id).Error
}
