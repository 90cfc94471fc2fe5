package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaytrPaymentRepository struct {
	db *gorm.DB
}

func NewPaytrPaymentRepository(db *gorm.DB) *PaytrPaymentRepository {
	return &PaytrPaymentRepository{db: db}
}

func (r *PaytrPaymentRepository) Create(ctx context.Context, p *domain.PaytrPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaytrPaymentRepository) GetByMerchantOID(ctx context.Context, oid string) (*domain.PaytrPayment, error) {
	var p domain.PaytrPayment
	if err := r.db.WithContext(ctx).Where("merchant_oid = ?", oid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaytrPaymentRepository) MarkFailed(ctx context.Context, oid, rawBody, reason string) error {
	return r.db.WithContext(ctx).
		Model(&domain.PaytrPayment{}).
		Where("merchant_oid = ?", oid).
		Updates(map[string]interface{}{
			"status":            domain.PaytrStatusFailed,
			"callback_raw_body": rawBody,
			"failure_reason":    reason,
		}).Error
}

// MarkPaidIdempotent flips the payment to paid exactly once. Gateways resend
// callbacks; the row lock plus status check makes replays no-ops.
func (r *PaytrPaymentRepository) MarkPaidIdempotent(ctx context.Context, oid, rawBody string, paidAt time.Time) (bool, error) {
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.PaytrPayment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("merchant_oid = ?", oid).First(&p).Error; err != nil {
			return err
		}
		if p.Status == domain.PaytrStatusPaid {
			changed = false
			return nil
		}
		res := tx.Model(&domain.PaytrPayment{}).Where("merchant_oid = ?", oid).Updates(map[string]interface{}{
			"status":            domain.PaytrStatusPaid,
			"callback_raw_body": rawBody,
			"paid_at":           paidAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("payment row not updated")
		}
		changed = true
		return nil
	})
	return changed, err
}
