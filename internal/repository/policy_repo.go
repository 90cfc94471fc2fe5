package repository

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// GetByHotelID returns (nil, nil) when the hotel has no policy; the booking
// flow falls back to the 24-hour default in that case.
func (r *PolicyRepository) GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelPolicy, error) {
	var p domain.HotelPolicy
	err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert enforces the one-policy-per-hotel invariant at the storage level.
func (r *PolicyRepository) Upsert(ctx context.Context, p *domain.HotelPolicy) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hotel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"free_cancel_days", "penalty_class", "penalty_percent",
				"check_in_time", "check_out_time", "rules", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *PolicyRepository) Delete(ctx context.Context, hotelID int64) error {
	return r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&domain.HotelPolicy{}).Error
}
