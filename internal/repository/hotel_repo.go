package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, city string) ([]domain.Hotel, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	var hotels []domain.Hotel
	if err := q.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// Delete removes the hotel and everything hanging off it. Cascades are done
// explicitly in one transaction so sqlite behaves the same as postgres.
func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomIDs []int64
		if err := tx.Model(&domain.Room{}).Where("hotel_id = ?", id).Pluck("id", &roomIDs).Error; err != nil {
			return err
		}
		if len(roomIDs) > 0 {
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&domain.DailyPrice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&domain.WeekdayPrice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&domain.RoomQuota{}).Error; err != nil {
				return err
			}
			if err := tx.Where("hotel_id = ?", id).Delete(&domain.Room{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&domain.HotelPolicy{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Hotel{}, id).Error
	})
}
