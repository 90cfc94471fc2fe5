package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&domain.DailyPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&domain.WeekdayPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&domain.RoomQuota{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Room{}, id).Error
	})
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) GetDailyPrices(ctx context.Context, roomID int64) ([]domain.DailyPrice, error) {
	var rows []domain.DailyPrice
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RoomRepository) GetWeekdayPrices(ctx context.Context, roomID int64) ([]domain.WeekdayPrice, error) {
	var rows []domain.WeekdayPrice
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("weekday ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplacePricing swaps both override tables for a room in one transaction so
// a half-applied admin edit can never be observed by the resolver.
func (r *RoomRepository) ReplacePricing(ctx context.Context, roomID int64, daily []domain.DailyPrice, weekday []domain.WeekdayPrice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&domain.DailyPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&domain.WeekdayPrice{}).Error; err != nil {
			return err
		}
		if len(daily) > 0 {
			if err := tx.Create(&daily).Error; err != nil {
				return err
			}
		}
		if len(weekday) > 0 {
			if err := tx.Create(&weekday).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SearchAvailable returns rooms with enough capacity whose quota covers every
// requested night. The HAVING clause counts distinct quota dates with stock,
// so a single missing or exhausted night drops the room.
func (r *RoomRepository) SearchAvailable(ctx context.Context, city string, guests int, nights []string) ([]domain.Room, error) {
	if len(nights) == 0 {
		return nil, nil
	}

	q := `
SELECT rooms.*
FROM rooms
JOIN hotels ON hotels.id = rooms.hotel_id AND hotels.is_active = ?
JOIN room_quotas ON room_quotas.room_id = rooms.id
  AND room_quotas.date IN ? AND room_quotas.quota >= 1
WHERE rooms.capacity >= ?`
	args := []interface{}{true, nights, guests}
	if city != "" {
		q += ` AND hotels.city = ?`
		args = append(args, city)
	}
	q += `
GROUP BY rooms.id
HAVING COUNT(DISTINCT room_quotas.date) = ?`
	args = append(args, len(nights))

	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
