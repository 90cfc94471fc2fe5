package repository

import (
	"context"
	"fmt"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuotaExhaustedError reports the first stay date whose counter could not be
// decremented. The whole commit rolls back when it is returned.
type QuotaExhaustedError struct {
	RoomID int64
	Date   string
}

func (e *QuotaExhaustedError) Error() string {
	return fmt.Sprintf("no quota left for room %d on %s", e.RoomID, e.Date)
}

type QuotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(db *gorm.DB) *QuotaRepository {
	return &QuotaRepository{db: db}
}

// CountAvailable returns how many of the given dates have a quota row with
// stock remaining. Missing rows simply do not count.
func (r *QuotaRepository) CountAvailable(ctx context.Context, roomID int64, nights []string) (int64, error) {
	if len(nights) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.RoomQuota{}).
		Where("room_id = ? AND date IN ? AND quota >= 1", roomID, nights).
		Count(&cnt).Error
	if err != nil {
		return 0, err
	}
	return cnt, nil
}

// DecrementRange decrements the counter for every night in one transaction.
//
// Each decrement is a conditional UPDATE with a floor check, never a
// read-then-write: two requests racing for the last unit both run
// `quota = quota - 1 WHERE quota > 0`, the row lock serializes them, and the
// loser sees RowsAffected == 0. Any failed night rolls the whole range back.
func (r *QuotaRepository) DecrementRange(ctx context.Context, roomID int64, nights []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, night := range nights {
			res := tx.Model(&domain.RoomQuota{}).
				Where("room_id = ? AND date = ? AND quota > 0", roomID, night).
				UpdateColumn("quota", gorm.Expr("quota - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &QuotaExhaustedError{RoomID: roomID, Date: night}
			}
		}
		return nil
	})
}

// IncrementRange is the inverse of DecrementRange. The booking flow uses it
// only to repair a decrement whose reservation row failed to persist.
func (r *QuotaRepository) IncrementRange(ctx context.Context, roomID int64, nights []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, night := range nights {
			res := tx.Model(&domain.RoomQuota{}).
				Where("room_id = ? AND date = ?", roomID, night).
				UpdateColumn("quota", gorm.Expr("quota + 1"))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
}

// BulkUpsert writes admin-provided counters, replacing existing values.
func (r *QuotaRepository) BulkUpsert(ctx context.Context, entries []domain.RoomQuota) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"quota"}),
		}).
		Create(&entries).Error
}

func (r *QuotaRepository) GetForRoom(ctx context.Context, roomID int64, from, to string) ([]domain.RoomQuota, error) {
	var rows []domain.RoomQuota
	q := r.db.WithContext(ctx).Where("room_id = ?", roomID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date < ?", to)
	}
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
