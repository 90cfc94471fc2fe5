package pricing

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomPricingRepository is the storage surface the resolver needs.
type RoomPricingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetDailyPrices(ctx context.Context, roomID int64) ([]domain.DailyPrice, error)
	GetWeekdayPrices(ctx context.Context, roomID int64) ([]domain.WeekdayPrice, error)
	ReplacePricing(ctx context.Context, roomID int64, daily []domain.DailyPrice, weekday []domain.WeekdayPrice) error
}
