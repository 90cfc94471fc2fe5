package quota

import (
	"context"

	"hotelbooking/internal/domain"
)

type QuotaRepository interface {
	CountAvailable(ctx context.Context, roomID int64, nights []string) (int64, error)
	DecrementRange(ctx context.Context, roomID int64, nights []string) error
	IncrementRange(ctx context.Context, roomID int64, nights []string) error
	BulkUpsert(ctx context.Context, entries []domain.RoomQuota) error
	GetForRoom(ctx context.Context, roomID int64, from, to string) ([]domain.RoomQuota, error)
}

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
