package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type hotelRepo interface {
	Create(ctx context.Context, h *domain.Hotel) error
	Update(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, city string) ([]domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
}

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	SearchAvailable(ctx context.Context, city string, guests int, nights []string) ([]domain.Room, error)
}
