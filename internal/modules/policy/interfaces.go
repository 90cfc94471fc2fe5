package policy

import (
	"context"

	"hotelbooking/internal/domain"
)

type PolicyRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelPolicy, error)
	Upsert(ctx context.Context, p *domain.HotelPolicy) error
	Delete(ctx context.Context, hotelID int64) error
}

type HotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
