package catalog

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"
	"hotelbooking/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	hotels hotelRepo
	rooms  roomRepo
}

func NewService(hotels hotelRepo, rooms roomRepo) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	h := &domain.Hotel{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		Stars:       req.Stars,
		IsActive:    active,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, id int64, req CreateHotelRequest) (*domain.Hotel, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	h.Name = req.Name
	h.City = req.City
	h.Address = req.Address
	h.Description = req.Description
	h.Stars = req.Stars
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, city)
}

func (s *Service) DeleteHotel(ctx context.Context, id int64) error {
	if _, err := s.hotels.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	return s.hotels.Delete(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}
	if _, err := s.hotels.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	room := &domain.Room{
		HotelID:     req.HotelID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Inventory:   req.Inventory,
		BasePrice:   req.BasePrice,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req CreateRoomRequest) (*domain.Room, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.Inventory = req.Inventory
	room.BasePrice = req.BasePrice
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// Search lists rooms that can host the party for every night of the stay.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]domain.Room, error) {
	checkIn, err := dates.Parse(q.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in", ErrInvalidSearch)
	}
	checkOut, err := dates.Parse(q.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out", ErrInvalidSearch)
	}
	nights := dates.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrInvalidSearch)
	}
	guests := q.Guests
	if guests <= 0 {
		guests = 1
	}
	return s.rooms.SearchAvailable(ctx, q.City, guests, nights)
}
