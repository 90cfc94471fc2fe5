package policy

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	policies PolicyRepository
	hotels   HotelReader
}

func NewService(policies PolicyRepository, hotels HotelReader) *Service {
	return &Service{policies: policies, hotels: hotels}
}

func (s *Service) GetForHotel(ctx context.Context, hotelID int64) (*domain.HotelPolicy, error) {
	p, err := s.policies.GetByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Upsert(ctx context.Context, hotelID int64, req UpsertPolicyRequest) (*domain.HotelPolicy, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	if req.PenaltyClass == string(domain.PenaltyPercentage) && req.PenaltyPercent == nil {
		return nil, ErrValidation
	}

	p := &domain.HotelPolicy{
		HotelID:        hotelID,
		FreeCancelDays: req.FreeCancelDays,
		PenaltyClass:   domain.PenaltyClass(req.PenaltyClass),
		PenaltyPercent: req.PenaltyPercent,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		Rules:          req.Rules,
	}
	if err := s.policies.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.policies.GetByHotelID(ctx, hotelID)
}

func (s *Service) Delete(ctx context.Context, hotelID int64) error {
	return s.policies.Delete(ctx, hotelID)
}
