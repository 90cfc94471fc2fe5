package quota

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"
	"hotelbooking/internal/repository"

	"gorm.io/gorm"
)

// Service is the quota ledger: the per-(room, date) inventory counters and
// the only place in the system allowed to mutate them at booking time.
type Service struct {
	quotas QuotaRepository
	rooms  RoomReader
}

func NewService(quotas QuotaRepository, rooms RoomReader) *Service {
	return &Service{quotas: quotas, rooms: rooms}
}

// CheckAvailability reports whether every night of [checkIn, checkOut) has at
// least one unsold unit. A date without a quota row counts as zero, so a
// partial match is a failure.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	nights := dates.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return false, ErrEmptyStay
	}
	cnt, err := s.quotas.CountAvailable(ctx, roomID, nights)
	if err != nil {
		return false, err
	}
	return cnt == int64(len(nights)), nil
}

// Commit atomically decrements every night of the stay. The decrement is a
// conditional UPDATE with a floor check at the store level, so two requests
// racing for the last unit serialize there and exactly one wins. On failure
// nothing is decremented and the error names the first exhausted date.
// Success returns the decremented dates so the caller can repair if its own
// persistence fails afterwards.
func (s *Service) Commit(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]string, error) {
	nights := dates.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return nil, ErrEmptyStay
	}
	if err := s.quotas.DecrementRange(ctx, roomID, nights); err != nil {
		var exhausted *repository.QuotaExhaustedError
		if errors.As(err, &exhausted) {
			return nil, &QuotaExceededError{Date: exhausted.Date}
		}
		return nil, err
	}
	return nights, nil
}

// Release gives back previously committed nights. It exists solely to repair
// a commit whose reservation row failed to persist; cancellation does NOT
// restore quota.
func (s *Service) Release(ctx context.Context, roomID int64, nights []string) error {
	if len(nights) == 0 {
		return nil
	}
	return s.quotas.IncrementRange(ctx, roomID, nights)
}

// BulkSet upserts admin-provided counters. The only business rule here is
// quota >= 0.
func (s *Service) BulkSet(ctx context.Context, roomID int64, entries []QuotaEntry) error {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	rows := make([]domain.RoomQuota, 0, len(entries))
	for _, e := range entries {
		day, err := dates.Parse(e.Date)
		if err != nil || e.Quota < 0 {
			return ErrValidation
		}
		rows = append(rows, domain.RoomQuota{RoomID: roomID, Date: dates.Key(day), Quota: e.Quota})
	}
	return s.quotas.BulkUpsert(ctx, rows)
}

// GetCalendar returns the raw counters for a room, optionally bounded by
// [from, to) date strings.
func (s *Service) GetCalendar(ctx context.Context, roomID int64, from, to string) ([]domain.RoomQuota, error) {
	return s.quotas.GetForRoom(ctx, roomID, from, to)
}
