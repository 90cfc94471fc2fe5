package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"

	"gorm.io/gorm"
)

// PriceTable is a room's full nightly price configuration. Resolution order:
// date override, then weekday override, then base price.
type PriceTable struct {
	Base    *float64
	Daily   map[string]float64
	Weekday map[int]float64
}

func BuildTable(room *domain.Room, daily []domain.DailyPrice, weekday []domain.WeekdayPrice) PriceTable {
	t := PriceTable{
		Base:    room.BasePrice,
		Daily:   make(map[string]float64, len(daily)),
		Weekday: make(map[int]float64, len(weekday)),
	}
	for _, d := range daily {
		t.Daily[d.Date] = d.Price
	}
	for _, w := range weekday {
		t.Weekday[w.Weekday] = w.Price
	}
	return t
}

// ResolvePrice returns the effective nightly price for one calendar date.
func (t PriceTable) ResolvePrice(date time.Time) (float64, error) {
	key := dates.Key(date)
	if p, ok := t.Daily[key]; ok {
		return p, nil
	}
	if p, ok := t.Weekday[int(date.UTC().Weekday())]; ok {
		return p, nil
	}
	if t.Base != nil {
		return *t.Base, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrPriceUnresolved, key)
}

// ResolveStayTotal sums nightly prices over [checkIn, checkOut); the checkout
// date is the departure day and is not charged.
func (t PriceTable) ResolveStayTotal(checkIn, checkOut time.Time) (float64, error) {
	nights := dates.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return 0, ErrEmptyStay
	}

	var total float64
	for _, night := range nights {
		d, err := dates.Parse(night)
		if err != nil {
			return 0, err
		}
		p, err := t.ResolvePrice(d)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return math.Round(total*100) / 100, nil
}

type Service struct {
	rooms RoomPricingRepository
}

func NewService(rooms RoomPricingRepository) *Service {
	return &Service{rooms: rooms}
}

// LoadTable reads a room's pricing configuration from storage.
func (s *Service) LoadTable(ctx context.Context, roomID int64) (PriceTable, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PriceTable{}, ErrRoomNotFound
		}
		return PriceTable{}, err
	}
	daily, err := s.rooms.GetDailyPrices(ctx, roomID)
	if err != nil {
		return PriceTable{}, err
	}
	weekday, err := s.rooms.GetWeekdayPrices(ctx, roomID)
	if err != nil {
		return PriceTable{}, err
	}
	return BuildTable(room, daily, weekday), nil
}

// QuoteStay resolves the nightly breakdown and total for a stay. This is the
// authoritative price; any client-side calendar preview is cosmetic.
func (s *Service) QuoteStay(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*StayQuote, error) {
	nights := dates.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return nil, ErrEmptyStay
	}

	table, err := s.LoadTable(ctx, roomID)
	if err != nil {
		return nil, err
	}

	quote := &StayQuote{
		RoomID:   roomID,
		CheckIn:  dates.Key(checkIn),
		CheckOut: dates.Key(checkOut),
		Nights:   make([]NightPrice, 0, len(nights)),
	}
	for _, night := range nights {
		d, err := dates.Parse(night)
		if err != nil {
			return nil, err
		}
		p, err := table.ResolvePrice(d)
		if err != nil {
			return nil, err
		}
		quote.Nights = append(quote.Nights, NightPrice{Date: night, Price: p})
		quote.Total += p
	}
	quote.Total = math.Round(quote.Total*100) / 100
	return quote, nil
}

// SetRoomPricing replaces a room's override tables from an admin payload.
// Date ranges are expanded server-side into single-date rows.
func (s *Service) SetRoomPricing(ctx context.Context, roomID int64, req UpdatePricingRequest) error {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	dailyByDate := make(map[string]float64)
	for _, d := range req.Daily {
		day, err := dates.Parse(d.Date)
		if err != nil || d.Price <= 0 {
			return ErrValidation
		}
		dailyByDate[dates.Key(day)] = d.Price
	}
	for _, rg := range req.Ranges {
		start, err := dates.Parse(rg.Start)
		if err != nil {
			return ErrValidation
		}
		end, err := dates.Parse(rg.End)
		if err != nil || rg.Price <= 0 || end.Before(start) {
			return ErrValidation
		}
		// range overrides are inclusive of both endpoints
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dailyByDate[dates.Key(d)] = rg.Price
		}
	}

	weekdayByIdx := make(map[int]float64)
	for _, w := range req.Weekdays {
		if w.Weekday < 0 || w.Weekday > 6 || w.Price <= 0 {
			return ErrValidation
		}
		weekdayByIdx[w.Weekday] = w.Price
	}

	daily := make([]domain.DailyPrice, 0, len(dailyByDate))
	for date, price := range dailyByDate {
		daily = append(daily, domain.DailyPrice{RoomID: roomID, Date: date, Price: price})
	}
	weekday := make([]domain.WeekdayPrice, 0, len(weekdayByIdx))
	for idx, price := range weekdayByIdx {
		weekday = append(weekday, domain.WeekdayPrice{RoomID: roomID, Weekday: idx, Price: price})
	}

	return s.rooms.ReplacePricing(ctx, roomID, daily, weekday)
}
