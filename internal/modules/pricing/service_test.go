package pricing

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomPricingRepository struct {
	mock.Mock
}

func (m *MockRoomPricingRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomPricingRepository) GetDailyPrices(ctx context.Context, roomID int64) ([]domain.DailyPrice, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyPrice), args.Error(1)
}

func (m *MockRoomPricingRepository) GetWeekdayPrices(ctx context.Context, roomID int64) ([]domain.WeekdayPrice, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekdayPrice), args.Error(1)
}

func (m *MockRoomPricingRepository) ReplacePricing(ctx context.Context, roomID int64, daily []domain.DailyPrice, weekday []domain.WeekdayPrice) error {
	args := m.Called(ctx, roomID, daily, weekday)
	return args.Error(0)
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestPriceTable_ResolvePrice_Precedence(t *testing.T) {
	base := 1000.0
	table := PriceTable{
		Base:    &base,
		Daily:   map[string]float64{"2025-06-06": 1500},
		Weekday: map[int]float64{5: 1200}, // Friday
	}

	// 2025-06-06 is a Friday: the date override must beat the weekday one
	p, err := table.ResolvePrice(day("2025-06-06"))
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, p)

	// 2025-06-13 is also a Friday with no date override
	p, err = table.ResolvePrice(day("2025-06-13"))
	assert.NoError(t, err)
	assert.Equal(t, 1200.0, p)

	// 2025-06-04 is a Wednesday: falls through to base
	p, err = table.ResolvePrice(day("2025-06-04"))
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, p)
}

func TestPriceTable_ResolvePrice_Unresolved(t *testing.T) {
	table := PriceTable{
		Daily:   map[string]float64{},
		Weekday: map[int]float64{1: 900},
	}

	// Monday is covered by the weekday override
	_, err := table.ResolvePrice(day("2025-06-02"))
	assert.NoError(t, err)

	// Tuesday has no override and there is no base price
	_, err = table.ResolvePrice(day("2025-06-03"))
	assert.ErrorIs(t, err, ErrPriceUnresolved)
}

func TestPriceTable_ResolveStayTotal(t *testing.T) {
	base := 1000.0
	table := PriceTable{
		Base:    &base,
		Daily:   map[string]float64{"2025-06-06": 1500},
		Weekday: map[int]float64{5: 1200},
	}

	// Wed + Thu at base, Fri at the date override; checkout day not charged
	total, err := table.ResolveStayTotal(day("2025-06-04"), day("2025-06-07"))
	assert.NoError(t, err)
	assert.Equal(t, 3500.0, total)
}

func TestPriceTable_ResolveStayTotal_EmptyStay(t *testing.T) {
	base := 1000.0
	table := PriceTable{Base: &base}

	_, err := table.ResolveStayTotal(day("2025-06-07"), day("2025-06-07"))
	assert.ErrorIs(t, err, ErrEmptyStay)

	_, err = table.ResolveStayTotal(day("2025-06-07"), day("2025-06-04"))
	assert.ErrorIs(t, err, ErrEmptyStay)
}

func TestService_QuoteStay(t *testing.T) {
	mockRooms := new(MockRoomPricingRepository)
	base := 1000.0
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7, BasePrice: &base}, nil)
	mockRooms.On("GetDailyPrices", mock.Anything, int64(7)).Return([]domain.DailyPrice{
		{RoomID: 7, Date: "2025-06-06", Price: 1500},
	}, nil)
	mockRooms.On("GetWeekdayPrices", mock.Anything, int64(7)).Return([]domain.WeekdayPrice{
		{RoomID: 7, Weekday: 5, Price: 1200},
	}, nil)

	service := NewService(mockRooms)

	quote, err := service.QuoteStay(context.Background(), 7, day("2025-06-04"), day("2025-06-07"))

	assert.NoError(t, err)
	assert.Equal(t, 3500.0, quote.Total)
	assert.Len(t, quote.Nights, 3)
	assert.Equal(t, NightPrice{Date: "2025-06-04", Price: 1000}, quote.Nights[0])
	assert.Equal(t, NightPrice{Date: "2025-06-05", Price: 1000}, quote.Nights[1])
	assert.Equal(t, NightPrice{Date: "2025-06-06", Price: 1500}, quote.Nights[2])
}

func TestService_QuoteStay_UnpricedNight(t *testing.T) {
	mockRooms := new(MockRoomPricingRepository)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)
	mockRooms.On("GetDailyPrices", mock.Anything, int64(7)).Return([]domain.DailyPrice{
		{RoomID: 7, Date: "2025-06-04", Price: 800},
	}, nil)
	mockRooms.On("GetWeekdayPrices", mock.Anything, int64(7)).Return([]domain.WeekdayPrice{}, nil)

	service := NewService(mockRooms)

	// Second night has neither override nor base price
	_, err := service.QuoteStay(context.Background(), 7, day("2025-06-04"), day("2025-06-06"))
	assert.ErrorIs(t, err, ErrPriceUnresolved)
}

func TestService_SetRoomPricing_ExpandsRanges(t *testing.T) {
	mockRooms := new(MockRoomPricingRepository)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)
	mockRooms.On("ReplacePricing", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms)

	err := service.SetRoomPricing(context.Background(), 7, UpdatePricingRequest{
		Ranges: []RangeOverride{{Start: "2025-07-01", End: "2025-07-03", Price: 2000}},
	})
	assert.NoError(t, err)

	call := mockRooms.Calls[len(mockRooms.Calls)-1]
	daily := call.Arguments.Get(2).([]domain.DailyPrice)
	assert.Len(t, daily, 3) // both endpoints inclusive
}

func TestService_SetRoomPricing_Validation(t *testing.T) {
	mockRooms := new(MockRoomPricingRepository)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)

	service := NewService(mockRooms)

	err := service.SetRoomPricing(context.Background(), 7, UpdatePricingRequest{
		Weekdays: []WeekdayOverride{{Weekday: 7, Price: 100}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	err = service.SetRoomPricing(context.Background(), 7, UpdatePricingRequest{
		Daily: []DailyOverride{{Date: "2025-07-01", Price: -5}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	err = service.SetRoomPricing(context.Background(), 7, UpdatePricingRequest{
		Ranges: []RangeOverride{{Start: "2025-07-05", End: "2025-07-01", Price: 100}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}
