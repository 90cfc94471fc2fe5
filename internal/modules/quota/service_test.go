package quota

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockQuotaRepository struct {
	mock.Mock
}

func (m *MockQuotaRepository) CountAvailable(ctx context.Context, roomID int64, nights []string) (int64, error) {
	args := m.Called(ctx, roomID, nights)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuotaRepository) DecrementRange(ctx context.Context, roomID int64, nights []string) error {
	args := m.Called(ctx, roomID, nights)
	return args.Error(0)
}

func (m *MockQuotaRepository) IncrementRange(ctx context.Context, roomID int64, nights []string) error {
	args := m.Called(ctx, roomID, nights)
	return args.Error(0)
}

func (m *MockQuotaRepository) BulkUpsert(ctx context.Context, entries []domain.RoomQuota) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockQuotaRepository) GetForRoom(ctx context.Context, roomID int64, from, to string) ([]domain.RoomQuota, error) {
	args := m.Called(ctx, roomID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomQuota), args.Error(1)
}

type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestService_CheckAvailability(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	mockRooms := new(MockRoomReader)
	service := NewService(mockQuotas, mockRooms)

	nights := []string{"2025-06-04", "2025-06-05", "2025-06-06"}

	mockQuotas.On("CountAvailable", mock.Anything, int64(7), nights).Return(int64(3), nil).Once()
	ok, err := service.CheckAvailability(context.Background(), 7, day("2025-06-04"), day("2025-06-07"))
	assert.NoError(t, err)
	assert.True(t, ok)

	// A missing or exhausted night means the whole stay is unavailable
	mockQuotas.On("CountAvailable", mock.Anything, int64(7), nights).Return(int64(2), nil).Once()
	ok, err = service.CheckAvailability(context.Background(), 7, day("2025-06-04"), day("2025-06-07"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestService_CheckAvailability_EmptyStay(t *testing.T) {
	service := NewService(new(MockQuotaRepository), new(MockRoomReader))

	_, err := service.CheckAvailability(context.Background(), 7, day("2025-06-07"), day("2025-06-07"))
	assert.ErrorIs(t, err, ErrEmptyStay)
}

func TestService_Commit_Success(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	service := NewService(mockQuotas, new(MockRoomReader))

	nights := []string{"2025-06-04", "2025-06-05"}
	mockQuotas.On("DecrementRange", mock.Anything, int64(7), nights).Return(nil)

	got, err := service.Commit(context.Background(), 7, day("2025-06-04"), day("2025-06-06"))
	assert.NoError(t, err)
	assert.Equal(t, nights, got)
	mockQuotas.AssertExpectations(t)
}

func TestService_Commit_Exhausted(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	service := NewService(mockQuotas, new(MockRoomReader))

	mockQuotas.On("DecrementRange", mock.Anything, int64(7), mock.Anything).
		Return(&repository.QuotaExhaustedError{RoomID: 7, Date: "2025-06-05"})

	_, err := service.Commit(context.Background(), 7, day("2025-06-04"), day("2025-06-06"))

	var exceeded *QuotaExceededError
	assert.ErrorAs(t, err, &exceeded)
	assert.Equal(t, "2025-06-05", exceeded.Date)
}

func TestService_Release_NoopOnEmpty(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	service := NewService(mockQuotas, new(MockRoomReader))

	err := service.Release(context.Background(), 7, nil)
	assert.NoError(t, err)
	mockQuotas.AssertNotCalled(t, "IncrementRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_BulkSet(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	mockRooms := new(MockRoomReader)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)
	mockQuotas.On("BulkUpsert", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockQuotas, mockRooms)

	err := service.BulkSet(context.Background(), 7, []QuotaEntry{
		{Date: "2025-06-04", Quota: 2},
		{Date: "2025-06-05", Quota: 0},
	})
	assert.NoError(t, err)
}

func TestService_BulkSet_RejectsNegativeQuota(t *testing.T) {
	mockQuotas := new(MockQuotaRepository)
	mockRooms := new(MockRoomReader)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)

	service := NewService(mockQuotas, mockRooms)

	err := service.BulkSet(context.Background(), 7, []QuotaEntry{{Date: "2025-06-04", Quota: -1}})
	assert.ErrorIs(t, err, ErrValidation)
	mockQuotas.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
}
