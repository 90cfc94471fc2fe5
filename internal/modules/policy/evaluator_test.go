package policy

import (
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func reservationAt(checkIn time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:      1,
		HotelID: 1,
		CheckIn: checkIn,
		Status:  status,
	}
}

func TestEvaluate_DefaultWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 36 hours out, no policy: default 24h window allows it
	d := Evaluate(reservationAt(now.Add(36*time.Hour), domain.ReservationConfirmed), nil, now)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.PenaltyClass)
	assert.Nil(t, d.PenaltyPercent)

	// 12 hours out: inside the default window
	d = Evaluate(reservationAt(now.Add(12*time.Hour), domain.ReservationConfirmed), nil, now)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWithinLeadTime, d.Reason)
}

func TestEvaluate_FractionalLeadTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pol := &domain.HotelPolicy{HotelID: 1, FreeCancelDays: 3}

	// 72.5 hours before check-in is outside a 3-day window
	d := Evaluate(reservationAt(now.Add(72*time.Hour+30*time.Minute), domain.ReservationConfirmed), pol, now)
	assert.True(t, d.Allowed)

	// 71 hours is inside it; the hours are not floored into whole days
	d = Evaluate(reservationAt(now.Add(71*time.Hour), domain.ReservationConfirmed), pol, now)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWithinLeadTime, d.Reason)
	assert.InDelta(t, 71.0/24.0, d.DaysUntilCheckIn, 1e-9)
}

func TestEvaluate_ExactBoundaryAllows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pol := &domain.HotelPolicy{HotelID: 1, FreeCancelDays: 3}

	d := Evaluate(reservationAt(now.Add(72*time.Hour), domain.ReservationConfirmed), pol, now)
	assert.True(t, d.Allowed)
}

func TestEvaluate_TerminalStates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// far in the future, so only the status can block
	checkIn := now.Add(30 * 24 * time.Hour)

	d := Evaluate(reservationAt(checkIn, domain.ReservationCompleted), nil, now)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAlreadyCompleted, d.Reason)

	d = Evaluate(reservationAt(checkIn, domain.ReservationCancelled), nil, now)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAlreadyCancelled, d.Reason)
}

func TestEvaluate_CarriesPenaltyGuidance(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pct := 50.0
	pol := &domain.HotelPolicy{
		HotelID:        1,
		FreeCancelDays: 1,
		PenaltyClass:   domain.PenaltyPercentage,
		PenaltyPercent: &pct,
	}

	d := Evaluate(reservationAt(now.Add(5*24*time.Hour), domain.ReservationPending), pol, now)
	assert.True(t, d.Allowed)
	assert.Equal(t, domain.PenaltyPercentage, d.PenaltyClass)
	assert.Equal(t, &pct, d.PenaltyPercent)
	assert.Equal(t, 1.0, d.LeadDays)
}

func TestEvaluate_PastCheckIn(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Check-in already passed but the stay was never confirmed/completed;
	// negative lead time is always inside the window.
	d := Evaluate(reservationAt(now.Add(-24*time.Hour), domain.ReservationPending), nil, now)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWithinLeadTime, d.Reason)
	assert.Negative(t, d.DaysUntilCheckIn)
}
