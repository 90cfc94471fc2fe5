package policy

import (
	"time"

	"hotelbooking/internal/domain"
)

// DefaultFreeCancelDays applies when a hotel has no policy row: guests may
// cancel up to 24 hours before check-in.
const DefaultFreeCancelDays = 1.0

type DenialReason string

const (
	ReasonAlreadyCompleted DenialReason = "already_completed"
	ReasonAlreadyCancelled DenialReason = "already_cancelled"
	ReasonWithinLeadTime   DenialReason = "within_lead_time"
)

// Decision is the full evaluation result. On denial it carries enough
// structure for the UI to render a precise explanation instead of a generic
// failure.
type Decision struct {
	Allowed          bool                `json:"allowed"`
	Reason           DenialReason        `json:"reason,omitempty"`
	PenaltyClass     domain.PenaltyClass `json:"penalty_class,omitempty"`
	PenaltyPercent   *float64            `json:"penalty_percent,omitempty"`
	LeadDays         float64             `json:"lead_days"`
	DaysUntilCheckIn float64             `json:"days_until_check_in"`
}

// Evaluate decides whether a reservation may be cancelled at `now`.
//
// Terminal statuses are rejected before any policy math. Lead time is
// fractional days, not floored, so a stay 71 hours out is inside a 3-day
// window while 72.5 hours is not. The clock is an explicit input; this
// function never reads time.Now.
func Evaluate(res *domain.Reservation, pol *domain.HotelPolicy, now time.Time) Decision {
	switch res.Status {
	case domain.ReservationCompleted:
		return Decision{Allowed: false, Reason: ReasonAlreadyCompleted}
	case domain.ReservationCancelled:
		return Decision{Allowed: false, Reason: ReasonAlreadyCancelled}
	}

	daysUntil := res.CheckIn.Sub(now).Hours() / 24

	leadDays := DefaultFreeCancelDays
	d := Decision{
		LeadDays:         leadDays,
		DaysUntilCheckIn: daysUntil,
	}
	if pol != nil {
		leadDays = float64(pol.FreeCancelDays)
		d.LeadDays = leadDays
		d.PenaltyClass = pol.PenaltyClass
		d.PenaltyPercent = pol.PenaltyPercent
	}

	if daysUntil >= leadDays {
		d.Allowed = true
		if pol == nil {
			// no policy, no penalty guidance
			d.PenaltyClass = ""
			d.PenaltyPercent = nil
		}
		return d
	}

	d.Allowed = false
	d.Reason = ReasonWithinLeadTime
	return d
}
