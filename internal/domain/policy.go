package domain

import "time"

type PenaltyClass string

const (
	PenaltyFirstNight PenaltyClass = "first_night"
	PenaltyPercentage PenaltyClass = "percentage"
	PenaltyFullAmount PenaltyClass = "full_amount"
	PenaltyNoRefund   PenaltyClass = "no_refund"
)

// HotelPolicy holds hotel-configurable cancellation and house rules.
// At most one policy exists per hotel; absence of a policy implies a
// 24-hour free-cancellation window.
type HotelPolicy struct {
	ID             int64        `json:"id"`
	HotelID        int64        `json:"hotel_id" gorm:"uniqueIndex"`
	FreeCancelDays int          `json:"free_cancel_days" validate:"gte=0"`
	PenaltyClass   PenaltyClass `json:"penalty_class" validate:"omitempty,oneof=first_night percentage full_amount no_refund"`
	PenaltyPercent *float64     `json:"penalty_percent,omitempty" validate:"omitempty,gt=0,lte=100"`
	CheckInTime    string       `json:"check_in_time,omitempty"`
	CheckOutTime   string       `json:"check_out_time,omitempty"`
	Rules          string       `json:"rules,omitempty" gorm:"type:text"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
