package policy

type UpsertPolicyRequest struct {
	FreeCancelDays int      `json:"free_cancel_days" validate:"gte=0"`
	PenaltyClass   string   `json:"penalty_class" validate:"omitempty,oneof=first_night percentage full_amount no_refund"`
	PenaltyPercent *float64 `json:"penalty_percent,omitempty" validate:"omitempty,gt=0,lte=100"`
	CheckInTime    string   `json:"check_in_time,omitempty"`
	CheckOutTime   string   `json:"check_out_time,omitempty"`
	Rules          string   `json:"rules,omitempty"`
}
