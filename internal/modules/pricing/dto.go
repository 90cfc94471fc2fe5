package pricing

type DailyOverride struct {
	Date  string  `json:"date" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type RangeOverride struct {
	Start string  `json:"start" binding:"required"`
	End   string  `json:"end" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type WeekdayOverride struct {
	// Weekday index, 0 = Sunday
	Weekday int     `json:"weekday"`
	Price   float64 `json:"price" binding:"required"`
}

type UpdatePricingRequest struct {
	Daily    []DailyOverride   `json:"daily"`
	Ranges   []RangeOverride   `json:"ranges"`
	Weekdays []WeekdayOverride `json:"weekdays"`
}

type NightPrice struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type StayQuote struct {
	RoomID   int64        `json:"room_id"`
	CheckIn  string       `json:"check_in"`
	CheckOut string       `json:"check_out"`
	Nights   []NightPrice `json:"nights"`
	Total    float64      `json:"total"`
}
