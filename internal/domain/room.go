package domain

import "time"

// Room is a bookable room type within a hotel. Inventory is the total number
// of physical units; per-date sellable counts live in RoomQuota rows.
type Room struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotel_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	Inventory   int       `json:"inventory" validate:"required,gt=0"`
	BasePrice   *float64  `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	DailyPrices   []DailyPrice   `json:"daily_prices,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	WeekdayPrices []WeekdayPrice `json:"weekday_prices,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// DailyPrice overrides the nightly price for one calendar date.
// Dates are stored as yyyy-MM-dd strings so they key the same way in
// postgres and sqlite.
type DailyPrice struct {
	ID     int64   `json:"id"`
	RoomID int64   `json:"room_id" gorm:"uniqueIndex:idx_room_daily_price,priority:1"`
	Date   string  `json:"date" gorm:"uniqueIndex:idx_room_daily_price,priority:2"`
	Price  float64 `json:"price"`
}

func (DailyPrice) TableName() string { return "room_daily_prices" }

// WeekdayPrice overrides the nightly price for a weekday, 0 = Sunday.
type WeekdayPrice struct {
	ID      int64   `json:"id"`
	RoomID  int64   `json:"room_id" gorm:"uniqueIndex:idx_room_weekday_price,priority:1"`
	Weekday int     `json:"weekday" gorm:"uniqueIndex:idx_room_weekday_price,priority:2"`
	Price   float64 `json:"price"`
}

func (WeekdayPrice) TableName() string { return "room_weekday_prices" }
