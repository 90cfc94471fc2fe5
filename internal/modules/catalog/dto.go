package catalog

type CreateHotelRequest struct {
	Name        string `json:"name" validate:"required"`
	City        string `json:"city" validate:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Stars       int    `json:"stars" validate:"omitempty,gte=1,lte=5"`
	IsActive    *bool  `json:"is_active"`
}

type CreateRoomRequest struct {
	HotelID     int64    `json:"hotel_id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	Inventory   int      `json:"inventory" validate:"required,gt=0"`
	BasePrice   *float64 `json:"base_price" validate:"omitempty,gt=0"`
}

type SearchQuery struct {
	City     string `form:"city"`
	Guests   int    `form:"guests"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}
