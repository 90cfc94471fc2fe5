package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Stars       int       `json:"stars,omitempty" validate:"omitempty,gte=1,lte=5"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Rooms  []Room       `json:"rooms,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	Policy *HotelPolicy `json:"policy,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}
