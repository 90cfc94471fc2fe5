package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidSearch = errors.New("invalid search parameters")
)
