package policy

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrHotelNotFound = errors.New("hotel not found")
	ErrNotFound      = errors.New("policy not found")
)
