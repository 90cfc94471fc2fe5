package pricing

import "errors"

var (
	ErrValidation = errors.New("validation error")
	// ErrPriceUnresolved means neither an override nor a base price covers the
	// date. A stay must never silently price at zero, so this is an error, not
	// a zero.
	ErrPriceUnresolved = errors.New("no price configured for date")
	ErrEmptyStay       = errors.New("check-out must be after check-in")
	ErrRoomNotFound    = errors.New("room not found")
)
