package reservation

import (
	"errors"
	"fmt"

	"hotelbooking/internal/modules/policy"
)

var (
	ErrInvalidDateRange        = errors.New("check-out must be after check-in")
	ErrValidation              = errors.New("validation error")
	ErrRoomNotFound            = errors.New("room not found")
	ErrHotelNotFound           = errors.New("hotel not found")
	ErrNotFound                = errors.New("reservation not found")
	ErrForbidden               = errors.New("forbidden")
	ErrNoAvailability          = errors.New("no availability for the selected dates")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// CancellationDeniedError carries the evaluator's decision so the caller can
// explain exactly which rule blocked the cancellation.
type CancellationDeniedError struct {
	Decision policy.Decision
}

func (e *CancellationDeniedError) Error() string {
	return fmt.Sprintf("cancellation not permitted: %s", e.Decision.Reason)
}
