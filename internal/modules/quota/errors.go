package quota

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrEmptyStay    = errors.New("check-out must be after check-in")
	ErrRoomNotFound = errors.New("room not found")
)

// QuotaExceededError names the first stay date that had no remaining
// inventory. No decrement from the same commit survives.
type QuotaExceededError struct {
	Date string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded on %s", e.Date)
}
