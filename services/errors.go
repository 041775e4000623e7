package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange rejects a stay whose check-out is not strictly after
	// its check-in. Raised before any ledger access.
	ErrInvalidRange = errors.New("invalid_date_range")

	// ErrConcurrentConflict is surfaced after the bounded retry on deadlocked
	// commits is exhausted. Callers may retry the whole request.
	ErrConcurrentConflict = errors.New("concurrent_conflict")

	// ErrInvalidValues wraps administrative writes that fail value validation
	// (non-positive price, negative availability).
	ErrInvalidValues = errors.New("invalid_values")

	ErrRoomNotFound    = errors.New("room_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
)

// InsufficientAvailabilityError names the first night of a requested stay
// that has no sellable inventory. The whole commit rolls back when it is
// raised, so the ledger is left untouched.
type InsufficientAvailabilityError struct {
	RoomID uint
	Date   time.Time
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("no availability for room %d on %s", e.RoomID, e.Date.Format("2006-01-02"))
}

func IsInsufficientAvailability(err error) *InsufficientAvailabilityError {
	if err == nil {
		return nil
	}

	var availErr *InsufficientAvailabilityError
	if errors.As(err, &availErr) {
		return availErr
	}
	return nil
}
