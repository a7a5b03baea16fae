package repository

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by the registry wraps exactly one of them.
var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid data")
	ErrConflict = errors.New("conflict")
)

var (
	ErrAirportNotFound   = fmt.Errorf("airport %w", ErrNotFound)
	ErrFlightNotFound    = fmt.Errorf("flight %w", ErrNotFound)
	ErrPassengerNotFound = fmt.Errorf("passenger %w", ErrNotFound)
	ErrRouteNotFound     = fmt.Errorf("route %w", ErrNotFound)

	ErrAlreadyBooked = fmt.Errorf("passenger already booked on flight: %w", ErrConflict)
	ErrFlightFull    = fmt.Errorf("flight is at max capacity: %w", ErrConflict)
	ErrNotBooked     = fmt.Errorf("passenger has no booking on flight: %w", ErrConflict)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
