/*
errors.go - Centralized error types for the booking engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Every failure is returned to the immediate caller as a typed error;
  nothing is silently swallowed and nothing is retried (all operations
  are deterministic, local, and non-transient).

ERROR CATEGORIES:
  1. State errors     - Operation not valid for the entity's current state
  2. Argument errors  - Bad dates, ratings, pricing parameters
  3. Balance errors   - Loyalty redemption shortfalls
  4. Dispatch errors  - Unrecognized payment or service method
  5. Lookup errors    - Missing rooms, guests, bookings

CONTRACT:
  A failed operation leaves the entity graph unchanged. A rejected
  booking never flips room availability; a rejected redemption never
  touches the point balance.

USAGE:
  if errors.Is(err, hotel.ErrRoomUnavailable) {
      // offer another room
  }

SEE ALSO:
  - ledger.go: Where most of these errors originate
*/
package hotel

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRoomUnavailable is returned when booking a room whose availability
	// flag is already down.
	ErrRoomUnavailable = errors.New("room unavailable")

	// ErrInvalidArgument is returned for malformed input: a check-out not
	// strictly after check-in, a rating outside [1,5], an unknown pricing
	// parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientBalance is returned when a loyalty redemption exceeds
	// the point balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnsupportedMethod is returned when payment or service dispatch
	// does not recognize the requested method.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidState is returned for operations on an entity in a terminal
	// or incompatible state, e.g. adding a service to a cancelled booking.
	ErrInvalidState = errors.New("invalid state")

	// ErrRoomNotFound is returned when a referenced room doesn't exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrGuestNotFound is returned when a referenced guest doesn't exist.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrBookingNotFound is returned when a referenced booking doesn't exist.
	ErrBookingNotFound = errors.New("booking not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RoomUnavailableError identifies which room could not be booked.
type RoomUnavailableError struct {
	RoomID RoomID
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %s is not available", e.RoomID)
}

func (e *RoomUnavailableError) Unwrap() error { return ErrRoomUnavailable }

// ArgumentError names the offending field and why it was rejected.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// InsufficientBalanceError provides details about a point shortage.
type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient loyalty balance: available %d, requested %d",
		e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// UnsupportedMethodError names the unrecognized payment or service method.
type UnsupportedMethodError struct {
	Kind   string // "payment" or "service"
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported %s method: %q", e.Kind, e.Method)
}

func (e *UnsupportedMethodError) Unwrap() error { return ErrUnsupportedMethod }

// InvalidStateError describes an operation rejected by entity state.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: entity is %s", e.Op, e.State)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// or a normal business rejection, as opposed to an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrRoomUnavailable) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrUnsupportedMethod) ||
		errors.Is(err, ErrInvalidState)
}

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrGuestNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}
