package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrDateFullyBooked   = errors.New("date is fully booked")
	ErrAlreadyBooked     = errors.New("user already has a booking on this date")
	ErrDateNotBookable   = errors.New("date is not open for booking")
	ErrBookingNotPending = errors.New("booking is not in pending status")
)

var (
	// ErrNoChosenDate marks an inconsistent session: a document arrived
	// without a date selection on record.
	ErrNoChosenDate = errors.New("no chosen date in session")
)

var (
	ErrDispatchFailed = errors.New("failed to dispatch booking to admin")
)

var (
	ErrValidation = errors.New("validation error")
)
