package update_booking_dates

import "errors"

var (
	ErrInvalidInput      = errors.New("update_booking_dates: invalid input data")
	ErrInvalidDateRange  = errors.New("update_booking_dates: invalid date range")
	ErrBookingNotFound   = errors.New("update_booking_dates: booking not found")
	ErrAccessDenied      = errors.New("update_booking_dates: access denied")
	ErrCannotUpdate      = errors.New("update_booking_dates: booking cannot be updated")
	ErrRateNotFound      = errors.New("update_booking_dates: rate not found")
	ErrCapacityExceeded  = errors.New("update_booking_dates: no places left for these dates")
	ErrCapacityUndefined = errors.New("update_booking_dates: capacity undefined")
	ErrInternal          = errors.New("update_booking_dates: internal error")
)
